// Package app builds the veild command tree: local drivers for issuing
// attestations and inspecting the signer identity, configured from the
// environment.
package app

import (
	"fmt"
	"math/big"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veilprotocol/veil-attestation/attestation"
	"github.com/veilprotocol/veil-attestation/staking"
)

// Config is the daemon-side configuration, read from the environment.
type Config struct {
	// SignerKey is the hex-encoded secp256k1 private key attestations are
	// signed with.
	SignerKey string `env:"VEIL_SIGNER_KEY,required"`
	// Validity is the attestation lifetime.
	Validity time.Duration `env:"VEIL_VALIDITY" envDefault:"168h"`
}

// RootCmd creates the veild root command.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "veild",
		Short:        "veild issues signed cross-chain identity attestations",
		SilenceUsage: true,
	}
	cmd.AddCommand(signerAddressCmd(), attestCmd())
	return cmd
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newRegistry(cfg Config, stake staking.Querier) (*attestation.Registry, error) {
	signer, err := attestation.NewSignerFromHex(cfg.SignerKey)
	if err != nil {
		return nil, err
	}
	return attestation.NewRegistry(
		attestation.Config{Validity: cfg.Validity},
		signer,
		stake,
		attestation.WithEvents(attestation.LogSink{Logger: zap.L()}),
		attestation.WithLogger(zap.L()),
	)
}

func signerAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signer-address",
		Short: "Print the EVM address derived from the configured signer key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			reg, err := newRegistry(cfg, staking.Zero{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reg.SignerAddress().Hex())
			return nil
		},
	}
}

func attestCmd() *cobra.Command {
	var (
		owner    string
		chain    string
		address  string
		stakeStr string
	)
	cmd := &cobra.Command{
		Use:   "attest",
		Short: "Create an attestation and print the EVM submission blobs",
		Long: `attest runs the full issuance flow against an in-memory registry and
prints the encoded payload and signature ready for the destination
verifier's verifyAndStore(bytes,bytes).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			querier := staking.Querier(staking.Zero{})
			if stakeStr != "" {
				stake, ok := new(big.Int).SetString(stakeStr, 10)
				if !ok {
					return fmt.Errorf("invalid stake amount %q", stakeStr)
				}
				querier = staking.Fixed{owner: stake}
			}

			reg, err := newRegistry(cfg, querier)
			if err != nil {
				return err
			}

			call := attestation.CallContext{
				Caller: attestation.Identity(owner),
				Now:    uint64(time.Now().UnixMilli()),
			}
			id, _, err := reg.CreateAttestation(cmd.Context(), call, chain, address)
			if err != nil {
				return err
			}

			encoded, signature, ok, err := reg.AttestationForEVM(id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("attestation %s missing after creation", id.Hex())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "attestation_id: %s\n", id.Hex())
			fmt.Fprintf(out, "signer:         %s\n", reg.SignerAddress().Hex())
			fmt.Fprintf(out, "payload:        %s\n", hexutil.Encode(encoded))
			fmt.Fprintf(out, "signature:      %s\n", hexutil.Encode(signature))
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "host-ledger account of the attestation owner")
	cmd.Flags().StringVar(&chain, "chain", "base-sepolia", "destination chain label")
	cmd.Flags().StringVar(&address, "address", "", "destination EVM address (0x...)")
	cmd.Flags().StringVar(&stakeStr, "stake", "", "override delegated stake in base units (default: zero stub)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
