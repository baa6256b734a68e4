// Package staking defines the stake-query collaborator consumed by the
// attestation registry. The real delegation lookup lives on the host
// ledger; this package fixes the interface and ships stand-ins.
package staking

import (
	"context"
	"math/big"
)

// Querier reports an account's currently delegated stake in base units.
// Snapshot timing, lock-up rules and validator detection are the
// supplier's policy; the registry treats the result as opaque.
type Querier interface {
	DelegatedStake(ctx context.Context, account string) (*big.Int, error)
}

// Zero always reports zero stake, matching the host integration before the
// auction query ships.
type Zero struct{}

func (Zero) DelegatedStake(context.Context, string) (*big.Int, error) {
	return new(big.Int), nil
}

// Fixed serves stakes from a static table, defaulting to zero for unknown
// accounts. Meant for tests and local demos.
type Fixed map[string]*big.Int

func (f Fixed) DelegatedStake(_ context.Context, account string) (*big.Int, error) {
	if stake, ok := f[account]; ok {
		return new(big.Int).Set(stake), nil
	}
	return new(big.Int), nil
}
