package attestation

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// personalMessagePrefix is the Ethereum personal_sign frame for a 32-byte
// digest. The destination verifier applies the same frame before ecrecover.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n32"

// SignatureLength is the size of a recoverable signature: r || s || v.
const SignatureLength = 65

// Signer produces EVM-compatible recoverable signatures with a secp256k1
// key fixed at construction. The derived public key and address are cached
// once and never recomputed.
type Signer struct {
	key  *ecdsa.PrivateKey
	pub  []byte // uncompressed X||Y, 0x04 prefix stripped
	addr common.Address
}

// NewSigner validates the raw 32-byte private scalar and derives the cached
// public identity. An invalid scalar is fatal for the surrounding setup;
// there is no fallback key.
func NewSigner(keyBytes []byte) (*Signer, error) {
	key, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 private key")
	}
	return newSigner(key), nil
}

// NewSignerFromHex accepts the private key as a hex string, with or without
// the 0x prefix.
func NewSignerFromHex(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 private key")
	}
	return newSigner(key), nil
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner() (*Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate secp256k1 key")
	}
	return newSigner(key), nil
}

func newSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:  key,
		pub:  crypto.FromECDSAPub(&key.PublicKey)[1:],
		addr: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// SignDigest wraps the 32-byte digest in the personal-message frame, hashes
// the frame with keccak256 and signs the result. The returned signature is
// r (32) || s (32) || v (1) with v in {27, 28}. Signing is deterministic
// for a given (key, digest) pair.
func (s *Signer) SignDigest(digest common.Hash) ([]byte, error) {
	framed := crypto.Keccak256(append([]byte(personalMessagePrefix), digest.Bytes()...))
	sig, err := crypto.Sign(framed, s.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign digest")
	}
	// crypto.Sign yields the recovery id in {0, 1}; ecrecover wants {27, 28}.
	sig[SignatureLength-1] += 27
	return sig, nil
}

// PublicKey returns a copy of the cached 64-byte uncompressed public key,
// the exact bytes the address is derived from.
func (s *Signer) PublicKey() []byte {
	return append([]byte(nil), s.pub...)
}

// Address returns the cached signer address, keccak256(pubkey)[12:].
func (s *Signer) Address() common.Address {
	return s.addr
}
