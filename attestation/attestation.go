package attestation

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Identity is the canonical string form of an account on the host ledger
// (for Casper, the account-hash string). Equality is plain string equality.
type Identity string

// Attestation is the persisted record: the signed payload fields plus
// ownership and revocation state. ID is derived from the payload encoding,
// never assigned, so two records with identical fields share an identifier
// and collapse into one.
type Attestation struct {
	ID             common.Hash
	Owner          Identity
	TargetChain    string
	TargetAddress  string
	StakeAmount    *big.Int
	Tier           Tier
	AccountAgeDays uint64
	CreatedAt      uint64 // unix milliseconds
	ExpiresAt      uint64 // unix milliseconds
	Nonce          uint64
	Revoked        bool
}

// Payload rebuilds the cryptographically committed subset of the record
// from stored fields, never from live stake. The result encodes
// byte-identically to the payload used at creation time.
func (a *Attestation) Payload() *Payload {
	return &Payload{
		IdentityHash:   IdentityHashOf(a.Owner),
		TargetChain:    a.TargetChain,
		TargetAddress:  a.TargetAddress,
		StakeAmount:    a.StakeAmount,
		Tier:           a.Tier.WireByte(),
		AccountAgeDays: a.AccountAgeDays,
		CreatedAt:      a.CreatedAt,
		ExpiresAt:      a.ExpiresAt,
		Nonce:          a.Nonce,
	}
}

func (a *Attestation) clone() *Attestation {
	c := *a
	if a.StakeAmount != nil {
		c.StakeAmount = new(big.Int).Set(a.StakeAmount)
	}
	return &c
}
