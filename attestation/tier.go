package attestation

import "math/big"

// Tier is the discrete trust level derived from a user's staked amount. The
// zero value means no meaningful stake. TierValidator is asserted by the
// staking collaborator for active validators; ClassifyStake never produces
// it.
type Tier uint8

const (
	TierNone      Tier = iota
	TierBronze         // 100+ tokens
	TierSilver         // 1,000+ tokens
	TierGold           // 10,000+ tokens
	TierPlatinum       // 100,000+ tokens
	TierValidator      // active validator, collaborator-asserted
)

// baseUnitsPerToken converts stake base units to whole tokens.
var baseUnitsPerToken = big.NewInt(1_000_000_000)

var tierBreakpoints = []struct {
	tokens *big.Int
	tier   Tier
}{
	{big.NewInt(100_000), TierPlatinum},
	{big.NewInt(10_000), TierGold},
	{big.NewInt(1_000), TierSilver},
	{big.NewInt(100), TierBronze},
}

// ClassifyStake maps a stake amount in base units to a Tier. Base units are
// truncated to whole tokens before the breakpoints apply, and every
// breakpoint is inclusive: exactly 100,000 tokens classifies as Platinum,
// one base unit less as Gold. A nil stake counts as zero.
func ClassifyStake(stake *big.Int) Tier {
	if stake == nil || stake.Sign() <= 0 {
		return TierNone
	}
	tokens := new(big.Int).Quo(stake, baseUnitsPerToken)
	for _, bp := range tierBreakpoints {
		if tokens.Cmp(bp.tokens) >= 0 {
			return bp.tier
		}
	}
	return TierNone
}

// WireByte returns the single-byte tier encoding used in the EVM payload.
// The destination contract only ever sees this value, never the Go type.
func (t Tier) WireByte() uint8 {
	return uint8(t)
}

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierBronze:
		return "bronze"
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	case TierPlatinum:
		return "platinum"
	case TierValidator:
		return "validator"
	default:
		return "unknown"
	}
}
