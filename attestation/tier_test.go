package attestation

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// motes converts whole tokens to base units (1 token = 1e9 base units).
func motes(tokens int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(tokens), big.NewInt(1_000_000_000))
}

func TestClassifyStake_Breakpoints(t *testing.T) {
	cases := []struct {
		name  string
		stake *big.Int
		want  Tier
	}{
		{"nil stake", nil, TierNone},
		{"zero", big.NewInt(0), TierNone},
		{"just below bronze", motes(99), TierNone},
		{"bronze boundary", motes(100), TierBronze},
		{"below silver", motes(999), TierBronze},
		{"silver boundary", motes(1_000), TierSilver},
		{"below gold", motes(9_999), TierSilver},
		{"gold boundary", motes(10_000), TierGold},
		{"below platinum", motes(99_999), TierGold},
		{"platinum boundary", motes(100_000), TierPlatinum},
		{"far above platinum", motes(123_456_789), TierPlatinum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyStake(tc.stake))
		})
	}
}

func TestClassifyStake_TruncatesBaseUnits(t *testing.T) {
	// One base unit short of 100 tokens must truncate down to 99.
	stake := new(big.Int).Sub(motes(100), big.NewInt(1))
	require.Equal(t, TierNone, ClassifyStake(stake))

	// Fractional token amounts above a boundary stay at that boundary's tier.
	stake = new(big.Int).Add(motes(1_000), big.NewInt(999_999_999))
	require.Equal(t, TierSilver, ClassifyStake(stake))
}

func TestClassifyStake_NeverValidator(t *testing.T) {
	require.Equal(t, TierPlatinum, ClassifyStake(motes(1_000_000_000)))
}

func TestTier_String(t *testing.T) {
	require.Equal(t, "none", TierNone.String())
	require.Equal(t, "gold", TierGold.String())
	require.Equal(t, "validator", TierValidator.String())
	require.Equal(t, "unknown", Tier(42).String())
}
