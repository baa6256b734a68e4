package attestation

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	t.Run("NonceDefaultsToZero", func(t *testing.T) {
		assert.Zero(t, store.Nonce(ownerAlice))
		store.SetNonce(ownerAlice, 3)
		assert.Equal(t, uint64(3), store.Nonce(ownerAlice))
		assert.Zero(t, store.Nonce(ownerBob))
	})

	t.Run("AttestationLookup", func(t *testing.T) {
		_, ok := store.Attestation(common.Hash{0x01})
		assert.False(t, ok)

		att := &Attestation{ID: common.Hash{0x01}, Owner: ownerAlice}
		store.PutAttestation(att)

		got, ok := store.Attestation(common.Hash{0x01})
		require.True(t, ok)
		assert.Equal(t, att, got)
	})

	t.Run("OwnerIDsPreserveOrder", func(t *testing.T) {
		assert.Empty(t, store.OwnerIDs(ownerBob))
		store.AppendOwnerID(ownerBob, common.Hash{0x0A})
		store.AppendOwnerID(ownerBob, common.Hash{0x0B})
		assert.Equal(t, []common.Hash{{0x0A}, {0x0B}}, store.OwnerIDs(ownerBob))
	})
}
