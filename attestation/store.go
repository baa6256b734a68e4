package attestation

import "github.com/ethereum/go-ethereum/common"

// Store is the get/set contract for registry state. The registry serializes
// every operation under its own lock, so implementations need no locking of
// their own; a durable backend only has to honor these calls.
type Store interface {
	Attestation(id common.Hash) (*Attestation, bool)
	PutAttestation(att *Attestation)
	OwnerIDs(owner Identity) []common.Hash
	AppendOwnerID(owner Identity, id common.Hash)
	Nonce(owner Identity) uint64
	SetNonce(owner Identity, nonce uint64)
}

// MemoryStore keeps registry state in process-local maps. It is the
// reference backend for tests and the demo CLI.
type MemoryStore struct {
	attestations map[common.Hash]*Attestation
	ownerIDs     map[Identity][]common.Hash
	nonces       map[Identity]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attestations: make(map[common.Hash]*Attestation),
		ownerIDs:     make(map[Identity][]common.Hash),
		nonces:       make(map[Identity]uint64),
	}
}

func (m *MemoryStore) Attestation(id common.Hash) (*Attestation, bool) {
	att, ok := m.attestations[id]
	return att, ok
}

func (m *MemoryStore) PutAttestation(att *Attestation) {
	m.attestations[att.ID] = att
}

func (m *MemoryStore) OwnerIDs(owner Identity) []common.Hash {
	return m.ownerIDs[owner]
}

func (m *MemoryStore) AppendOwnerID(owner Identity, id common.Hash) {
	m.ownerIDs[owner] = append(m.ownerIDs[owner], id)
}

func (m *MemoryStore) Nonce(owner Identity) uint64 {
	return m.nonces[owner]
}

func (m *MemoryStore) SetNonce(owner Identity, nonce uint64) {
	m.nonces[owner] = nonce
}
