package attestation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/veilprotocol/veil-attestation/staking"
)

// DefaultValidity bounds how long a freshly issued attestation remains
// acceptable to the destination verifier.
const DefaultValidity = 7 * 24 * time.Hour

// Config tunes a Registry. Zero values fall back to defaults.
type Config struct {
	// Validity is added to the creation timestamp to produce expires_at.
	Validity time.Duration `env:"VEIL_VALIDITY" envDefault:"168h"`
}

// CallContext carries the ambient facts of one host invocation: who is
// calling and what the ledger clock reads. Passing it explicitly keeps
// every operation a function of (state, context, input) and testable
// without a live host.
type CallContext struct {
	Caller Identity
	// Now is the ledger timestamp in unix milliseconds.
	Now uint64
}

// Registry owns the attestation lifecycle. Each exported operation runs as
// one atomic unit under the registry lock: either every write lands or none
// do. The signer key material is immutable after construction and needs no
// further synchronization.
type Registry struct {
	mu sync.RWMutex

	store  Store
	signer *Signer
	stake  staking.Querier
	events EventSink
	logger *zap.Logger

	validityMillis uint64
}

// Option overrides a Registry collaborator.
type Option func(*Registry)

// WithStore replaces the default in-memory store.
func WithStore(s Store) Option {
	return func(r *Registry) { r.store = s }
}

// WithEvents installs an event sink; the default discards events.
func WithEvents(sink EventSink) Option {
	return func(r *Registry) { r.events = sink }
}

// WithLogger installs a logger; the default is a nop.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry wires a registry around a signer and a stake querier. A nil
// querier falls back to the zero stub.
func NewRegistry(cfg Config, signer *Signer, stake staking.Querier, opts ...Option) (*Registry, error) {
	if signer == nil {
		return nil, errors.New("registry requires a signer")
	}
	validity := cfg.Validity
	if validity <= 0 {
		validity = DefaultValidity
	}
	if stake == nil {
		stake = staking.Zero{}
	}

	r := &Registry{
		store:          NewMemoryStore(),
		signer:         signer,
		stake:          stake,
		events:         NoopSink{},
		logger:         zap.NewNop(),
		validityMillis: uint64(validity / time.Millisecond),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CreateAttestation issues a signed attestation binding the caller to an
// address on the target chain. It returns the derived identifier and the
// 65-byte signature over it. The caller's nonce is consumed at its
// pre-increment value and bumped exactly once per successful creation.
func (r *Registry) CreateAttestation(ctx context.Context, call CallContext, targetChain, targetAddress string) (common.Hash, []byte, error) {
	if !validTargetAddress(targetAddress) {
		return common.Hash{}, nil, errors.Wrapf(ErrInvalidTargetAddress, "%q", targetAddress)
	}

	stake, err := r.stake.DelegatedStake(ctx, string(call.Caller))
	if err != nil {
		return common.Hash{}, nil, errors.Wrap(err, "query stake")
	}
	tier := ClassifyStake(stake)

	r.mu.Lock()
	defer r.mu.Unlock()

	nonce := r.store.Nonce(call.Caller)

	att := &Attestation{
		Owner:          call.Caller,
		TargetChain:    targetChain,
		TargetAddress:  targetAddress,
		StakeAmount:    stake,
		Tier:           tier,
		AccountAgeDays: 0, // no account-age source yet; committed as zero
		CreatedAt:      call.Now,
		ExpiresAt:      call.Now + r.validityMillis,
		Nonce:          nonce,
	}

	encoded := att.Payload().Encode()
	att.ID = crypto.Keccak256Hash(encoded)

	sig, err := r.signer.SignDigest(att.ID)
	if err != nil {
		return common.Hash{}, nil, errors.Wrap(err, "sign attestation")
	}

	// All writes happen after signing succeeded so a failure aborts cleanly.
	r.store.SetNonce(call.Caller, nonce+1)
	r.store.PutAttestation(att)
	r.store.AppendOwnerID(call.Caller, att.ID)

	r.logger.Debug("attestation created",
		zap.String("id", att.ID.Hex()),
		zap.String("owner", string(att.Owner)),
		zap.Uint64("nonce", nonce),
		zap.Stringer("tier", tier),
	)
	r.events.AttestationCreated(CreatedEvent{
		ID:            att.ID,
		Owner:         att.Owner,
		TargetChain:   att.TargetChain,
		TargetAddress: att.TargetAddress,
		Tier:          att.Tier,
		ExpiresAt:     att.ExpiresAt,
	})

	return att.ID, sig, nil
}

// RevokeAttestation flips a record to revoked. Only the owner may revoke,
// only once; the nonce consumed at creation is never released.
func (r *Registry) RevokeAttestation(call CallContext, id common.Hash) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.store.Attestation(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", id.Hex())
	}
	if att.Owner != call.Caller {
		return errors.Wrapf(ErrNotOwner, "%s", id.Hex())
	}
	if att.Revoked {
		return errors.Wrapf(ErrAlreadyRevoked, "%s", id.Hex())
	}

	att.Revoked = true
	r.store.PutAttestation(att)

	r.logger.Debug("attestation revoked",
		zap.String("id", id.Hex()),
		zap.String("owner", string(att.Owner)),
	)
	r.events.AttestationRevoked(RevokedEvent{ID: id, Owner: att.Owner})
	return nil
}

// GetAttestation looks up a record by id. Absence is a normal empty result,
// not an error.
func (r *Registry) GetAttestation(id common.Hash) (*Attestation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.store.Attestation(id)
	if !ok {
		return nil, false
	}
	return att.clone(), true
}

// GetUserAttestations returns the owner's records in creation order. Ids
// that no longer resolve are skipped; the per-owner list is an index over
// the authoritative attestation table, not a second source of truth.
func (r *Registry) GetUserAttestations(owner Identity) []*Attestation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.FilterMap(r.store.OwnerIDs(owner), func(id common.Hash, _ int) (*Attestation, bool) {
		att, ok := r.store.Attestation(id)
		if !ok {
			return nil, false
		}
		return att.clone(), true
	})
}

// GetUserTier reclassifies the owner's current stake. It deliberately
// ignores stored attestations: tier can drift between issuances.
func (r *Registry) GetUserTier(ctx context.Context, owner Identity) (Tier, error) {
	stake, err := r.stake.DelegatedStake(ctx, string(owner))
	if err != nil {
		return TierNone, errors.Wrap(err, "query stake")
	}
	return ClassifyStake(stake), nil
}

// SignerAddress returns the 20-byte address the destination verifier must
// expect signatures from.
func (r *Registry) SignerAddress() common.Address {
	return r.signer.Address()
}

// AttestationForEVM rebuilds the creation-time encoding and a fresh
// signature for a stored record, ready for the destination verifier's
// verifyAndStore(bytes, bytes) call. The bool result distinguishes an
// unknown id, which is a normal empty outcome, from a signing failure.
func (r *Registry) AttestationForEVM(id common.Hash) (encoded, signature []byte, ok bool, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, found := r.store.Attestation(id)
	if !found {
		return nil, nil, false, nil
	}

	encoded = att.Payload().Encode()

	// Recompute the identifier from the encoding before signing; a stored
	// record that no longer reproduces its own id must never be signed.
	digest := crypto.Keccak256Hash(encoded)
	if digest != att.ID {
		return nil, nil, false, errors.Errorf("attestation %s re-encodes to %s", att.ID.Hex(), digest.Hex())
	}

	signature, err = r.signer.SignDigest(digest)
	if err != nil {
		return nil, nil, false, errors.Wrap(err, "sign attestation")
	}
	return encoded, signature, true, nil
}

// validTargetAddress accepts exactly 0x-prefixed 20-byte hex addresses.
func validTargetAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && len(s) == 42 && common.IsHexAddress(s)
}
