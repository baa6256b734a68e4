package attestation

import (
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// CreatedEvent is the public subset of fields announced after a successful
// creation.
type CreatedEvent struct {
	ID            common.Hash
	Owner         Identity
	TargetChain   string
	TargetAddress string
	Tier          Tier
	ExpiresAt     uint64
}

// RevokedEvent announces a revocation.
type RevokedEvent struct {
	ID    common.Hash
	Owner Identity
}

// EventSink receives lifecycle events. Events fire after state is
// persisted; implementations must not call back into the registry.
type EventSink interface {
	AttestationCreated(CreatedEvent)
	AttestationRevoked(RevokedEvent)
}

// NoopSink discards all events.
type NoopSink struct{}

func (NoopSink) AttestationCreated(CreatedEvent) {}
func (NoopSink) AttestationRevoked(RevokedEvent) {}

// LogSink writes one log entry per event.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) AttestationCreated(ev CreatedEvent) {
	s.Logger.Info("attestation created",
		zap.String("id", ev.ID.Hex()),
		zap.String("owner", string(ev.Owner)),
		zap.String("target_chain", ev.TargetChain),
		zap.String("target_address", ev.TargetAddress),
		zap.Stringer("tier", ev.Tier),
		zap.Uint64("expires_at", ev.ExpiresAt),
	)
}

func (s LogSink) AttestationRevoked(ev RevokedEvent) {
	s.Logger.Info("attestation revoked",
		zap.String("id", ev.ID.Hex()),
		zap.String("owner", string(ev.Owner)),
	)
}
