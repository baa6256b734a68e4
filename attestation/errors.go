package attestation

import "github.com/pkg/errors"

// Registry error taxonomy. Callers branch with errors.Is; the registry
// wraps these with operation context and never retries. Every failure
// aborts the whole operation with no partial writes.
var (
	// ErrInvalidTargetAddress rejects target addresses that are not
	// 0x-prefixed 40-hex-digit EVM addresses.
	ErrInvalidTargetAddress = errors.New("invalid EVM target address")

	// ErrNotFound reports an unknown attestation id in an operation that
	// requires existence.
	ErrNotFound = errors.New("attestation not found")

	// ErrNotOwner rejects revocation by anyone but the attestation owner.
	ErrNotOwner = errors.New("caller does not own attestation")

	// ErrAlreadyRevoked reports a second revocation of the same record.
	ErrAlreadyRevoked = errors.New("attestation already revoked")
)
