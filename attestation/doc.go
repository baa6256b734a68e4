// Package attestation issues tamper-evident, EVM-verifiable attestations
// binding a host-ledger identity and its stake-derived trust tier to an
// address on a destination chain.
//
// When a caller requests an attestation, the registry:
// 1. Validates the target EVM address and queries the caller's stake
// 2. Classifies the stake into a Tier
// 3. ABI-encodes the payload and keccak-hashes the encoding into the identifier
// 4. Signs the identifier through the personal-message frame (65-byte r||s||v)
// 5. Persists the record and bumps the owner's replay-protection nonce
//
// Only the encoded payload and the signature travel across chains; the
// destination verifier recomputes the identifier from the encoding, recovers
// the signer address, and decodes tier/stake/expiry with its native ABI
// rules. The encoding layout and the signing convention are therefore a
// fixed wire contract and must not change unilaterally.
//
// Key components:
// - Signer: secp256k1 signing with a cached EVM address
// - Payload: canonical ABI tuple encoding and identifier derivation
// - Registry: lifecycle, per-owner nonces and indexing, revocation
package attestation
