package attestation

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Payload carries the attestation fields that are cryptographically
// committed. It is rebuilt from a stored Attestation on every export and
// must encode byte-identically each time, because the destination verifier
// recomputes the identifier from the encoding.
//
// Encode produces the ABI encoding of the Solidity tuple
//
//	(bytes32, string, string, uint256, uint8, uint64, uint64, uint64, uint64)
//
// Layout:
//
//	word 0      identityHash, raw 32 bytes
//	word 1      byte offset to the targetChain block (always 288)
//	word 2      byte offset to the targetAddress block
//	word 3      stake, big-endian uint256
//	word 4      tier byte, left-padded
//	words 5..8  accountAgeDays, createdAt, expiresAt, nonce
//	tail        per string: 32-byte length word, UTF-8 bytes, zero padding
//	            up to the next 32-byte boundary; chain block first
type Payload struct {
	IdentityHash   common.Hash
	TargetChain    string
	TargetAddress  string
	StakeAmount    *big.Int
	Tier           uint8
	AccountAgeDays uint64
	CreatedAt      uint64 // unix milliseconds
	ExpiresAt      uint64 // unix milliseconds
	Nonce          uint64
}

const (
	wordSize  = 32
	headWords = 9
	headSize  = headWords * wordSize
)

// Encode returns the canonical ABI encoding. It is deterministic and cannot
// fail for a well-formed payload.
func (p *Payload) Encode() []byte {
	chainPadded := padTo32(len(p.TargetChain))
	addrPadded := padTo32(len(p.TargetAddress))
	addrOffset := headSize + wordSize + chainPadded

	buf := make([]byte, 0, headSize+2*wordSize+chainPadded+addrPadded)

	buf = append(buf, p.IdentityHash.Bytes()...)
	buf = appendUint64Word(buf, headSize)
	buf = appendUint64Word(buf, uint64(addrOffset))
	buf = append(buf, stakeWord(p.StakeAmount)...)
	buf = append(buf, common.LeftPadBytes([]byte{p.Tier}, wordSize)...)
	buf = appendUint64Word(buf, p.AccountAgeDays)
	buf = appendUint64Word(buf, p.CreatedAt)
	buf = appendUint64Word(buf, p.ExpiresAt)
	buf = appendUint64Word(buf, p.Nonce)

	buf = appendStringBlock(buf, p.TargetChain)
	buf = appendStringBlock(buf, p.TargetAddress)
	return buf
}

// ID derives the attestation identifier: keccak256 of the canonical
// encoding. The identifier doubles as the record's primary key and as the
// digest that gets signed.
func (p *Payload) ID() common.Hash {
	return crypto.Keccak256Hash(p.Encode())
}

// IdentityHashOf hashes the canonical string form of an owner identity. The
// raw identity never crosses the chain boundary, only this digest does.
func IdentityHashOf(owner Identity) common.Hash {
	return crypto.Keccak256Hash([]byte(owner))
}

func padTo32(n int) int {
	return (n + wordSize - 1) / wordSize * wordSize
}

func appendUint64Word(buf []byte, v uint64) []byte {
	var word [wordSize]byte
	binary.BigEndian.PutUint64(word[wordSize-8:], v)
	return append(buf, word[:]...)
}

// stakeWord renders the stake as a 256-bit big-endian word. Values wider
// than 256 bits keep only the low-order 32 bytes.
func stakeWord(stake *big.Int) []byte {
	if stake == nil {
		return make([]byte, wordSize)
	}
	b := stake.Bytes()
	if len(b) > wordSize {
		b = b[len(b)-wordSize:]
	}
	return common.LeftPadBytes(b, wordSize)
}

func appendStringBlock(buf []byte, s string) []byte {
	buf = appendUint64Word(buf, uint64(len(s)))
	buf = append(buf, s...)
	return append(buf, make([]byte, padTo32(len(s))-len(s))...)
}
