package sponge

import (
	"hash"

	"latticefold/byteorder"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// HashSponge adapts any standard hash.Hash constructor into the Sponge
// contract of spec.md §6.1/§6.2: concrete hash/duplex collaborators
// (BLAKE2, SHA3, RIPEMD) are external to this module and only need to
// satisfy this interface. Rather than relying on hash.Hash's (unexported,
// implementation-specific) internal state for Clone, this sponge keeps an
// explicit transcript log and re-derives each squeeze from it, so Clone is
// a cheap slice copy regardless of which concrete hash backs it.
type HashSponge[T any] struct {
	newHash func() hash.Hash
	encode  func(T) []byte
	decode  func([]byte) T
	log     []byte
	counter uint64
}

// NewHashSponge builds a hash-backed sponge from a hash.Hash constructor
// plus ring (en/de)coders.
func NewHashSponge[T any](newHash func() hash.Hash, encode func(T) []byte, decode func([]byte) T) *HashSponge[T] {
	return &HashSponge[T]{newHash: newHash, encode: encode, decode: decode}
}

// Absorb appends the encoded element to the transcript log.
func (s *HashSponge[T]) Absorb(e T) {
	s.log = append(s.log, s.encode(e)...)
}

// Squeeze hashes the transcript log together with a round counter, decodes
// the digest into T, and folds the digest back into the log so the next
// squeeze differs (duplex-style chaining without a true permutation).
func (s *HashSponge[T]) Squeeze() T {
	h := s.newHash()
	h.Write(s.log)
	h.Write(byteorder.WriteU64(nil, byteorder.LittleEndian, s.counter))
	sum := h.Sum(nil)
	s.counter++
	s.log = append(s.log, sum...)
	return s.decode(sum)
}

// Clone copies the transcript log so prover and verifier forks never share
// mutable state.
func (s *HashSponge[T]) Clone() Sponge[T] {
	return &HashSponge[T]{
		newHash: s.newHash,
		encode:  s.encode,
		decode:  s.decode,
		log:     append([]byte{}, s.log...),
		counter: s.counter,
	}
}

// NewBlake2bSponge builds a HashSponge backed by BLAKE2b-256.
func NewBlake2bSponge[T any](encode func(T) []byte, decode func([]byte) T) *HashSponge[T] {
	return NewHashSponge(func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	}, encode, decode)
}

// NewSHA3Sponge builds a HashSponge backed by SHA3-256.
func NewSHA3Sponge[T any](encode func(T) []byte, decode func([]byte) T) *HashSponge[T] {
	return NewHashSponge(sha3.New256, encode, decode)
}

// NewRIPEMD160Sponge builds a HashSponge backed by RIPEMD-160.
func NewRIPEMD160Sponge[T any](encode func(T) []byte, decode func([]byte) T) *HashSponge[T] {
	return NewHashSponge(ripemd160.New, encode, decode)
}

// SipHashSponge is a fast, non-cryptographic sponge over uint64 words, built
// directly on github.com/dchest/siphash rather than wrapped as a hash.Hash,
// since SipHash already exposes a keyed Sum64 — useful where the Fiat–Shamir
// transcript's binding property matters less than squeeze throughput (e.g.
// a testing transcript).
type SipHashSponge struct {
	k0, k1  uint64
	log     []byte
	counter uint64
}

// NewSipHashSponge builds a keyed SipHash sponge.
func NewSipHashSponge(k0, k1 uint64) *SipHashSponge {
	return &SipHashSponge{k0: k0, k1: k1}
}

// Absorb appends the little-endian encoding of e to the transcript log.
func (s *SipHashSponge) Absorb(e uint64) {
	s.log = byteorder.WriteU64(s.log, byteorder.LittleEndian, e)
}

// Squeeze returns the next SipHash digest of the transcript log plus round
// counter.
func (s *SipHashSponge) Squeeze() uint64 {
	buf := byteorder.WriteU64(append([]byte{}, s.log...), byteorder.LittleEndian, s.counter)
	out := siphash.Hash(s.k0, s.k1, buf)
	s.counter++
	s.log = byteorder.WriteU64(s.log, byteorder.LittleEndian, out)
	return out
}

// Clone copies the transcript log.
func (s *SipHashSponge) Clone() Sponge[uint64] {
	return &SipHashSponge{k0: s.k0, k1: s.k1, log: append([]byte{}, s.log...), counter: s.counter}
}
