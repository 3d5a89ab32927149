// Package bigint implements a fixed-size big integer backed by a little-endian
// limb array, used exclusively as the scalar type feeding prime-field
// arithmetic in package fp.
package bigint

import "math/bits"

// BigInt is an unsigned integer represented as N 64-bit limbs in
// little-endian order (limb 0 holds the least significant bits). Arithmetic
// wraps modulo 2^(64*N), mirroring the original BigInt<N> semantics.
type BigInt struct {
	limbs []uint64
}

// New allocates a zero BigInt with n limbs.
func New(n int) BigInt {
	return BigInt{limbs: make([]uint64, n)}
}

// FromUint64 builds an n-limb BigInt holding the value v.
func FromUint64(n int, v uint64) BigInt {
	b := New(n)
	if n > 0 {
		b.limbs[0] = v
	}
	return b
}

// N returns the limb count.
func (b BigInt) N() int { return len(b.limbs) }

// Limb returns limb i (0 = least significant).
func (b BigInt) Limb(i int) uint64 { return b.limbs[i] }

// SetLimb overwrites limb i.
func (b *BigInt) SetLimb(i int, v uint64) { b.limbs[i] = v }

// Clone returns an independent copy.
func (b BigInt) Clone() BigInt {
	out := New(len(b.limbs))
	copy(out.limbs, b.limbs)
	return out
}

// IsZero reports whether every limb is zero.
func (b BigInt) IsZero() bool {
	for _, l := range b.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Add returns a+b mod 2^(64N), the carry-out limbs are silently dropped as
// per the wraparound invariant.
func Add(a, b BigInt) BigInt {
	n := len(a.limbs)
	out := New(n)
	var c uint64
	for i := 0; i < n; i++ {
		out.limbs[i], c = bits.Add64(a.limbs[i], b.limbs[i], c)
	}
	return out
}

// Sub returns a-b mod 2^(64N).
func Sub(a, b BigInt) BigInt {
	n := len(a.limbs)
	out := New(n)
	var borrow uint64
	for i := 0; i < n; i++ {
		out.limbs[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	return out
}

// Mul returns the full 2N-limb product of a and b.
func Mul(a, b BigInt) BigInt {
	n := len(a.limbs)
	out := New(2 * n)
	for i := 0; i < n; i++ {
		if a.limbs[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(a.limbs[i], b.limbs[j])
			var c uint64
			out.limbs[i+j], c = bits.Add64(out.limbs[i+j], lo, 0)
			hi += c
			out.limbs[i+j], c = bits.Add64(out.limbs[i+j], carry, 0)
			carry = hi + c
		}
		out.limbs[i+n], _ = bits.Add64(out.limbs[i+n], carry, 0)
	}
	return out
}

// Square returns Mul(a, a).
func Square(a BigInt) BigInt { return Mul(a, a) }

// Double returns a+a mod 2^(64N).
func Double(a BigInt) BigInt { return Add(a, a) }

// Halve returns floor(a/2), shifting all limbs right by one bit.
func Halve(a BigInt) BigInt {
	n := len(a.limbs)
	out := New(n)
	var carry uint64
	for i := n - 1; i >= 0; i-- {
		out.limbs[i] = (a.limbs[i] >> 1) | (carry << 63)
		carry = a.limbs[i] & 1
	}
	return out
}

// Bit returns bit i (0 = least significant) of a.
func (b BigInt) Bit(i int) uint {
	limb := i / 64
	off := uint(i % 64)
	if limb >= len(b.limbs) {
		return 0
	}
	return uint((b.limbs[limb] >> off) & 1)
}

// BitLen returns the index one past the highest set bit, or 0 if b is zero.
func (b BigInt) BitLen() int {
	for i := len(b.limbs) - 1; i >= 0; i-- {
		if b.limbs[i] != 0 {
			return i*64 + bits.Len64(b.limbs[i])
		}
	}
	return 0
}

// BitIterator yields the bits of b from most significant to least, as
// consumed by square-and-multiply exponentiation (spec.md §4.1 invert).
type BitIterator struct {
	b   BigInt
	pos int
}

// Bits returns a bit iterator whose first bit is the highest set bit.
func (b BigInt) Bits() *BitIterator {
	return &BitIterator{b: b, pos: b.BitLen() - 1}
}

// Next returns the next bit (MSB-first) and whether one was available.
func (it *BitIterator) Next() (uint, bool) {
	if it.pos < 0 {
		return 0, false
	}
	v := it.b.Bit(it.pos)
	it.pos--
	return v, true
}
