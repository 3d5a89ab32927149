package zq

import (
	"math/bits"

	"latticefold/bigint"
)

// Elem is a signed-representative ring element modulo P.Q(), held internally
// in Montgomery form (n*R mod Q, R = 2^64). The zero value is the additive
// identity.
type Elem[P Params] struct {
	mont uint64
}

func params[P Params]() P {
	var p P
	return p
}

// redc is the single-word Montgomery reduction: given hi*2^64+lo, returns
// (hi*2^64+lo) * R^-1 mod Q.
func redc[P Params](hi, lo uint64) uint64 {
	p := params[P]()
	q := p.Q()
	m := lo * p.NegQInv()
	mHi, mLo := bits.Mul64(m, q)
	_, carry := bits.Add64(lo, mLo, 0)
	sum := hi + mHi + carry
	if sum >= q {
		sum -= q
	}
	return sum
}

// From lifts a canonical (non-negative) integer n into Montgomery form.
func From[P Params](n uint64) Elem[P] {
	p := params[P]()
	hi, lo := bits.Mul64(n%p.Q(), p.R2())
	return Elem[P]{mont: redc[P](hi, lo)}
}

// FromSigned lifts a signed integer, reducing it modulo Q first.
func FromSigned[P Params](n int64) Elem[P] {
	p := params[P]()
	q := int64(p.Q())
	n %= q
	if n < 0 {
		n += q
	}
	return From[P](uint64(n))
}

// Zero is the additive identity.
func Zero[P Params]() Elem[P] { return Elem[P]{} }

// One is the multiplicative identity.
func One[P Params]() Elem[P] { return From[P](1) }

// Canonical returns the representative in [0, Q).
func (e Elem[P]) Canonical() uint64 {
	return redc[P](0, e.mont)
}

// Balanced returns the representative in [-(Q-1)/2, (Q-1)/2].
func (e Elem[P]) Balanced() int64 {
	p := params[P]()
	q := p.Q()
	c := e.Canonical()
	if c > (q-1)/2 {
		return int64(c) - int64(q)
	}
	return int64(c)
}

// Absolute returns |Balanced()|.
func (e Elem[P]) Absolute() uint64 {
	b := e.Balanced()
	if b < 0 {
		return uint64(-b)
	}
	return uint64(b)
}

// IsZero reports whether e is the additive identity.
func (e Elem[P]) IsZero() bool { return e.Canonical() == 0 }

// Equal reports canonical equality.
func Equal[P Params](a, b Elem[P]) bool { return a.Canonical() == b.Canonical() }

// Add returns a+b mod Q.
func Add[P Params](a, b Elem[P]) Elem[P] {
	p := params[P]()
	q := p.Q()
	s, carry := bits.Add64(a.mont, b.mont, 0)
	if carry != 0 || s >= q {
		s -= q
	}
	return Elem[P]{mont: s}
}

// Sub returns a-b mod Q.
func Sub[P Params](a, b Elem[P]) Elem[P] {
	p := params[P]()
	q := p.Q()
	d, borrow := bits.Sub64(a.mont, b.mont, 0)
	if borrow != 0 {
		d += q
	}
	return Elem[P]{mont: d}
}

// Neg returns -a mod Q.
func Neg[P Params](a Elem[P]) Elem[P] { return Sub[P](Zero[P](), a) }

// Double returns a+a mod Q.
func Double[P Params](a Elem[P]) Elem[P] { return Add[P](a, a) }

// Mul returns a*b mod Q.
func Mul[P Params](a, b Elem[P]) Elem[P] {
	hi, lo := bits.Mul64(a.mont, b.mont)
	return Elem[P]{mont: redc[P](hi, lo)}
}

// Square returns a*a mod Q.
func Square[P Params](a Elem[P]) Elem[P] { return Mul[P](a, a) }

// Invert returns (a^-1, true) when a != 0, otherwise (0, false) — the
// "absent optional" of spec.md §7.
func Invert[P Params](a Elem[P]) (Elem[P], bool) {
	if a.IsZero() {
		return Elem[P]{}, false
	}
	p := params[P]()
	if p.DivisionRing() {
		return eulerInvert[P](a), true
	}
	return binaryGCDInvert[P](a), true
}

// eulerInvert computes a^(Q-2) via fixed-window square-and-multiply driven
// by bigint's bit iterator, per spec.md §4.1.
func eulerInvert[P Params](a Elem[P]) Elem[P] {
	p := params[P]()
	exp := bigint.FromUint64(1, p.Q()-2)
	acc := One[P]()
	it := exp.Bits()
	for {
		bit, ok := it.Next()
		if !ok {
			break
		}
		acc = Square[P](acc)
		if bit == 1 {
			acc = Mul[P](acc, a)
		}
	}
	return acc
}

// binaryGCDInvert implements the extended binary-GCD variant of spec.md
// §4.1, used by Invert for moduli that do not set DivisionRing. Working over
// the canonical (non-Montgomery) representatives, it maintains a·x1 ≡ u and
// a·x2 ≡ v (mod Q); whenever u or v is even it halves it and halves the
// matching x modulo Q (adding Q first when x is odd), and it stops when u
// reaches zero, leaving a^-1 in x2. It does not read TwoInverted.
func binaryGCDInvert[P Params](a Elem[P]) Elem[P] {
	p := params[P]()
	q := int64(p.Q())
	u := int64(a.Canonical())
	v := q
	x1, x2 := int64(1), int64(0)
	for u != 0 {
		for u%2 == 0 {
			u /= 2
			if x1%2 != 0 {
				x1 += q
			}
			x1 /= 2
		}
		for v%2 == 0 {
			v /= 2
			if x2%2 != 0 {
				x2 += q
			}
			x2 /= 2
		}
		if u >= v {
			u -= v
			x1 -= x2
		} else {
			v -= u
			x2 -= x1
		}
	}
	x2 %= q
	if x2 < 0 {
		x2 += q
	}
	return From[P](uint64(x2))
}

// CheckInfinityNorm reports whether |Balanced()| < beta.
func (e Elem[P]) CheckInfinityNorm(beta uint64) bool {
	return e.Absolute() < beta
}

// Twiddle returns the i-th power of the canonical 2^TwoAdicity()-th root of
// unity, in Montgomery form, for NTT butterflies (spec.md §4.1, §4.3).
func Twiddle[P Params](i int) Elem[P] {
	p := params[P]()
	root := From[P](p.RootOfUnity())
	return powInt[P](root, i)
}

// Twiddles returns the first n powers of the root of unity.
func Twiddles[P Params](n int) []Elem[P] {
	out := make([]Elem[P], n)
	acc := One[P]()
	root := From[P](params[P]().RootOfUnity())
	for i := 0; i < n; i++ {
		out[i] = acc
		acc = Mul[P](acc, root)
	}
	return out
}

func powInt[P Params](base Elem[P], e int) Elem[P] {
	acc := One[P]()
	for e > 0 {
		if e&1 == 1 {
			acc = Mul[P](acc, base)
		}
		base = Square[P](base)
		e >>= 1
	}
	return acc
}
