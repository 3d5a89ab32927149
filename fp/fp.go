// Package fp implements the prime field Fp of spec.md §4.1 "Prime field Fp":
// modular arithmetic over a wide prime modulus, with Tonelli–Shanks square
// roots and Legendre-symbol quadratic-residue detection. Elements are
// canonical math/big integers reduced after every operation; the package
// does not use Montgomery form, package bigint, or package zq.
package fp

import (
	"math/big"
)

// Modulus names the compile-time prime for a concrete Fp instantiation,
// carrying the precomputed constants spec.md §4.1 lists: P_MINUS_1_HALVED,
// Q, S, Q_PLUS_1_HALVED, TWO_INVERTED, and a sparse-modulus flag.
type Modulus interface {
	Q() *big.Int
	S() int               // 2-adicity of Q-1
	QMinus1Over2S() *big.Int // odd part of Q-1
	QPlus1Halved() *big.Int
	PMinus1Halved() *big.Int
	TwoInverted() *big.Int
	SparseModulus() bool
	NonResidue() *big.Int // a fixed quadratic non-residue, for Tonelli–Shanks
	Name() string
}

// Elem is an Fp element held in canonical (non-negative, < Q) form. Unlike
// zq.Elem this package keeps values in ordinary big.Int form rather than a
// hand-rolled Montgomery ladder: the field moduli used by the folding engine
// (BFV's Rq/Rt, extension-field moduli) are all small enough that big.Int's
// own Montgomery-optimized ModExp/ModInverse are the appropriate "ecosystem"
// tool instead of reimplementing multi-limb REDC — the one place in this
// module where the standard library is the correct idiomatic choice; no
// example repo hand-rolls wide Montgomery arithmetic either (they all widen
// through CRT over single 64-bit limbs instead, see ntru/crt.go).
type Elem[M Modulus] struct {
	v *big.Int
}

func mod[M Modulus]() M {
	var m M
	return m
}

func reduce[M Modulus](v *big.Int) *big.Int {
	q := mod[M]().Q()
	r := new(big.Int).Mod(v, q)
	return r
}

// From lifts a big.Int into Fp, reducing modulo Q.
func From[M Modulus](v *big.Int) Elem[M] {
	return Elem[M]{v: reduce[M](v)}
}

// FromInt64 lifts a native integer into Fp.
func FromInt64[M Modulus](v int64) Elem[M] {
	return From[M](big.NewInt(v))
}

// Zero is the additive identity.
func Zero[M Modulus]() Elem[M] { return Elem[M]{v: big.NewInt(0)} }

// One is the multiplicative identity.
func One[M Modulus]() Elem[M] { return Elem[M]{v: big.NewInt(1)} }

// Value returns the canonical big.Int representative, owned by the caller.
func (e Elem[M]) Value() *big.Int { return new(big.Int).Set(e.v) }

// IsZero reports whether e is the additive identity.
func (e Elem[M]) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports equality of canonical representatives.
func Equal[M Modulus](a, b Elem[M]) bool { return a.v.Cmp(b.v) == 0 }

// Add returns a+b mod Q.
func Add[M Modulus](a, b Elem[M]) Elem[M] {
	return Elem[M]{v: reduce[M](new(big.Int).Add(a.v, b.v))}
}

// Sub returns a-b mod Q.
func Sub[M Modulus](a, b Elem[M]) Elem[M] {
	return Elem[M]{v: reduce[M](new(big.Int).Sub(a.v, b.v))}
}

// Neg returns -a mod Q.
func Neg[M Modulus](a Elem[M]) Elem[M] { return Sub[M](Zero[M](), a) }

// Double returns a+a mod Q.
func Double[M Modulus](a Elem[M]) Elem[M] { return Add[M](a, a) }

// Mul returns a*b mod Q.
func Mul[M Modulus](a, b Elem[M]) Elem[M] {
	return Elem[M]{v: reduce[M](new(big.Int).Mul(a.v, b.v))}
}

// Square returns a*a mod Q.
func Square[M Modulus](a Elem[M]) Elem[M] { return Mul[M](a, a) }

// Invert returns (a^-1, true) when a != 0, else (0, false).
func Invert[M Modulus](a Elem[M]) (Elem[M], bool) {
	if a.IsZero() {
		return Elem[M]{}, false
	}
	q := mod[M]().Q()
	inv := new(big.Int).ModInverse(a.v, q)
	if inv == nil {
		return Elem[M]{}, false
	}
	return Elem[M]{v: inv}, true
}

// Legendre returns the Legendre symbol of a: 1 if a is a nonzero quadratic
// residue, -1 if a non-residue, 0 if a is zero.
func Legendre[M Modulus](a Elem[M]) int {
	if a.IsZero() {
		return 0
	}
	q := mod[M]().Q()
	e := new(big.Int).Rsh(new(big.Int).Sub(q, big.NewInt(1)), 1)
	r := new(big.Int).Exp(a.v, e, q)
	if r.Cmp(big.NewInt(1)) == 0 {
		return 1
	}
	return -1
}

// Sqrt computes a Tonelli–Shanks square root of a, returning (root, true)
// when a is a quadratic residue, else (0, false) — the other "absent
// optional" of spec.md §7.
func Sqrt[M Modulus](a Elem[M]) (Elem[M], bool) {
	if a.IsZero() {
		return Zero[M](), true
	}
	if Legendre[M](a) != 1 {
		return Elem[M]{}, false
	}
	m := mod[M]()
	q := m.Q()
	s := m.S()
	qOdd := m.QMinus1Over2S()

	if s == 1 {
		// Q ≡ 3 (mod 4): sqrt = a^((Q+1)/4)
		root := new(big.Int).Exp(a.v, m.QPlus1Halved(), q)
		return Elem[M]{v: root}, true
	}

	z := m.NonResidue()
	c := new(big.Int).Exp(z, qOdd, q)
	x := new(big.Int).Exp(a.v, new(big.Int).Rsh(new(big.Int).Add(qOdd, big.NewInt(1)), 1), q)
	t := new(big.Int).Exp(a.v, qOdd, q)
	mm := s

	for t.Cmp(big.NewInt(1)) != 0 {
		// find least i, 0<i<mm, such that t^(2^i) = 1
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(big.NewInt(1)) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, q)
			i++
			if i == mm {
				return Elem[M]{}, false
			}
		}
		b := new(big.Int).Exp(c, new(big.Int).Lsh(big.NewInt(1), uint(mm-i-1)), q)
		x.Mul(x, b)
		x.Mod(x, q)
		c.Mul(b, b)
		c.Mod(c, q)
		t.Mul(t, c)
		t.Mod(t, q)
		mm = i
	}
	return Elem[M]{v: x}, true
}
