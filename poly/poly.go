// Package poly implements the cyclotomic polynomial ring R = Zq[x]/f(x) of
// spec.md §4.2, in two concrete, type-distinct shapes — coefficient form
// (Coeff) and NTT/evaluation form (NTTForm) — connected by an explicit,
// copying isomorphism rather than the original C++'s reinterpret_cast
// between the two (spec.md §9 Open Question: this module always copies; it
// never reuses the same backing array under two types).
package poly

import (
	"latticefold/ntt"
	"latticefold/zq"
)

// Convolution names the four multiplication strategies of spec.md §4.2.
type Convolution int

const (
	// Negacyclic multiplies modulo x^n+1 via classical schoolbook with a
	// wraparound sign flip.
	Negacyclic Convolution = iota
	// Binomial multiplies modulo x^n-ζ: schoolbook with the upper half
	// scaled by ζ.
	Binomial
	// Quotient reduces the schoolbook product modulo x^n+1, as Negacyclic
	// does; it takes no other reduction polynomial (ReduceByPoly reduces a
	// product modulo an arbitrary monic f).
	Quotient
	// NTT multiplies via the Number-Theoretic Transform (package ntt),
	// correct when f = x^n-1 (a cyclic, not negacyclic, ring); the twisted
	// negacyclic NTT is not implemented.
	NTT
)

// Coeff is a coefficient-form polynomial: N base-ring coefficients, indexed
// from the constant term.
type Coeff[P zq.Params] struct {
	Coeffs []zq.Elem[P]
	Conv   Convolution
	Zeta   zq.Elem[P] // used when Conv == Binomial, for f = x^n - ζ
}

// NTTFormP is the NTT/evaluation-form twin of Coeff: Evals holds evaluations
// of the represented polynomial at powers of the ring's primitive root, in
// ntt.CooleyTukey's bit-reversed order, not coefficients. It is a distinct
// type so the two forms
// can never be silently confused, per spec.md §4.2/§9.
type NTTFormP[P zq.Params] struct {
	Evals []zq.Elem[P]
}

// NewCoeff allocates a zero coefficient-form polynomial of degree n.
func NewCoeff[P zq.Params](n int, conv Convolution) Coeff[P] {
	c := make([]zq.Elem[P], n)
	for i := range c {
		c[i] = zq.Zero[P]()
	}
	return Coeff[P]{Coeffs: c, Conv: conv}
}

// N returns the ring degree.
func (c Coeff[P]) N() int { return len(c.Coeffs) }

// Add returns a+b coefficient-wise.
func Add[P zq.Params](a, b Coeff[P]) Coeff[P] {
	out := NewCoeff[P](a.N(), a.Conv)
	for i := range out.Coeffs {
		out.Coeffs[i] = zq.Add[P](a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Sub returns a-b coefficient-wise.
func Sub[P zq.Params](a, b Coeff[P]) Coeff[P] {
	out := NewCoeff[P](a.N(), a.Conv)
	for i := range out.Coeffs {
		out.Coeffs[i] = zq.Sub[P](a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Neg negates every coefficient.
func Neg[P zq.Params](a Coeff[P]) Coeff[P] {
	out := NewCoeff[P](a.N(), a.Conv)
	for i := range out.Coeffs {
		out.Coeffs[i] = zq.Neg[P](a.Coeffs[i])
	}
	return out
}

// Double returns a+a.
func Double[P zq.Params](a Coeff[P]) Coeff[P] { return Add[P](a, a) }

// ScalarMul multiplies every coefficient by s.
func ScalarMul[P zq.Params](a Coeff[P], s zq.Elem[P]) Coeff[P] {
	out := NewCoeff[P](a.N(), a.Conv)
	for i := range out.Coeffs {
		out.Coeffs[i] = zq.Mul[P](a.Coeffs[i], s)
	}
	return out
}

// Mul multiplies a and b using a's configured convolution strategy.
func Mul[P zq.Params](a, b Coeff[P]) Coeff[P] {
	switch a.Conv {
	case Binomial:
		return mulBinomial(a, b)
	case Quotient:
		return mulQuotient(a, b)
	case NTT:
		return mulViaNTT(a, b)
	default:
		return mulNegacyclic(a, b)
	}
}

// Square returns a*a.
func Square[P zq.Params](a Coeff[P]) Coeff[P] { return Mul[P](a, a) }

func mulNegacyclic[P zq.Params](a, b Coeff[P]) Coeff[P] {
	n := a.N()
	out := NewCoeff[P](n, a.Conv)
	for i := 0; i < n; i++ {
		if a.Coeffs[i].IsZero() {
			continue
		}
		for j := 0; j < n; j++ {
			term := zq.Mul[P](a.Coeffs[i], b.Coeffs[j])
			k := i + j
			if k < n {
				out.Coeffs[k] = zq.Add[P](out.Coeffs[k], term)
			} else {
				out.Coeffs[k-n] = zq.Sub[P](out.Coeffs[k-n], term)
			}
		}
	}
	return out
}

// mulBinomial multiplies modulo x^n - ζ: the upper half of the schoolbook
// wraparound is scaled by ζ instead of negated.
func mulBinomial[P zq.Params](a, b Coeff[P]) Coeff[P] {
	n := a.N()
	out := NewCoeff[P](n, a.Conv)
	out.Zeta = a.Zeta
	for i := 0; i < n; i++ {
		if a.Coeffs[i].IsZero() {
			continue
		}
		for j := 0; j < n; j++ {
			term := zq.Mul[P](a.Coeffs[i], b.Coeffs[j])
			k := i + j
			if k < n {
				out.Coeffs[k] = zq.Add[P](out.Coeffs[k], term)
			} else {
				scaled := zq.Mul[P](term, a.Zeta)
				out.Coeffs[k-n] = zq.Add[P](out.Coeffs[k-n], scaled)
			}
		}
	}
	return out
}

// mulQuotient computes the degree < 2n-1 schoolbook product and reduces it
// modulo x^n+1. It accepts no other reduction polynomial; ReduceByPoly
// reduces modulo an arbitrary monic f.
func mulQuotient[P zq.Params](a, b Coeff[P]) Coeff[P] {
	n := a.N()
	full := make([]zq.Elem[P], 2*n-1)
	for i := range full {
		full[i] = zq.Zero[P]()
	}
	for i := 0; i < n; i++ {
		if a.Coeffs[i].IsZero() {
			continue
		}
		for j := 0; j < n; j++ {
			full[i+j] = zq.Add[P](full[i+j], zq.Mul[P](a.Coeffs[i], b.Coeffs[j]))
		}
	}
	out := NewCoeff[P](n, a.Conv)
	copy(out.Coeffs, full[:n])
	// Reduce degree-n..2n-2 terms via f = x^n + 1; ReduceByPoly below
	// handles other monic f.
	for k := n; k < len(full); k++ {
		out.Coeffs[k-n] = zq.Sub[P](out.Coeffs[k-n], full[k])
	}
	return out
}

// ReduceByPoly reduces a degree < 2n-1 coefficient slice modulo the monic
// polynomial f (degree n, f[n] implicitly 1, f[0..n-1] given), via repeated
// fused subtraction — the quotient-modulus convolution of spec.md §4.2 for
// an arbitrary monic f of degree ≤ 4.
func ReduceByPoly[P zq.Params](full []zq.Elem[P], f []zq.Elem[P]) []zq.Elem[P] {
	n := len(f)
	for deg := len(full) - 1; deg >= n; deg-- {
		c := full[deg]
		if c.IsZero() {
			continue
		}
		full[deg] = zq.Zero[P]()
		for i := 0; i < n; i++ {
			full[deg-n+i] = zq.Sub[P](full[deg-n+i], zq.Mul[P](c, f[i]))
		}
	}
	return full[:n]
}

func mulViaNTT[P zq.Params](a, b Coeff[P]) Coeff[P] {
	n := a.N()
	av := make([]zq.Elem[P], n)
	bv := make([]zq.Elem[P], n)
	copy(av, a.Coeffs)
	copy(bv, b.Coeffs)
	ntt.CooleyTukey[P](av)
	ntt.CooleyTukey[P](bv)
	cv := ntt.Convolve[P](av, bv)
	ntt.GentlemanSande[P](cv)
	out := NewCoeff[P](n, NTT)
	copy(out.Coeffs, cv)
	return out
}

// ToNTT converts a coefficient-form polynomial (Conv == NTT) into its
// NTT-form twin via an explicit copy-and-transform.
func ToNTT[P zq.Params](a Coeff[P]) NTTFormP[P] {
	evals := make([]zq.Elem[P], a.N())
	copy(evals, a.Coeffs)
	ntt.CooleyTukey[P](evals)
	return NTTFormP[P]{Evals: evals}
}

// FromNTT converts an NTT-form polynomial back to coefficient form.
func FromNTT[P zq.Params](a NTTFormP[P]) Coeff[P] {
	coeffs := make([]zq.Elem[P], len(a.Evals))
	copy(coeffs, a.Evals)
	ntt.GentlemanSande[P](coeffs)
	return Coeff[P]{Coeffs: coeffs, Conv: NTT}
}

// MulNTT multiplies two NTT-form polynomials (spec.md §4.3: componentwise
// when inertia = 1, otherwise a per-block binomial convolution — see
// package ntt's Convolve).
func MulNTT[P zq.Params](a, b NTTFormP[P]) NTTFormP[P] {
	return NTTFormP[P]{Evals: ntt.Convolve[P](a.Evals, b.Evals)}
}

// InfinityNorm returns the max |balanced coefficient|.
func InfinityNorm[P zq.Params](a Coeff[P]) uint64 {
	var m uint64
	for _, c := range a.Coeffs {
		if v := c.Absolute(); v > m {
			m = v
		}
	}
	return m
}

// CheckInfinityNorm reports whether every balanced coefficient has absolute
// value strictly below beta.
func CheckInfinityNorm[P zq.Params](a Coeff[P], beta uint64) bool {
	return InfinityNorm[P](a) < beta
}
