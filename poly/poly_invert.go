package poly

import "latticefold/zq"

// Invert returns (a^-1 mod f, true) when a is a unit in R=Zq[x]/f(x) (f
// monic, degree n, given by its coefficients excluding the leading 1), via
// polynomial extended-Euclid — the field-extension analogue of the Feng /
// Itoh–Tsujii identity spec.md §4.2 names: both compute a multiplicative
// inverse in a degree-n extension from a sequence of ring operations rather
// than a direct Euclidean algorithm on bare coefficients; this module keeps
// XGCD because, unlike Itoh–Tsujii, it needs no precomputed inversion
// exponent table per modulus.
func Invert[P zq.Params](a Coeff[P], f []zq.Elem[P]) (Coeff[P], bool) {
	n := len(f)
	fFull := make([]zq.Elem[P], n+1)
	copy(fFull, f)
	fFull[n] = zq.One[P]()

	r0 := fFull
	r1 := trimTrailingZero(append([]zq.Elem[P]{}, a.Coeffs...))
	s0 := []zq.Elem[P]{zq.Zero[P]()}
	s1 := []zq.Elem[P]{zq.One[P]()}

	for !isZeroPoly(r1) {
		q, r := polyDivMod[P](r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, polySub[P](s0, polyMul[P](q, s1))
	}
	if polyDegree(r0) != 0 {
		return Coeff[P]{}, false
	}
	inv, ok := zq.Invert[P](r0[0])
	if !ok {
		return Coeff[P]{}, false
	}
	result := polyScalarMul[P](s0, inv)
	out := NewCoeff[P](n, a.Conv)
	for i, c := range result {
		if i < n {
			out.Coeffs[i] = c
		}
	}
	return out, true
}

// Conjugate reverses the spectrum of an NTT-form polynomial (spec.md §4.2):
// entry 0 is kept and entry i is taken from entry n-i. It accepts only NTT
// form; there is no coefficient-form variant.
func Conjugate[P zq.Params](a NTTFormP[P]) NTTFormP[P] {
	n := len(a.Evals)
	out := make([]zq.Elem[P], n)
	out[0] = a.Evals[0]
	for i := 1; i < n; i++ {
		out[i] = a.Evals[n-i]
	}
	return NTTFormP[P]{Evals: out}
}

func trimTrailingZero[P zq.Params](p []zq.Elem[P]) []zq.Elem[P] {
	for len(p) > 1 && p[len(p)-1].IsZero() {
		p = p[:len(p)-1]
	}
	return p
}

func isZeroPoly[P zq.Params](p []zq.Elem[P]) bool {
	for _, c := range p {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func polyDegree[P zq.Params](p []zq.Elem[P]) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

func polyDivMod[P zq.Params](a, b []zq.Elem[P]) (q, r []zq.Elem[P]) {
	r = append([]zq.Elem[P]{}, a...)
	db := polyDegree(b)
	if db < 0 {
		return []zq.Elem[P]{zq.Zero[P]()}, r
	}
	lead, _ := zq.Invert[P](b[db])
	da := polyDegree(r)
	q = make([]zq.Elem[P], maxInt(da-db+1, 1))
	for i := range q {
		q[i] = zq.Zero[P]()
	}
	for da >= db && !isZeroPoly(r) {
		coeff := zq.Mul[P](r[da], lead)
		shift := da - db
		q[shift] = coeff
		for i := 0; i <= db; i++ {
			r[shift+i] = zq.Sub[P](r[shift+i], zq.Mul[P](coeff, b[i]))
		}
		r = trimTrailingZero(r)
		da = polyDegree(r)
	}
	return q, r
}

func polyMul[P zq.Params](a, b []zq.Elem[P]) []zq.Elem[P] {
	out := make([]zq.Elem[P], len(a)+len(b)-1)
	for i := range out {
		out[i] = zq.Zero[P]()
	}
	for i, ai := range a {
		if ai.IsZero() {
			continue
		}
		for j, bj := range b {
			out[i+j] = zq.Add[P](out[i+j], zq.Mul[P](ai, bj))
		}
	}
	return out
}

func polySub[P zq.Params](a, b []zq.Elem[P]) []zq.Elem[P] {
	n := maxInt(len(a), len(b))
	out := make([]zq.Elem[P], n)
	for i := 0; i < n; i++ {
		var av, bv zq.Elem[P]
		if i < len(a) {
			av = a[i]
		} else {
			av = zq.Zero[P]()
		}
		if i < len(b) {
			bv = b[i]
		} else {
			bv = zq.Zero[P]()
		}
		out[i] = zq.Sub[P](av, bv)
	}
	return trimTrailingZero(out)
}

func polyScalarMul[P zq.Params](a []zq.Elem[P], s zq.Elem[P]) []zq.Elem[P] {
	out := make([]zq.Elem[P], len(a))
	for i, c := range a {
		out[i] = zq.Mul[P](c, s)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
