// Package univariate implements the dense univariate polynomial and
// balanced-point Lagrange interpolation of spec.md §4.7, generic over any
// ring T via an explicit Ops table (mirroring package mle/matvec).
package univariate

// Ops bundles the ring operations univariate needs over T.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
	Invert  func(T) (T, bool)
}

// Poly is a dense coefficient vector, constant term first.
type Poly[T any] struct {
	Coeffs []T
}

// New wraps a coefficient slice (constant term first).
func New[T any](coeffs []T) Poly[T] { return Poly[T]{Coeffs: append([]T{}, coeffs...)} }

// Degree returns len(Coeffs)-1, or -1 for the empty polynomial.
func (p Poly[T]) Degree() int { return len(p.Coeffs) - 1 }

// Eval evaluates p at x via Horner's method (spec.md §4.7: "c0 +
// x·(c1 + x·(c2 + …))").
func Eval[T any](ops Ops[T], p Poly[T], x T) T {
	if len(p.Coeffs) == 0 {
		return ops.Zero()
	}
	acc := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc = ops.Add(ops.Mul(acc, x), p.Coeffs[i])
	}
	return acc
}

// balancedAbscissae returns the d+1 balanced integer sample points the spec
// names, for degrees 1..5: the first count points of {-2,-1,0,1,2,3}, a
// contiguous subrange starting at -2 and extending rightward (spec.md §4.7:
// "any contiguous sub-list of these is valid").
func balancedAbscissae(count int) []int {
	full := []int{-2, -1, 0, 1, 2, 3}
	return full[:count]
}

// Interpolate returns the coefficient vector of the unique polynomial of
// degree len(values)-1 passing through the balanced abscissae (-2,-1,0,1,2,3
// truncated to len(values) points) with the given values, via closed-form
// Lagrange interpolation (spec.md §4.7).
func Interpolate[T any](ops Ops[T], values []T) (Poly[T], bool) {
	xs := balancedAbscissae(len(values))
	return interpolateAt(ops, xs, values)
}

// interpolateAt runs the general closed-form Lagrange construction over
// caller-supplied integer abscissae xs and matching ring values ys.
func interpolateAt[T any](ops Ops[T], xs []int, ys []T) (Poly[T], bool) {
	n := len(xs)
	result := make([]T, n)
	for i := range result {
		result[i] = ops.Zero()
	}
	for i := 0; i < n; i++ {
		// basis_i(X) = prod_{j!=i} (X - xs[j]) / (xs[i] - xs[j])
		basis := []T{ops.One()}
		denom := ops.One()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			basis = polyMulLinear(ops, basis, xs[j])
			diff := xs[i] - xs[j]
			denom = ops.Mul(denom, ops.FromInt(diff))
		}
		invDenom, ok := ops.Invert(denom)
		if !ok {
			return Poly[T]{}, false
		}
		scale := ops.Mul(ys[i], invDenom)
		for k := range basis {
			result[k] = ops.Add(result[k], ops.Mul(basis[k], scale))
		}
	}
	return Poly[T]{Coeffs: result}, true
}

// polyMulLinear multiplies a polynomial (low-degree-first coefficients) by
// (X - root), widening its degree by one.
func polyMulLinear[T any](ops Ops[T], p []T, root int) []T {
	out := make([]T, len(p)+1)
	for i := range out {
		out[i] = ops.Zero()
	}
	negRoot := ops.FromInt(-root)
	for i, c := range p {
		out[i] = ops.Add(out[i], ops.Mul(c, negRoot))
		out[i+1] = ops.Add(out[i+1], c)
	}
	return out
}
