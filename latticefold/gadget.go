// Package latticefold implements the LatticeFold folding engine of spec.md
// §4.12: the G1/G2/GEval/GNorm/GFold composed polynomials and the gadget
// bit-decomposition matrices that drive them, built atop packages mle and
// sumcheck.
package latticefold

import "latticefold/matvec"

// DefaultRadix is the gadget's default radix B (spec.md §4.12).
const DefaultRadix = 65536

// Ops bundles the ring operations the gadget and G-polynomials need over T.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
}

// Gadget builds gadget<R>(m, n) = I_m ⊗ (1, B, B², …, B^(n-1)), a sparse
// matrix of shape (m, m·n) whose row-block i picks out coordinate i of the
// decomposed value scaled by the successive powers of the radix B (spec.md
// §4.12).
func Gadget[T any](ops Ops[T], m, n, radix int) matvec.Sparse[T] {
	rows := make([]int, 0, m*n)
	cols := make([]int, 0, m*n)
	vals := make([]T, 0, m*n)
	for i := 0; i < m; i++ {
		pow := ops.One()
		for j := 0; j < n; j++ {
			rows = append(rows, i)
			cols = append(cols, i*n+j)
			vals = append(vals, pow)
			pow = ops.Mul(pow, ops.FromInt(radix))
		}
	}
	return matvec.NewSparse[T](m, m*n, rows, cols, vals)
}

// Decompose splits each of the m entries of v into n base-radix digits,
// returning a length-(m·n) vector such that Gadget(ops,m,n,radix)·out == v
// when every digit fits in [0, radix) (spec.md §4.12's bit-decomposition
// width n controls how many digits are emitted per coordinate).
func Decompose(v []int64, n int, radix int64) []int64 {
	out := make([]int64, len(v)*n)
	for i, x := range v {
		for j := 0; j < n; j++ {
			out[i*n+j] = x % radix
			x /= radix
		}
	}
	return out
}
