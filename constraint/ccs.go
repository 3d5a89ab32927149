package constraint

import (
	"latticefold/matvec"
	"latticefold/mle"
	"latticefold/sumcheck"
)

// CCS is the customizable constraint system of spec.md §4.10: a sequence of
// sparse matrices M, selector sets S (each a subset of matrix indices), and
// coefficients C, with residue σ(z) = Σᵢ Cᵢ·⊙_{j∈Sᵢ} Mⱼ·z.
type CCS[T any] struct {
	M []matvec.Sparse[T]
	S [][]int
	C []T
}

// IsSatisfied returns σ(z) = 0^m (spec.md §4.10).
func IsSatisfied[T any](ops Ops[T], ccs CCS[T], z []T) bool {
	mops := mvOps(ops)
	m := ccs.M[0].Rows
	sigma := make([]T, m)
	for i := range sigma {
		sigma[i] = ops.Zero()
	}
	for i, sel := range ccs.S {
		term := make([]T, m)
		for k := range term {
			term[k] = ops.One()
		}
		for _, j := range sel {
			mz := matvec.SparseMatVec(mops, ccs.M[j], z)
			for k := range term {
				term[k] = ops.Mul(term[k], mz[k])
			}
		}
		for k := range sigma {
			sigma[k] = ops.Add(sigma[k], ops.Mul(ccs.C[i], term[k]))
		}
	}
	for _, v := range sigma {
		if !ops.Equal(v, ops.Zero()) {
			return false
		}
	}
	return true
}

// Degree returns d = max|Sᵢ|, the CCS polynomial's per-variable degree
// bound (spec.md §4.10).
func Degree[T any](ccs CCS[T]) int {
	d := 0
	for _, s := range ccs.S {
		if len(s) > d {
			d = len(s)
		}
	}
	return d
}

// Polynomial builds the sum-check-ready multivariate polynomial p(x) =
// Σᵢ Cᵢ·∏_{j∈Sᵢ} MLE(Mⱼ·z)(x), as a sumcheck.Oracle over the Boolean
// hypercube (spec.md §4.10).
func Polynomial[T any](ops Ops[T], ccs CCS[T], z []T) sumcheck.Oracle[T] {
	sops := sumcheck.Ops[T]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul,
		Zero: ops.Zero, One: ops.One, FromInt: ops.FromInt,
	}
	mops := mvOps(ops)

	terms := make([]sumcheck.Oracle[T], len(ccs.S))
	for i, sel := range ccs.S {
		factors := make([]sumcheck.Oracle[T], len(sel))
		for k, j := range sel {
			mz := matvec.SparseMatVec(mops, ccs.M[j], z)
			factors[k] = sumcheck.MLEOracle(sops, mle.NewMLE(mz))
		}
		terms[i] = scale(sops, sumcheck.Product(sops, factors...), ccs.C[i])
	}
	return sumOracles(sops, terms...)
}

// scale multiplies an oracle's table/point evaluations by a fixed
// coefficient, used to weight each CCS selector term by its coefficient.
func scale[T any](ops sumcheck.Ops[T], o sumcheck.Oracle[T], c T) sumcheck.Oracle[T] {
	return sumcheck.Oracle[T]{
		NumVars: o.NumVars,
		Deg:     o.Deg,
		Table: func(e T) []T {
			tbl := o.Table(e)
			out := make([]T, len(tbl))
			for i, v := range tbl {
				out[i] = ops.Mul(c, v)
			}
			return out
		},
		Bind: func(r T) sumcheck.Oracle[T] { return scale(ops, o.Bind(r), c) },
		At:   func(point []T) T { return ops.Mul(c, o.At(point)) },
	}
}

// sumOracles adds several same-shape oracles' table/point evaluations
// together, used to combine the CCS's weighted selector terms into one
// polynomial.
func sumOracles[T any](ops sumcheck.Ops[T], os ...sumcheck.Oracle[T]) sumcheck.Oracle[T] {
	n := os[0].NumVars
	deg := os[0].Deg
	for _, o := range os {
		if o.Deg > deg {
			deg = o.Deg
		}
	}
	return sumcheck.Oracle[T]{
		NumVars: n,
		Deg:     deg,
		Table: func(e T) []T {
			size := 1 << uint(n-1)
			out := make([]T, size)
			for i := range out {
				out[i] = ops.Zero()
			}
			for _, o := range os {
				tbl := o.Table(e)
				for i, v := range tbl {
					out[i] = ops.Add(out[i], v)
				}
			}
			return out
		},
		Bind: func(r T) sumcheck.Oracle[T] {
			next := make([]sumcheck.Oracle[T], len(os))
			for i, o := range os {
				next[i] = o.Bind(r)
			}
			return sumOracles(ops, next...)
		},
		At: func(point []T) T {
			acc := ops.Zero()
			for _, o := range os {
				acc = ops.Add(acc, o.At(point))
			}
			return acc
		},
	}
}
