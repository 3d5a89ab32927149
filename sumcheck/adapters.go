package sumcheck

import "latticefold/mle"

func mleOps[T any](ops Ops[T]) mle.Ops[T] {
	return mle.Ops[T]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul,
		Zero: ops.Zero, One: ops.One, FromInt: ops.FromInt,
	}
}

// MLEOracle adapts a multilinear extension into a sum-check Oracle.
func MLEOracle[T any](ops Ops[T], m mle.MLE[T]) Oracle[T] {
	mops := mleOps(ops)
	return Oracle[T]{
		NumVars: m.Variables(),
		Deg:     1,
		Table: func(e T) []T {
			return mle.BindConcrete(mops, m, e).Coeffs
		},
		Bind: func(r T) Oracle[T] {
			return MLEOracle(ops, mle.BindConcrete(mops, m, r))
		},
		At: func(point []T) T {
			return mle.EvalAt(mops, m, point)
		},
	}
}

// EqOracle adapts an equality extension into a sum-check Oracle. Because
// Σ_{x∈{0,1}} eqTerm(r,x) = 1 for every r, every variable after the leading
// one marginalises away under a hypercube sum — but Table must still return
// the FULL value table (not the collapsed scalar), since Oracle composition
// via Product multiplies tables pointwise before summing, and that identity
// only holds for Eq summed in isolation.
func EqOracle[T any](ops Ops[T], e mle.Eq[T]) Oracle[T] {
	mops := mleOps(ops)
	return Oracle[T]{
		NumVars: e.Variables(),
		Deg:     1,
		Table: func(x T) []T {
			scalarAfterLead := ops.Mul(e.Scalar, mle.EqTerm(mops, e.R[0], x))
			return eqTable(ops, scalarAfterLead, e.R[1:])
		},
		Bind: func(r T) Oracle[T] {
			return EqOracle(ops, mle.Bind(mops, e, r))
		},
		At: func(point []T) T {
			return mle.Eval(mops, e, point)
		},
	}
}

// eqTable enumerates the 2^len(r) Boolean-hypercube values of
// scalar * ∏_i eqTerm(r_i, b_i), in composed-index (MSB-first) order.
func eqTable[T any](ops Ops[T], scalar T, r []T) []T {
	n := len(r)
	size := 1 << uint(n)
	out := make([]T, size)
	mops := mleOps(ops)
	for idx := 0; idx < size; idx++ {
		acc := scalar
		for i := 0; i < n; i++ {
			bit := (idx >> uint(n-1-i)) & 1
			var x T
			if bit == 1 {
				x = ops.One()
			} else {
				x = ops.Zero()
			}
			acc = ops.Mul(acc, mle.EqTerm(mops, r[i], x))
		}
		out[idx] = acc
	}
	return out
}

// PowOracle adapts a Pow extension (an Eq built from Powers) the same way.
func PowOracle[T any](ops Ops[T], p mle.Eq[T]) Oracle[T] { return EqOracle(ops, p) }
