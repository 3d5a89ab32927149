package latticefold

import (
	"latticefold/mle"
	"latticefold/sumcheck"
)

func sopsOf[T any](ops Ops[T]) sumcheck.Ops[T] {
	return sumcheck.Ops[T]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul,
		Zero: ops.Zero, One: ops.One, FromInt: ops.FromInt,
	}
}

func mopsOf[T any](ops Ops[T]) mle.Ops[T] {
	return mle.Ops[T]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul,
		Zero: ops.Zero, One: ops.One, FromInt: ops.FromInt,
	}
}

// G1 is the product of an Eq extension anchored at alpha and an MLE of f,
// sharing the same n = log2|f| Boolean variables (spec.md §4.12). alpha
// plays the role of the Eq extension's target point; r is supplied later as
// the sum-check's symbolic variable when the returned oracle is bound.
func G1[T any](ops Ops[T], alpha []T, f mle.MLE[T]) sumcheck.Oracle[T] {
	sops := sopsOf(ops)
	eq := mle.NewEq(mopsOf(ops), alpha)
	return sumcheck.Product(sops, sumcheck.EqOracle(sops, eq), sumcheck.MLEOracle(sops, f))
}

// G2 is mu · (MLE(f)³ − MLE(f)); under the base-2 norm this sums to zero on
// the hypercube exactly when |f|∞ ≤ 1 (spec.md §4.12).
func G2[T any](ops Ops[T], mu T, f mle.MLE[T]) sumcheck.Oracle[T] {
	sops := sopsOf(ops)
	m := sumcheck.MLEOracle(sops, f)
	cube := sumcheck.Product(sops, m, m, m)
	diff := subOracle(sops, cube, m)
	return scaleOracle(sops, diff, mu)
}

// GEval sums G1 across the 2k parallel witness chunks (spec.md §4.12:
// "independent sums of G1/G2 replicated for the 2k parallel chunks of the
// witness"); alphas[i] is the Eq anchor for chunk i.
func GEval[T any](ops Ops[T], alphas [][]T, chunks []mle.MLE[T]) sumcheck.Oracle[T] {
	sops := sopsOf(ops)
	terms := make([]sumcheck.Oracle[T], len(chunks))
	for i, f := range chunks {
		terms[i] = G1(ops, alphas[i], f)
	}
	return sumOracles(sops, terms...)
}

// GNorm sums G2 across the 2k parallel witness chunks, one mu per chunk
// (spec.md §4.12).
func GNorm[T any](ops Ops[T], mus []T, chunks []mle.MLE[T]) sumcheck.Oracle[T] {
	sops := sopsOf(ops)
	terms := make([]sumcheck.Oracle[T], len(chunks))
	for i, f := range chunks {
		terms[i] = G2(ops, mus[i], f)
	}
	return sumOracles(sops, terms...)
}

// GFold is GEval + GNorm, the single polynomial the fold protocol's
// sum-check runs over (spec.md §4.12).
func GFold[T any](ops Ops[T], alphas [][]T, mus []T, chunks []mle.MLE[T]) sumcheck.Oracle[T] {
	sops := sopsOf(ops)
	return sumOracles(sops, GEval(ops, alphas, chunks), GNorm(ops, mus, chunks))
}

// scaleOracle multiplies an oracle's table/point evaluations by a fixed
// coefficient.
func scaleOracle[T any](ops sumcheck.Ops[T], o sumcheck.Oracle[T], c T) sumcheck.Oracle[T] {
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
		Bind: func(r T) sumcheck.Oracle[T] { return scaleOracle(ops, o.Bind(r), c) },
		At:   func(point []T) T { return ops.Mul(c, o.At(point)) },
	}
}

// subOracle subtracts b's table/point evaluations from a's, for two
// same-shape oracles.
func subOracle[T any](ops sumcheck.Ops[T], a, b sumcheck.Oracle[T]) sumcheck.Oracle[T] {
	deg := a.Deg
	if b.Deg > deg {
		deg = b.Deg
	}
	return sumcheck.Oracle[T]{
		NumVars: a.NumVars,
		Deg:     deg,
		Table: func(e T) []T {
			ta := a.Table(e)
			tb := b.Table(e)
			out := make([]T, len(ta))
			for i := range out {
				out[i] = ops.Sub(ta[i], tb[i])
			}
			return out
		},
		Bind: func(r T) sumcheck.Oracle[T] { return subOracle(ops, a.Bind(r), b.Bind(r)) },
		At:   func(point []T) T { return ops.Sub(a.At(point), b.At(point)) },
	}
}

// sumOracles adds several same-shape oracles' table/point evaluations
// together (mirrors package constraint's private combinator of the same
// name, duplicated here since the two packages compose different oracle
// families and neither imports the other).
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
