// Package sumcheck implements the Fiat–Shamir sum-check prover/verifier of
// spec.md §4.8, generic over a base/extension ring T, parameterised by an
// Oracle abstraction that stands in for the spec's composed-polynomial
// shapes (MultilinearExtension, EqExtension, PowExtension, CCS::Polynomial,
// G1/G2/GEval/GNorm/GFold). Composed polynomials are supplied as Oracle
// values built by packages mle/constraint/latticefold rather than via a
// shared method set, following the function-table convention used
// throughout this module (package zq/poly expose free functions, not
// methods).
package sumcheck

import (
	"latticefold/sponge"
	"latticefold/univariate"
)

// Ops bundles the ring operations sum-check needs over T.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
	Invert  func(T) (T, bool)
	Equal   func(a, b T) bool
}

func uniOps[T any](ops Ops[T]) univariate.Ops[T] {
	return univariate.Ops[T]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul,
		Zero: ops.Zero, One: ops.One, FromInt: ops.FromInt, Invert: ops.Invert,
	}
}

// Oracle is the composed-polynomial abstraction sum-check rounds over. For
// a polynomial over NumVars variables, Table(e) returns the value table of
// the polynomial with its leading variable fixed to e, enumerated over the
// remaining 2^(NumVars-1) Boolean assignments (in the hypercube's composed
// index order) — the explicit analogue of the spec's "bind<e,Assign> then
// Sum::call", made eager here instead of symbolically fused. Bind
// permanently fixes the leading variable to a real
// (possibly non-integer) Fiat–Shamir challenge, returning an oracle over
// NumVars-1 variables. At evaluates the original, unbound polynomial at a
// complete point, used only for the verifier's final check.
type Oracle[T any] struct {
	NumVars int
	Deg     int
	Table   func(e T) []T
	Bind    func(r T) Oracle[T]
	At      func(point []T) T
}

// RoundEval sums Table(e) via ops.Add, producing q_i(e) for the current
// round's univariate reduction.
func RoundEval[T any](ops Ops[T], o Oracle[T], e T) T {
	tbl := o.Table(e)
	acc := ops.Zero()
	for _, v := range tbl {
		acc = ops.Add(acc, v)
	}
	return acc
}

// Product composes oracles by pointwise-multiplying their Table(e) outputs
// before summing, which is the correct way to combine multilinear factors
// under sum-check (the hypercube sum does not distribute over a product, so
// Product must not simply multiply each factor's already-summed RoundEval).
func Product[T any](ops Ops[T], oracles ...Oracle[T]) Oracle[T] {
	n := oracles[0].NumVars
	deg := 0
	for _, o := range oracles {
		deg += o.Deg
	}
	return Oracle[T]{
		NumVars: n,
		Deg:     deg,
		Table: func(e T) []T {
			tables := make([][]T, len(oracles))
			for i, o := range oracles {
				tables[i] = o.Table(e)
			}
			size := len(tables[0])
			out := make([]T, size)
			for k := 0; k < size; k++ {
				acc := ops.One()
				for _, tb := range tables {
					acc = ops.Mul(acc, tb[k])
				}
				out[k] = acc
			}
			return out
		},
		Bind: func(r T) Oracle[T] {
			next := make([]Oracle[T], len(oracles))
			for i, o := range oracles {
				next[i] = o.Bind(r)
			}
			return Product(ops, next...)
		},
		At: func(point []T) T {
			acc := ops.One()
			for _, o := range oracles {
				acc = ops.Mul(acc, o.At(point))
			}
			return acc
		},
	}
}

// Proof is the ordered list of round polynomials, one per sum-check round
// (spec.md §3: "Sum-check Proof — an ordered list of univariate
// polynomials, one per round").
type Proof[T any] struct {
	Rounds []univariate.Poly[T]
}

// samplePoints returns the degree+1 balanced integer evaluation points the
// round-polynomial interpolator expects.
func samplePoints(degree int) []int {
	full := []int{-2, -1, 0, 1, 2, 3}
	return full[:degree+1]
}

// Prove runs the classical n-round sum-check over oracle, claiming sum s,
// absorbing each round polynomial into sp and squeezing the next round's
// challenge (spec.md §4.8). It returns the proof and the challenge vector
// r_0..r_{n-1}.
func Prove[T any](ops Ops[T], oracle Oracle[T], claimedSum T, sp sponge.Sponge[T], absorbPoly func(sponge.Sponge[T], univariate.Poly[T])) (Proof[T], []T) {
	uops := uniOps(ops)
	n := oracle.NumVars
	challenges := make([]T, n)
	proof := Proof[T]{Rounds: make([]univariate.Poly[T], n)}
	cur := oracle

	for i := 0; i < n; i++ {
		xs := samplePoints(cur.Deg)
		values := make([]T, len(xs))
		for k, x := range xs {
			values[k] = RoundEval(ops, cur, ops.FromInt(x))
		}
		qi, ok := univariate.Interpolate(uops, values)
		if !ok {
			panic("sumcheck: interpolation failed (degenerate abscissae)")
		}
		proof.Rounds[i] = qi

		absorbPoly(sp, qi)
		r := sp.Squeeze()
		challenges[i] = r

		cur = cur.Bind(r)
	}
	return proof, challenges
}

// Verify replays the prover's transcript against proof, checking the
// round-sum consistency q_i(0)+q_i(1) == previous claim at every round and
// the final equality against oracle.At(challenges) (spec.md §4.8). oracle
// here must be able to evaluate the ORIGINAL (unbound) polynomial via At —
// callers typically lift it into the extension ring first.
func Verify[T any](ops Ops[T], oracle Oracle[T], claimedSum T, proof Proof[T], sp sponge.Sponge[T], absorbPoly func(sponge.Sponge[T], univariate.Poly[T])) bool {
	uops := uniOps(ops)
	n := oracle.NumVars
	if len(proof.Rounds) != n {
		return false
	}
	challenges := make([]T, n)
	claim := claimedSum
	for i := 0; i < n; i++ {
		qi := proof.Rounds[i]
		if qi.Degree() != oracle.Deg {
			return false
		}
		q0 := univariate.Eval(uops, qi, ops.Zero())
		q1 := univariate.Eval(uops, qi, ops.One())
		if !ops.Equal(ops.Add(q0, q1), claim) {
			return false
		}
		absorbPoly(sp, qi)
		r := sp.Squeeze()
		challenges[i] = r
		claim = univariate.Eval(uops, qi, r)
	}
	final := oracle.At(challenges)
	return ops.Equal(final, claim)
}

// EarlyStoppingProve emits only the first round and its challenge (spec.md
// §4.8: "the early-stopping prover emits only the first round and the
// challenge; the verifier checks the single equality. This is the base
// case used inside G_fold").
func EarlyStoppingProve[T any](ops Ops[T], oracle Oracle[T], sp sponge.Sponge[T], absorbPoly func(sponge.Sponge[T], univariate.Poly[T])) (univariate.Poly[T], T) {
	uops := uniOps(ops)
	xs := samplePoints(oracle.Deg)
	values := make([]T, len(xs))
	for k, x := range xs {
		values[k] = RoundEval(ops, oracle, ops.FromInt(x))
	}
	q0, ok := univariate.Interpolate(uops, values)
	if !ok {
		panic("sumcheck: early-stopping interpolation failed")
	}
	absorbPoly(sp, q0)
	r := sp.Squeeze()
	return q0, r
}

// EarlyStoppingVerify checks the single round equality q0(0)+q0(1) ==
// claimedSum and that oracle.At([r, ...]) matches q0(r), for the one
// remaining challenge r obtained by absorbing q0.
func EarlyStoppingVerify[T any](ops Ops[T], oracle Oracle[T], claimedSum T, q0 univariate.Poly[T], sp sponge.Sponge[T], absorbPoly func(sponge.Sponge[T], univariate.Poly[T]), restPoint func(r T) []T) bool {
	uops := uniOps(ops)
	v0 := univariate.Eval(uops, q0, ops.Zero())
	v1 := univariate.Eval(uops, q0, ops.One())
	if !ops.Equal(ops.Add(v0, v1), claimedSum) {
		return false
	}
	absorbPoly(sp, q0)
	r := sp.Squeeze()
	claim := univariate.Eval(uops, q0, r)
	final := oracle.At(restPoint(r))
	return ops.Equal(final, claim)
}
