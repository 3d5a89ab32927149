// Package mle implements the multilinear, equality, and power extensions of
// spec.md §4.6 over a Boolean domain, generic over any ring T via an
// explicit Ops table (package zq and package poly expose arithmetic as free
// functions, not a method set, so mle follows the same convention as
// package matvec and package ringproduct).
package mle

// Ops bundles the ring operations mle needs over T, plus FromInt to realise
// the small integer constants (1, 2, 3, …) the closed-form bind formulas
// require.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
}

// lerp computes a + e·(b-a), the general form behind both the Eq symbolic
// closed forms and the MLE bind closed forms of spec.md §4.6: rather than
// the seven-way literal switch the original enumerates for e ∈ {−2,…,4},
// both reduce algebraically to this single linear-interpolation formula
// (each of the seven cases expands to the same expression). e is a full ring value, not restricted to small integers,
// since sum-check binds the real Fiat–Shamir challenge here too, not just
// the {−2,…,4} evaluation points used to build a round polynomial.
func lerp[T any](ops Ops[T], a, b, e T) T {
	diff := ops.Sub(b, a)
	return ops.Add(a, ops.Mul(e, diff))
}

// Eq is the equality-extension polynomial of spec.md §4.6: coefficients are
// the target point r ∈ F^n. Scalar carries the running multiplier
// accumulated by prior concrete binds (the "z" the spec describes as
// "absorbed into z, then multiplied into the recursion over r[1..]").
type Eq[T any] struct {
	R      []T
	Scalar T
}

// NewEq builds an Eq extension around target point r.
func NewEq[T any](ops Ops[T], r []T) Eq[T] {
	return Eq[T]{R: append([]T{}, r...), Scalar: ops.One()}
}

// Variables returns the number of unbound variables.
func (e Eq[T]) Variables() int { return len(e.R) }

// Degree is 1 for Eq: it is linear in each variable. Products with other
// factors (as sum-check builds them) account for their own degree.
func (Eq[T]) Degree() int { return 1 }

// Eval evaluates Eq at x, requiring len(x) == Variables().
func Eval[T any](ops Ops[T], e Eq[T], x []T) T {
	acc := e.Scalar
	for i, ri := range e.R {
		term := eqTerm(ops, ri, x[i])
		acc = ops.Mul(acc, term)
	}
	return acc
}

// EqTerm computes the per-variable Eq factor 2·r·x - r - x + 1 (spec.md
// §4.6), exported for package sumcheck's hypercube-table builder.
func EqTerm[T any](ops Ops[T], r, x T) T { return eqTerm(ops, r, x) }

// eqTerm computes 2·r·x - r - x + 1 = r·(2x-1) + (1-x), the per-variable Eq
// factor of spec.md §4.6.
func eqTerm[T any](ops Ops[T], r, x T) T {
	two := ops.FromInt(2)
	term1 := ops.Mul(two, ops.Mul(r, x))
	term1 = ops.Sub(term1, r)
	term1 = ops.Sub(term1, x)
	return ops.Add(term1, ops.One())
}

// SymbolicBind fuses the closed-form factor for binding r[0] to the integer
// e ∈ {−2,…,4} into acc via fuse, without mutating e's coefficient list, and
// returns the reduced Eq (one fewer variable) alongside the fused
// accumulator. This matches spec.md §4.8's "repeatedly applying bind<e,
// Assign>" usage inside sum-check, generalised to any fuse policy (Add,
// Sub, Mul, or plain assignment via `func(acc, z T) T { return z }`).
func SymbolicBind[T any](ops Ops[T], e Eq[T], at T, acc T, fuse func(acc, z T) T) (Eq[T], T) {
	r0 := e.R[0]
	z := lerp(ops, ops.Sub(ops.One(), r0), r0, at)
	next := Eq[T]{R: append([]T{}, e.R[1:]...), Scalar: e.Scalar}
	return next, fuse(acc, z)
}

// Bind concretely substitutes r[0] by e, dropping it from R and folding the
// closed-form factor into Scalar.
func Bind[T any](ops Ops[T], e Eq[T], at T) Eq[T] {
	r0 := e.R[0]
	z := lerp(ops, ops.Sub(ops.One(), r0), r0, at)
	return Eq[T]{R: append([]T{}, e.R[1:]...), Scalar: ops.Mul(e.Scalar, z)}
}

// Powers builds the Pow coefficient vector τ, τ², τ⁴, …, τ^(2^(n-1)) used as
// a Fiat–Shamir challenge amplifier (spec.md §4.6).
func Powers[T any](ops Ops[T], tau T, n int) []T {
	out := make([]T, n)
	cur := tau
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = ops.Mul(cur, cur)
	}
	return out
}

// NewPow builds a Pow extension: an Eq extension whose coefficient vector is
// Powers(tau, n) instead of an arbitrary point (spec.md §4.6: "identical to
// Eq but with coefficients τ, τ², τ⁴, …").
func NewPow[T any](ops Ops[T], tau T, n int) Eq[T] {
	return NewEq(ops, Powers(ops, tau, n))
}

// MLE is the multilinear extension of a function over the Boolean
// hypercube: Coeffs holds the 2^n values, indexed by the hypercube's
// composed index.
type MLE[T any] struct {
	Coeffs []T
}

// NewMLE wraps a caller-supplied table of 2^n values.
func NewMLE[T any](coeffs []T) MLE[T] {
	return MLE[T]{Coeffs: append([]T{}, coeffs...)}
}

// Variables returns n such that len(Coeffs) == 2^n.
func (m MLE[T]) Variables() int {
	n := 0
	for size := len(m.Coeffs); size > 1; size >>= 1 {
		n++
	}
	return n
}

// Degree is 1 per variable (MLE is multilinear).
func (MLE[T]) Degree() int { return 1 }

// BindConcrete halves the coefficient vector by substituting the leading
// variable with e: c_i ← c_i + e·(c_j - c_i), for i in the first half and
// j = i + half (spec.md §4.6).
func BindConcrete[T any](ops Ops[T], m MLE[T], e T) MLE[T] {
	half := len(m.Coeffs) / 2
	out := make([]T, half)
	for i := 0; i < half; i++ {
		out[i] = lerp(ops, m.Coeffs[i], m.Coeffs[i+half], e)
	}
	return MLE[T]{Coeffs: out}
}

// SymbolicBindPair fuses the closed-form factor for one (c_i, c_j) pair into
// acc via fuse, without mutating m, mirroring Eq's SymbolicBind for use
// inside sum-check's round-polynomial evaluation loop.
func SymbolicBindPair[T any](ops Ops[T], ci, cj, e T, acc T, fuse func(acc, z T) T) T {
	return fuse(acc, lerp(ops, ci, cj, e))
}

// EvalAt evaluates the MLE at an arbitrary field point x (not restricted to
// small integers), via the standard Eq-basis sum: Σ_b Coeffs[b]·Eq_b(x).
func EvalAt[T any](ops Ops[T], m MLE[T], x []T) T {
	n := m.Variables()
	acc := ops.Zero()
	for b := 0; b < len(m.Coeffs); b++ {
		term := m.Coeffs[b]
		for i := 0; i < n; i++ {
			bit := (b >> uint(n-1-i)) & 1
			var factor T
			if bit == 1 {
				factor = x[i]
			} else {
				factor = ops.Sub(ops.One(), x[i])
			}
			term = ops.Mul(term, factor)
		}
		acc = ops.Add(acc, term)
	}
	return acc
}

// Homomorph lifts Coeffs into an extension ring S via the supplied
// injection, per spec.md §4.6/§4.8's "homomorph<S>()".
func Homomorph[T, S any](m MLE[T], lift func(T) S) MLE[S] {
	out := make([]S, len(m.Coeffs))
	for i, c := range m.Coeffs {
		out[i] = lift(c)
	}
	return MLE[S]{Coeffs: out}
}

// HomomorphEq lifts an Eq's target point into an extension ring S.
func HomomorphEq[T, S any](e Eq[T], lift func(T) S) Eq[S] {
	out := make([]S, len(e.R))
	for i, r := range e.R {
		out[i] = lift(r)
	}
	return Eq[S]{R: out, Scalar: lift(e.Scalar)}
}
