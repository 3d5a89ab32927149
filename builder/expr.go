package builder

// Ops bundles the ring operations builder needs over T.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Neg     func(T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
}

// LinearCombination maps variables to ring coefficients. Entries for the
// same variable are merged by summing coefficients (spec.md §3).
type LinearCombination[T any] struct {
	terms map[Variable]T
	order []Variable // insertion order, for deterministic row emission
}

// NewLC returns an empty linear combination.
func NewLC[T any]() LinearCombination[T] {
	return LinearCombination[T]{terms: make(map[Variable]T)}
}

// AddTerm accumulates coeff·v into lc.
func (lc *LinearCombination[T]) AddTerm(ops Ops[T], v Variable, coeff T) {
	if cur, ok := lc.terms[v]; ok {
		lc.terms[v] = ops.Add(cur, coeff)
		return
	}
	lc.terms[v] = coeff
	lc.order = append(lc.order, v)
}

// Terms returns the variables in insertion order; use Coeff for their
// coefficients.
func (lc LinearCombination[T]) Terms() []Variable { return lc.order }

// Coeff returns the coefficient of v, or zero if absent.
func (lc LinearCombination[T]) Coeff(ops Ops[T], v Variable) T {
	if c, ok := lc.terms[v]; ok {
		return c
	}
	return ops.Zero()
}

// merge returns a new combination equal to a+b.
func mergeLC[T any](ops Ops[T], a, b LinearCombination[T]) LinearCombination[T] {
	out := NewLC[T]()
	for _, v := range a.order {
		out.AddTerm(ops, v, a.terms[v])
	}
	for _, v := range b.order {
		out.AddTerm(ops, v, b.terms[v])
	}
	return out
}

// scaleLC returns a new combination equal to s·a.
func scaleLC[T any](ops Ops[T], a LinearCombination[T], s T) LinearCombination[T] {
	out := NewLC[T]()
	for _, v := range a.order {
		out.AddTerm(ops, v, ops.Mul(a.terms[v], s))
	}
	return out
}

// Expr is a degree-tracked expression whose leaves are Constant/Input/
// Auxiliary and whose only node so far is a linear combination (+ closes
// over linear combinations; · is modeled separately by Product, since a
// general product of linear combinations is what an R1CS/CCS row actually
// constrains, per spec.md §4.11: "Operator == compiles its two sides into
// (Combination r, LinearCombination l)").
type Expr[T any] struct {
	LC LinearCombination[T]
}

// Constant returns a degree-0 leaf.
func Constant[T any](ops Ops[T], c T) Expr[T] {
	lc := NewLC[T]()
	lc.AddTerm(ops, ConstantVar, c)
	return Expr[T]{LC: lc}
}

// Input returns a degree-1 leaf referencing input variable i.
func Input[T any](ops Ops[T], i int) Expr[T] {
	lc := NewLC[T]()
	lc.AddTerm(ops, Variable{Kind: KindInput, Number: i}, ops.One())
	return Expr[T]{LC: lc}
}

// Auxiliary returns a degree-1 leaf referencing auxiliary variable i.
func Auxiliary[T any](ops Ops[T], i int) Expr[T] {
	lc := NewLC[T]()
	lc.AddTerm(ops, Variable{Kind: KindAuxiliary, Number: i}, ops.One())
	return Expr[T]{LC: lc}
}

// Add returns a+b.
func Add[T any](ops Ops[T], a, b Expr[T]) Expr[T] {
	return Expr[T]{LC: mergeLC(ops, a.LC, b.LC)}
}

// Sub returns a-b.
func Sub[T any](ops Ops[T], a, b Expr[T]) Expr[T] {
	return Expr[T]{LC: mergeLC(ops, a.LC, scaleLC(ops, b.LC, ops.Neg(ops.One())))}
}

// ScalarMul returns s·a.
func ScalarMul[T any](ops Ops[T], a Expr[T], s T) Expr[T] {
	return Expr[T]{LC: scaleLC(ops, a.LC, s)}
}

// Product is a chain of D linear-combination factors whose product forms
// the right-hand side of an == constraint (spec.md §4.11: "Higher-degree
// products are carved into D slots").
type Product[T any] struct {
	Factors []Expr[T]
}

// Mul starts a two-factor product chain; MulExpr extends it.
func Mul[T any](a, b Expr[T]) Product[T] {
	return Product[T]{Factors: []Expr[T]{a, b}}
}

// MulExpr appends another linear factor to an existing product chain (used
// to reach degree > 2 for CCS).
func (p Product[T]) MulExpr(e Expr[T]) Product[T] {
	return Product[T]{Factors: append(append([]Expr[T]{}, p.Factors...), e)}
}

// Degree returns the number of multiplicative slots D.
func (p Product[T]) Degree() int { return len(p.Factors) }

// AsProduct lifts a pure linear expression into a degree-1 product (spec.md
// §4.11: "A pure linear combination on the right produces r = (l, 1, 1,
// …)" — here represented as a single-factor product; Builder pads with
// constant-1 factors up to D when lowering to a fixed-D CCS).
func AsProduct[T any](e Expr[T]) Product[T] { return Product[T]{Factors: []Expr[T]{e}} }
