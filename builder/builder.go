package builder

import (
	"latticefold/constraint"
	"latticefold/matvec"
)

// Constraint is one == assertion: lc equals the product of rhs's factors
// (spec.md §3: "Constraint — for CCS, a pair (Combination r, LinearCombination
// l) where Combination is D linear combinations. For R1CS, D=2").
type Constraint[T any] struct {
	L   LinearCombination[T]
	R   Product[T]
	Deg int
}

// Scope is a profiling tree node (spec.md §3/§4.11): the current path is the
// stack of parent pointers the Builder maintains while entering/exiting.
type Scope struct {
	Name        string
	Constraints int
	Variables   int
	Children    []*Scope
	parent      *Scope
}

// Builder accumulates inputs, auxiliaries, and constraints, closing over
// either r1cs() or ccs().
type Builder[T any] struct {
	ops         Ops[T]
	numInputs   int
	numAux      int
	constraints []Constraint[T]
	root        *Scope
	cur         *Scope
}

// New creates an empty builder over the given ring Ops.
func New[T any](ops Ops[T]) *Builder[T] {
	root := &Scope{Name: "root"}
	return &Builder[T]{ops: ops, root: root, cur: root}
}

// NewInput allocates a fresh input variable and returns its Expr leaf.
func (b *Builder[T]) NewInput() Expr[T] {
	e := Input[T](b.ops, b.numInputs)
	b.numInputs++
	b.cur.Variables++
	return e
}

// NewAuxiliary allocates a fresh auxiliary variable and returns its Expr
// leaf.
func (b *Builder[T]) NewAuxiliary() Expr[T] {
	e := Auxiliary[T](b.ops, b.numAux)
	b.numAux++
	b.cur.Variables++
	return e
}

// Enter pushes a named scope frame.
func (b *Builder[T]) Enter(name string) {
	s := &Scope{Name: name, parent: b.cur}
	b.cur.Children = append(b.cur.Children, s)
	b.cur = s
}

// Exit restores the parent scope.
func (b *Builder[T]) Exit() {
	if b.cur.parent != nil {
		b.cur = b.cur.parent
	}
}

// Root returns the scope tree root, for debugging/printing.
func (b *Builder[T]) Root() *Scope { return b.root }

// Eq asserts lc == ∏ rhs.Factors, recording the constraint's degree.
func (b *Builder[T]) Eq(lc Expr[T], rhs Product[T]) {
	b.constraints = append(b.constraints, Constraint[T]{L: lc.LC, R: rhs, Deg: rhs.Degree()})
	b.cur.Constraints++
}

// EqLinear asserts lhs == rhs for two pure linear expressions (degree 1,
// spec.md §4.11's "pure linear combination on the right").
func (b *Builder[T]) EqLinear(lhs, rhs Expr[T]) {
	b.Eq(lhs, AsProduct(rhs))
}

func (b *Builder[T]) maxDegree() int {
	d := 0
	for _, c := range b.constraints {
		if c.Deg > d {
			d = c.Deg
		}
	}
	return d
}

// columnOf maps a Variable to its flat column index under the layout
// [constant=0, inputs=1..|inputs|, auxiliaries=|inputs|+1..] (spec.md
// §4.11).
func (b *Builder[T]) columnOf(v Variable) int {
	switch v.Kind {
	case KindConstant:
		return 0
	case KindInput:
		return 1 + v.Number
	default:
		return 1 + b.numInputs + v.Number
	}
}

// NumColumns returns the total witness width (1 + inputs + auxiliaries).
func (b *Builder[T]) NumColumns() int { return 1 + b.numInputs + b.numAux }

func lcToRow[T any](b *Builder[T], lc LinearCombination[T]) ([]int, []T) {
	cols := make([]int, 0, len(lc.order))
	vals := make([]T, 0, len(lc.order))
	for _, v := range lc.order {
		cols = append(cols, b.columnOf(v))
		vals = append(vals, lc.terms[v])
	}
	return cols, vals
}

// R1CS lowers the builder into an R1CS, asserting every constraint has
// degree ≤ 2 (spec.md §4.11: "r1cs() asserts D ≤ 2").
func (b *Builder[T]) R1CS() (constraint.R1CS[T], bool) {
	if b.maxDegree() > 2 {
		return constraint.R1CS[T]{}, false
	}
	n := b.NumColumns()
	m := len(b.constraints)
	var aRow, bRow, cRow []int
	var aCol, bCol, cCol []int
	var aVal, bVal, cVal []T
	for i, c := range b.constraints {
		var left, right Expr[T]
		switch len(c.R.Factors) {
		case 1:
			left = c.R.Factors[0]
			right = Constant(b.ops, b.ops.One())
		default:
			left = c.R.Factors[0]
			right = c.R.Factors[1]
		}
		cols, vals := lcToRow(b, left.LC)
		for k := range cols {
			aRow = append(aRow, i)
			aCol = append(aCol, cols[k])
			aVal = append(aVal, vals[k])
		}
		cols, vals = lcToRow(b, right.LC)
		for k := range cols {
			bRow = append(bRow, i)
			bCol = append(bCol, cols[k])
			bVal = append(bVal, vals[k])
		}
		cols, vals = lcToRow(b, c.L)
		for k := range cols {
			cRow = append(cRow, i)
			cCol = append(cCol, cols[k])
			cVal = append(cVal, vals[k])
		}
	}
	a := matvec.NewSparse(m, n, aRow, aCol, aVal)
	bm := matvec.NewSparse(m, n, bRow, bCol, bVal)
	cm := matvec.NewSparse(m, n, cRow, cCol, cVal)
	return constraint.R1CS[T]{A: a, B: bm, C: cm, M: m, N: n}, true
}

// CCS lowers the builder into a CCS of the given degree D, emitting D+1
// matrices (D for the product factors, 1 for the equality's left side) with
// selector list s = [[0,...,D-1],[D]] and coefficients [1,-1] (spec.md
// §4.11). Constraints of lower degree are padded with constant-1 factors.
func (b *Builder[T]) CCS(d int) constraint.CCS[T] {
	n := b.NumColumns()
	m := len(b.constraints)
	rows := make([][]int, d+1)
	cols := make([][]int, d+1)
	vals := make([][]T, d+1)

	for i, c := range b.constraints {
		factors := make([]Expr[T], d)
		for k := 0; k < d; k++ {
			if k < len(c.R.Factors) {
				factors[k] = c.R.Factors[k]
			} else {
				factors[k] = Constant(b.ops, b.ops.One())
			}
		}
		for k := 0; k < d; k++ {
			cs, vs := lcToRow(b, factors[k].LC)
			for j := range cs {
				rows[k] = append(rows[k], i)
				cols[k] = append(cols[k], cs[j])
				vals[k] = append(vals[k], vs[j])
			}
		}
		cs, vs := lcToRow(b, c.L)
		for j := range cs {
			rows[d] = append(rows[d], i)
			cols[d] = append(cols[d], cs[j])
			vals[d] = append(vals[d], vs[j])
		}
	}

	matrices := make([]matvec.Sparse[T], d+1)
	for k := 0; k <= d; k++ {
		matrices[k] = matvec.NewSparse(m, n, rows[k], cols[k], vals[k])
	}
	sel := make([]int, d)
	for k := range sel {
		sel[k] = k
	}
	return constraint.CCS[T]{
		M: matrices,
		S: [][]int{sel, {d}},
		C: []T{b.ops.One(), b.ops.Neg(b.ops.One())},
	}
}
