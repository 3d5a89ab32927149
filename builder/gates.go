package builder

// And emits a*b and returns its auxiliary output, for boolean a,b (spec.md
// §4.11's "supplemented" boolean gates — not asserted boolean here; callers
// that need the boolean range check should also assert a*(1-a)==0).
func (b *Builder[T]) And(a, c Expr[T]) Expr[T] {
	out := b.NewAuxiliary()
	b.Eq(out, Mul(a, c))
	return out
}

// Or emits a*c into a fresh auxiliary (via And) and returns the linear
// expression a+c-a*c; the result itself is not bound to an auxiliary.
func (b *Builder[T]) Or(a, c Expr[T]) Expr[T] {
	prod := b.And(a, c)
	return Sub(b.ops, Add(b.ops, a, c), prod)
}

// Not returns 1-a (no new constraint needed: it's a pure linear expr).
func (b *Builder[T]) Not(a Expr[T]) Expr[T] {
	one := Constant(b.ops, b.ops.One())
	return Sub(b.ops, one, a)
}

// Xor emits a*c into a fresh auxiliary (via And) and returns the linear
// expression a+c-2*a*c; the result itself is not bound to an auxiliary.
func (b *Builder[T]) Xor(a, c Expr[T]) Expr[T] {
	prod := b.And(a, c)
	two := Constant(b.ops, b.ops.FromInt(2))
	return Sub(b.ops, Add(b.ops, a, c), ScalarMul(b.ops, prod, two.LC.terms[ConstantVar]))
}

// AssertBoolean asserts a*(1-a)==0, constraining a to {0,1}.
func (b *Builder[T]) AssertBoolean(a Expr[T]) {
	one := Constant(b.ops, b.ops.One())
	notA := Sub(b.ops, one, a)
	zero := Constant(b.ops, b.ops.Zero())
	b.Eq(zero, Mul(a, notA))
}
