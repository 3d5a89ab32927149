// Package ringproduct implements the heterogeneous ring product R1×R2×…
// of spec.md §4, used for CRT-style residue systems: a value is a tuple of
// elements, one per factor ring, and every ring operation is applied
// component-wise. Since package zq and package fp expose their arithmetic as
// free functions rather than a method-set interface (mirroring the
// teacher's own field/prf packages, which are plain functions over a value
// receiver, see prf/field.go), the product is parameterised by an explicit
// table of operation closures per factor instead of a Go interface
// constraint — the data-flow analogue of spec.md §9's "Fuse policy" applied
// to whole rings.
package ringproduct

// Ops bundles the ring operations for one factor type T.
type Ops[T any] struct {
	Add   func(a, b T) T
	Sub   func(a, b T) T
	Mul   func(a, b T) T
	Neg   func(a T) T
	Zero  func() T
	One   func() T
	Equal func(a, b T) bool
}

// Product2 is an element of R1×R2.
type Product2[A, B any] struct {
	A A
	B B
}

// Ring2 bundles the two factor rings' operations so callers don't have to
// re-thread them through every call.
type Ring2[A, B any] struct {
	OpsA Ops[A]
	OpsB Ops[B]
}

func (r Ring2[A, B]) Zero() Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.Zero(), B: r.OpsB.Zero()}
}

func (r Ring2[A, B]) One() Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.One(), B: r.OpsB.One()}
}

func (r Ring2[A, B]) Add(x, y Product2[A, B]) Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.Add(x.A, y.A), B: r.OpsB.Add(x.B, y.B)}
}

func (r Ring2[A, B]) Sub(x, y Product2[A, B]) Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.Sub(x.A, y.A), B: r.OpsB.Sub(x.B, y.B)}
}

func (r Ring2[A, B]) Mul(x, y Product2[A, B]) Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.Mul(x.A, y.A), B: r.OpsB.Mul(x.B, y.B)}
}

func (r Ring2[A, B]) Neg(x Product2[A, B]) Product2[A, B] {
	return Product2[A, B]{A: r.OpsA.Neg(x.A), B: r.OpsB.Neg(x.B)}
}

func (r Ring2[A, B]) Equal(x, y Product2[A, B]) bool {
	return r.OpsA.Equal(x.A, y.A) && r.OpsB.Equal(x.B, y.B)
}

// Product3 and Ring3 extend the pattern to three factors, the common case
// for a two-RNS-limb ring plus an extension-field component (used by the
// LatticeFold extension homomorphism, spec.md §4.6).
type Product3[A, B, C any] struct {
	A A
	B B
	C C
}

type Ring3[A, B, C any] struct {
	OpsA Ops[A]
	OpsB Ops[B]
	OpsC Ops[C]
}

func (r Ring3[A, B, C]) Add(x, y Product3[A, B, C]) Product3[A, B, C] {
	return Product3[A, B, C]{A: r.OpsA.Add(x.A, y.A), B: r.OpsB.Add(x.B, y.B), C: r.OpsC.Add(x.C, y.C)}
}

func (r Ring3[A, B, C]) Sub(x, y Product3[A, B, C]) Product3[A, B, C] {
	return Product3[A, B, C]{A: r.OpsA.Sub(x.A, y.A), B: r.OpsB.Sub(x.B, y.B), C: r.OpsC.Sub(x.C, y.C)}
}

func (r Ring3[A, B, C]) Mul(x, y Product3[A, B, C]) Product3[A, B, C] {
	return Product3[A, B, C]{A: r.OpsA.Mul(x.A, y.A), B: r.OpsB.Mul(x.B, y.B), C: r.OpsC.Mul(x.C, y.C)}
}
