// Package transcript implements the Fiat–Shamir transcript of spec.md
// §4.14: FS<CS, Duplex>::fold absorbs both relaxed instances' witnesses into
// a fresh duplex sponge, squeezes a challenge, and invokes the constraint
// system's fold.
package transcript

import (
	"latticefold/constraint"
	"latticefold/sponge"
)

// FS binds a duplex-sponge family to the R1CS constraint system it folds
// over (spec.md §4.14's "FS<CS, Duplex>").
type FS[T any] struct {
	ops     constraint.Ops[T]
	r1cs    constraint.R1CS[T]
	newDuplex func() sponge.Sponge[T]
}

// New builds an FS transcript for the given R1CS, with newDuplex producing
// a fresh, independently-seeded duplex sponge per fold call.
func New[T any](ops constraint.Ops[T], r1cs constraint.R1CS[T], newDuplex func() sponge.Sponge[T]) FS[T] {
	return FS[T]{ops: ops, r1cs: r1cs, newDuplex: newDuplex}
}

// Fold absorbs z1‖e1‖z2‖e2 into a fresh duplex, squeezes r, and folds a and
// b with it (spec.md §4.14).
func (fs FS[T]) Fold(a, b constraint.Relaxed[T]) constraint.Relaxed[T] {
	d := fs.newDuplex()
	absorbAll(d, a.Z)
	absorbAll(d, a.E)
	absorbAll(d, b.Z)
	absorbAll(d, b.E)
	r := d.Squeeze()
	return constraint.Fold(fs.ops, fs.r1cs, a, b, r)
}

// Randomize samples a random satisfying (z2,e2) via the constraint system,
// then folds it in with a transcript-derived challenge (spec.md §4.14).
func (fs FS[T]) Randomize(a constraint.Relaxed[T], sampleZ func() []T) constraint.Relaxed[T] {
	b := constraint.Randomize(fs.ops, fs.r1cs, sampleZ)
	return fs.Fold(a, b)
}

func absorbAll[T any](d sponge.Sponge[T], vals []T) {
	for _, v := range vals {
		d.Absorb(v)
	}
}
