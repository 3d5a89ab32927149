// Package constraint implements R1CS and CCS of spec.md §4.9/§4.10: sparse
// matrices over a witness vector with satisfaction checks, Nova-style
// relaxed-R1CS folding, and a CCS sum-check-ready multivariate polynomial.
// It is generic over T via an explicit Ops table, grounded on the same
// matvec.Sparse CSR representation used throughout this module.
package constraint

import (
	"latticefold/matvec"
	"latticefold/mle"
)

// Ops bundles the ring operations constraint needs over T.
type Ops[T any] struct {
	Add     func(a, b T) T
	Sub     func(a, b T) T
	Mul     func(a, b T) T
	Zero    func() T
	One     func() T
	FromInt func(int) T
	Equal   func(a, b T) bool
}

func mvOps[T any](ops Ops[T]) matvec.Ops[T] {
	return matvec.Ops[T]{Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul, Zero: ops.Zero}
}

// R1CS owns the (A,B,C) sparse matrices of spec.md §3: each has the same
// (m,n) shape, and a witness z has length n with z[0]=1 (the relaxation
// "u" slot).
type R1CS[T any] struct {
	A, B, C matvec.Sparse[T]
	M, N    int
}

// IsSatisfied checks Az ∘ Bz = Cz (spec.md §4.9).
func IsSatisfied[T any](ops Ops[T], r R1CS[T], z []T) bool {
	mops := mvOps(ops)
	az := matvec.SparseMatVec(mops, r.A, z)
	bz := matvec.SparseMatVec(mops, r.B, z)
	cz := matvec.SparseMatVec(mops, r.C, z)
	for i := range az {
		if !ops.Equal(ops.Mul(az[i], bz[i]), cz[i]) {
			return false
		}
	}
	return true
}

// Relaxed is a relaxed-R1CS instance (z, e, u) with u = z[0] (spec.md §4.9).
type Relaxed[T any] struct {
	Z []T
	E []T
}

// U returns z[0], the relaxation scalar.
func (r Relaxed[T]) U() T { return r.Z[0] }

// FoldError computes t = A(z1+z2)∘B(z1+z2) - (u1+u2)·C(z1+z2) - e1 - e2, the
// cross term Fold needs (spec.md §4.9).
func FoldError[T any](ops Ops[T], r R1CS[T], a, b Relaxed[T]) []T {
	mops := mvOps(ops)
	sumZ := make([]T, len(a.Z))
	for i := range sumZ {
		sumZ[i] = ops.Add(a.Z[i], b.Z[i])
	}
	az := matvec.SparseMatVec(mops, r.A, sumZ)
	bz := matvec.SparseMatVec(mops, r.B, sumZ)
	cz := matvec.SparseMatVec(mops, r.C, sumZ)
	sumU := ops.Add(a.U(), b.U())
	t := make([]T, len(az))
	for i := range t {
		t[i] = ops.Sub(ops.Sub(ops.Mul(az[i], bz[i]), ops.Mul(sumU, cz[i])), ops.Add(a.E[i], b.E[i]))
	}
	return t
}

// Fold combines two relaxed instances with challenge r: z := z1+r·z2, e :=
// e1+r·t+r²·e2 (spec.md §4.9).
func Fold[T any](ops Ops[T], r R1CS[T], a, b Relaxed[T], challenge T) Relaxed[T] {
	t := FoldError(ops, r, a, b)
	r2 := ops.Mul(challenge, challenge)
	z := make([]T, len(a.Z))
	for i := range z {
		z[i] = ops.Add(a.Z[i], ops.Mul(challenge, b.Z[i]))
	}
	e := make([]T, len(a.E))
	for i := range e {
		e[i] = ops.Add(ops.Add(a.E[i], ops.Mul(challenge, t[i])), ops.Mul(r2, b.E[i]))
	}
	return Relaxed[T]{Z: z, E: e}
}

// Randomize samples a random satisfying relaxed instance (z2, e2) by
// drawing z2 uniformly and computing e2 = A·z2 ∘ B·z2 − u2·C·z2 directly
// (spec.md §4.9: "randomize samples (z2,e2)...").
func Randomize[T any](ops Ops[T], r R1CS[T], sampleZ func() []T) Relaxed[T] {
	mops := mvOps(ops)
	z2 := sampleZ()
	az := matvec.SparseMatVec(mops, r.A, z2)
	bz := matvec.SparseMatVec(mops, r.B, z2)
	cz := matvec.SparseMatVec(mops, r.C, z2)
	u2 := z2[0]
	e2 := make([]T, len(az))
	for i := range e2 {
		e2[i] = ops.Sub(ops.Mul(az[i], bz[i]), ops.Mul(u2, cz[i]))
	}
	return Relaxed[T]{Z: z2, E: e2}
}

// MLEOfMz returns the multilinear extension of M·z, used by CCS's
// sum-check-ready polynomial and by R1CS-as-CCS embeddings.
func MLEOfMz[T any](ops Ops[T], m matvec.Sparse[T], z []T) mle.MLE[T] {
	mops := mvOps(ops)
	return mle.NewMLE(matvec.SparseMatVec(mops, m, z))
}
