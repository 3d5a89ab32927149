// Package ajtai implements the Ajtai linear commitment of spec.md §4.13:
// commit(m) = A·m for a random dense matrix A, with opening verifying both
// the commitment equality and an infinity/Euclidean norm bound on m.
package ajtai

import "latticefold/matvec"

// NormKind selects the compile-time norm choice of spec.md §4.13's
// `NormP ∈ {∞, 2}`.
type NormKind int

const (
	NormInfinity NormKind = iota
	NormEuclidean
)

// Ops bundles the ring operations ajtai needs over T, plus a norm-bound
// check specialized to T's representation (signed-representative
// comparison for ∞-norm, squared-sum comparison for the Euclidean norm).
type Ops[T any] struct {
	Add      func(a, b T) T
	Sub      func(a, b T) T
	Mul      func(a, b T) T
	Zero     func() T
	Equal    func(a, b T) bool
	AbsLeq   func(v T, bound int64) bool // |v| ≤ bound, under the chosen norm's metric
	SqAdd    func(acc T, v T) T          // acc + v² (for the Euclidean norm)
	SqLeq    func(acc T, boundSq int64) bool
}

// Scheme is a committed Ajtai instance: the public matrix A, its norm
// policy, and the declared bound β.
type Scheme[T any] struct {
	ops  Ops[T]
	A    matvec.Dense[T]
	Norm NormKind
	Beta int64
}

// Setup samples A = MatrixDense::squeeze(sponge, rows, cols) (spec.md
// §4.13), fixing the commitment's public parameters.
func Setup[T any](ops Ops[T], sponge matvec.Sponge[T], rows, cols int, norm NormKind, beta int64) Scheme[T] {
	mvOps := matvec.Ops[T]{Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul, Zero: ops.Zero}
	a := matvec.SqueezeDense(sponge, rows, cols, mvOps)
	return Scheme[T]{ops: ops, A: a, Norm: norm, Beta: beta}
}

// Commit returns A·m.
func (s Scheme[T]) Commit(m []T) []T {
	mvOps := matvec.Ops[T]{Add: s.ops.Add, Sub: s.ops.Sub, Mul: s.ops.Mul, Zero: s.ops.Zero}
	return matvec.MatVec(mvOps, s.A, m)
}

// CheckNorm dispatches on the compile-time norm choice: ∞-norm checks each
// coordinate's signed representative against β, the Euclidean norm checks
// the sum of squares against β².
func (s Scheme[T]) CheckNorm(m []T) bool {
	switch s.Norm {
	case NormInfinity:
		for _, v := range m {
			if !s.ops.AbsLeq(v, s.Beta) {
				return false
			}
		}
		return true
	default:
		acc := s.ops.Zero()
		for _, v := range m {
			acc = s.ops.SqAdd(acc, v)
		}
		return s.ops.SqLeq(acc, s.Beta*s.Beta)
	}
}

// Open verifies commit(m) == c and checkNorm(m, β) (spec.md §4.13).
func (s Scheme[T]) Open(c, m []T) bool {
	if len(m) != s.A.Cols || len(c) != s.A.Rows {
		return false
	}
	got := s.Commit(m)
	for i := range got {
		if !s.ops.Equal(got[i], c[i]) {
			return false
		}
	}
	return s.CheckNorm(m)
}

// Add exploits the scheme's additive homomorphism: commit(m1)+commit(m2) ==
// commit(m1+m2) (spec.md §4.13's "additively homomorphic by linearity of
// matrix multiplication").
func Add[T any](ops Ops[T], c1, c2 []T) []T {
	out := make([]T, len(c1))
	for i := range out {
		out[i] = ops.Add(c1[i], c2[i])
	}
	return out
}

// AddWitness adds two witness vectors component-wise, for pairing with Add
// on the commitment side.
func AddWitness[T any](ops Ops[T], m1, m2 []T) []T {
	out := make([]T, len(m1))
	for i := range out {
		out[i] = ops.Add(m1[i], m2[i])
	}
	return out
}
