// Package matvec implements the dense/sparse matrices and vectors of
// spec.md §4.4 over any ring whose elements are the type parameter T, using
// the same explicit-Ops-table discipline as package ringproduct (since
// package zq and package poly expose arithmetic as free functions, not a
// method set).
package matvec

import "math/rand"

// Ops bundles the ring operations a matvec needs over T.
type Ops[T any] struct {
	Add  func(a, b T) T
	Sub  func(a, b T) T
	Mul  func(a, b T) T
	Zero func() T
}

// Dense is a row-major dense matrix.
type Dense[T any] struct {
	Rows, Cols int
	Data       []T // row-major, len == Rows*Cols
}

// NewDense allocates a zero-filled dense matrix.
func NewDense[T any](rows, cols int, ops Ops[T]) Dense[T] {
	data := make([]T, rows*cols)
	z := ops.Zero()
	for i := range data {
		data[i] = z
	}
	return Dense[T]{Rows: rows, Cols: cols, Data: data}
}

func (m Dense[T]) At(r, c int) T { return m.Data[r*m.Cols+c] }

func (m *Dense[T]) Set(r, c int, v T) { m.Data[r*m.Cols+c] = v }

// MatVec computes M·v (spec.md §4.4: "Dense mat-vec is the textbook O(mn)
// loop").
func MatVec[T any](ops Ops[T], m Dense[T], v []T) []T {
	out := make([]T, m.Rows)
	for r := 0; r < m.Rows; r++ {
		acc := ops.Zero()
		for c := 0; c < m.Cols; c++ {
			acc = ops.Add(acc, ops.Mul(m.At(r, c), v[c]))
		}
		out[r] = acc
	}
	return out
}

// MatMat computes A·B.
func MatMat[T any](ops Ops[T], a, b Dense[T]) Dense[T] {
	out := NewDense[T](a.Rows, b.Cols, ops)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			acc := ops.Zero()
			for k := 0; k < a.Cols; k++ {
				acc = ops.Add(acc, ops.Mul(a.At(i, k), b.At(k, j)))
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// Outer computes the tensor product u⊗v as an |u|x|v| matrix.
func Outer[T any](ops Ops[T], u, v []T) Dense[T] {
	out := NewDense[T](len(u), len(v), ops)
	for i, ui := range u {
		for j, vj := range v {
			out.Set(i, j, ops.Mul(ui, vj))
		}
	}
	return out
}

// Hconcat horizontally concatenates a and b (same row count).
func Hconcat[T any](ops Ops[T], a, b Dense[T]) Dense[T] {
	out := NewDense[T](a.Rows, a.Cols+b.Cols, ops)
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			out.Set(r, c, a.At(r, c))
		}
		for c := 0; c < b.Cols; c++ {
			out.Set(r, a.Cols+c, b.At(r, c))
		}
	}
	return out
}

// Transpose returns the transpose of m.
func Transpose[T any](ops Ops[T], m Dense[T]) Dense[T] {
	out := NewDense[T](m.Cols, m.Rows, ops)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

// Trace returns the sum of the diagonal (m must be square).
func Trace[T any](ops Ops[T], m Dense[T]) T {
	acc := ops.Zero()
	n := m.Rows
	if m.Cols < n {
		n = m.Cols
	}
	for i := 0; i < n; i++ {
		acc = ops.Add(acc, m.At(i, i))
	}
	return acc
}

// RandomDense fills a dense matrix using a per-cell sampler.
func RandomDense[T any](rng *rand.Rand, rows, cols int, ops Ops[T], sample func(*rand.Rand) T) Dense[T] {
	out := NewDense[T](rows, cols, ops)
	for i := range out.Data {
		out.Data[i] = sample(rng)
	}
	return out
}

// Sponge is the minimal contract matvec needs to squeeze random elements
// (spec.md §6.1); concrete sponges live in package sponge.
type Sponge[T any] interface {
	Squeeze() T
}

// SqueezeDense fills a dense matrix by squeezing a duplex sponge, used by
// the Ajtai setup (spec.md §4.13: "A = MatrixDense::squeeze(sponge, rows,
// cols)").
func SqueezeDense[T any](sp Sponge[T], rows, cols int, ops Ops[T]) Dense[T] {
	out := NewDense[T](rows, cols, ops)
	for i := range out.Data {
		out.Data[i] = sp.Squeeze()
	}
	return out
}
