// Package hypercube implements the Boolean-hypercube enumerators of
// spec.md §4.5: composed indices, decomposed bit-vectors, and splitted
// (row,col) pairs, plus a pointwise-sum reduction used throughout sum-check.
package hypercube

// Hypercube describes the n-dimensional Boolean domain {0,1}^n with 2^n
// points, enumerated three ways.
type Hypercube struct {
	N int
}

// New returns a hypercube of n boolean dimensions.
func New(n int) Hypercube { return Hypercube{N: n} }

// Size returns 2^n.
func (h Hypercube) Size() int { return 1 << uint(h.N) }

// Composed returns the plain index sequence 0..2^n-1.
func (h Hypercube) Composed() []int {
	out := make([]int, h.Size())
	for i := range out {
		out[i] = i
	}
	return out
}

// Decomposed returns, for each index, its MSB-first bit vector: bit i of the
// vector for a given index is set iff (index & (N/2^(i+1))) != 0, matching
// spec.md §4.5.
func (h Hypercube) Decomposed() [][]bool {
	size := h.Size()
	out := make([][]bool, size)
	for index := 0; index < size; index++ {
		bits := make([]bool, h.N)
		for i := 0; i < h.N; i++ {
			mask := size >> uint(i+1)
			bits[i] = (index & mask) != 0
		}
		out[index] = bits
	}
	return out
}

// DecomposedAt returns the MSB-first bit vector for a single index, without
// allocating the full table.
func (h Hypercube) DecomposedAt(index int) []bool {
	size := h.Size()
	bits := make([]bool, h.N)
	for i := 0; i < h.N; i++ {
		mask := size >> uint(i+1)
		bits[i] = (index & mask) != 0
	}
	return bits
}

// Splitted returns, for a chosen (rows, cols) factorisation of 2^n, the
// (row, col) pair for every index: row = index/cols, col = index%cols.
func (h Hypercube) Splitted(rows, cols int) [][2]int {
	out := make([][2]int, rows*cols)
	for index := range out {
		out[index] = [2]int{index / cols, index % cols}
	}
	return out
}

// Sum reduces p pointwise over the hypercube using the supplied add/zero
// operations (spec.md §4.5: "Hypercube::sum(p) reduces p pointwise").
func Sum[T any](h Hypercube, p []T, add func(a, b T) T, zero T) T {
	acc := zero
	for _, v := range p {
		acc = add(acc, v)
	}
	return acc
}
