// Package ntt implements the Number-Theoretic Transform of spec.md §4.3: a
// Cooley–Tukey forward transform and a Gentleman–Sande inverse over a ring
// carrying a 2^n-th root of unity, plus the "inertia" bookkeeping used when
// the available root does not split the full polynomial.
//
// The teacher never hand-rolls this butterfly network — it drives
// lattigo's *ring.Ring NTT/InvNTT instead (ntru/ntt.go), but always against
// a single concrete modulus fixed at construction time. This package is
// generic over zq.Params (a closed set of five distinct moduli, two of
// which lattigo cannot construct at all), so it implements the butterfly
// network from scratch instead — see DESIGN.md.
package ntt

import "latticefold/zq"

// Inertia returns spec.md §4.3's "inertia = N / ordTwiddles": the size of
// the residual block the butterfly network cannot split further because
// the modulus's root of unity has order 2^TwoAdicity() < n. When the root's
// order already covers n (the common case for every parameter set except
// Pervushin at realistic transform lengths), inertia is 1 and the
// transform splits all the way down to single coefficients.
func Inertia[P zq.Params](n int) int {
	p := zqParams[P]()
	logN := bitLen(n) - 1
	if p.TwoAdicity() >= logN {
		return 1
	}
	return n >> uint(p.TwoAdicity())
}

// rootTable returns the first m powers of a primitive m-th root of unity,
// derived from the canonical 2^TwoAdicity()-th root via the appropriate
// power-of-two shift (m always divides 2^TwoAdicity() since both are
// powers of two).
func rootTable[P zq.Params](m int) []zq.Elem[P] {
	p := zqParams[P]()
	logM := bitLen(m) - 1
	shift := 1 << uint(p.TwoAdicity()-logM)
	out := make([]zq.Elem[P], m)
	for i := 0; i < m; i++ {
		out[i] = zq.Twiddle[P](i * shift)
	}
	return out
}

// CooleyTukey applies the forward NTT in place to a, whose length must be a
// power of two. Bit-reversal is NOT applied; the output is in bit-reversed
// order, matching the decimation-in-frequency butterfly network (spec.md §4.3:
// "walks k = N/2, N/4, …, inertia"). When inertia > 1 (the root of unity
// cannot split the full polynomial), the descent stops at blocks of
// `inertia` elements instead of single coefficients — those residual
// blocks are left for a post-transform binomial convolution (see Convolve).
func CooleyTukey[P zq.Params](a []zq.Elem[P]) {
	n := len(a)
	inertia := Inertia[P](n)
	m := n / inertia
	nthRoot := rootTable[P](m)
	for lenHalfBlocks := m / 2; lenHalfBlocks >= 1; lenHalfBlocks /= 2 {
		blockStep := m / (2 * lenHalfBlocks)
		for blockStart := 0; blockStart < m; blockStart += 2 * lenHalfBlocks {
			for bi := 0; bi < lenHalfBlocks; bi++ {
				w := nthRoot[bi*blockStep]
				base := blockStart * inertia
				for k := 0; k < inertia; k++ {
					idx1 := base + bi*inertia + k
					idx2 := idx1 + lenHalfBlocks*inertia
					u := a[idx1]
					v := a[idx2]
					a[idx1] = zq.Add[P](u, v)
					a[idx2] = zq.Mul[P](zq.Sub[P](u, v), w)
				}
			}
		}
	}
}

// GentlemanSande applies the inverse NTT in place to a (bit-reversed input,
// natural-order output), then scales every coefficient by m^-1 where m is
// the number of blocks actually transformed (n when inertia = 1).
func GentlemanSande[P zq.Params](a []zq.Elem[P]) {
	n := len(a)
	inertia := Inertia[P](n)
	m := n / inertia
	nthRoot := rootTable[P](m)
	nthRootInv := make([]zq.Elem[P], m)
	nthRootInv[0] = zq.One[P]()
	for i := 1; i < m; i++ {
		nthRootInv[i] = nthRoot[m-i]
	}
	for lenHalfBlocks := 1; lenHalfBlocks < m; lenHalfBlocks *= 2 {
		blockStep := m / (2 * lenHalfBlocks)
		for blockStart := 0; blockStart < m; blockStart += 2 * lenHalfBlocks {
			for bi := 0; bi < lenHalfBlocks; bi++ {
				w := nthRootInv[bi*blockStep]
				base := blockStart * inertia
				for k := 0; k < inertia; k++ {
					idx1 := base + bi*inertia + k
					idx2 := idx1 + lenHalfBlocks*inertia
					u := a[idx1]
					v := zq.Mul[P](a[idx2], w)
					a[idx1] = zq.Add[P](u, v)
					a[idx2] = zq.Sub[P](u, v)
				}
			}
		}
	}
	mInv, ok := zq.Invert[P](zq.From[P](uint64(m)))
	if !ok {
		panic("ntt: m not invertible mod Q")
	}
	for i := range a {
		a[i] = zq.Mul[P](a[i], mInv)
	}
}

// Convolve multiplies two transformed sequences: componentwise when
// inertia = 1, or — when the root couldn't split the full polynomial — two
// length-`inertia` binomial convolutions per 2·inertia block, with twiddles
// +ζ and −ζ drawn from twiddle(N/(2·inertia) + i), per spec.md §4.3.
func Convolve[P zq.Params](av, bv []zq.Elem[P]) []zq.Elem[P] {
	n := len(av)
	inertia := Inertia[P](n)
	out := make([]zq.Elem[P], n)
	if inertia == 1 {
		for i := range out {
			out[i] = zq.Mul[P](av[i], bv[i])
		}
		return out
	}
	m := n / inertia
	for j := 0; j < m/2; j++ {
		// CooleyTukey's top-level butterfly combines block j with block
		// j+m/2 as (lo,hi) = (block_j + block_{j+m/2}, (block_j -
		// block_{j+m/2})*w) using w = twiddle(j); the resulting lo block
		// therefore represents the polynomial reduced mod x^inertia - 1
		// and hi mod x^inertia + 1 when w = 1 (the j=0 case spec.md's
		// literal example uses), i.e. the low half's binomial modulus is
		// +1 and the high half's is -1 relative to twiddle(m/2+j) = -w.
		t := zq.Twiddle[P](m/2 + j)
		zetaLo := zq.Sub[P](zq.Zero[P](), t)
		zetaHi := t
		lo := j * 2 * inertia
		hi := lo + inertia
		copy(out[lo:hi], binomialBlock[P](av[lo:hi], bv[lo:hi], zetaLo))
		copy(out[hi:hi+inertia], binomialBlock[P](av[hi:hi+inertia], bv[hi:hi+inertia], zetaHi))
	}
	return out
}

// binomialBlock multiplies a and b modulo x^len(a) - zeta via schoolbook
// convolution with the upper half scaled by zeta.
func binomialBlock[P zq.Params](a, b []zq.Elem[P], zeta zq.Elem[P]) []zq.Elem[P] {
	n := len(a)
	out := make([]zq.Elem[P], n)
	for i := 0; i < n; i++ {
		if a[i].IsZero() {
			continue
		}
		for j := 0; j < n; j++ {
			term := zq.Mul[P](a[i], b[j])
			k := i + j
			if k < n {
				out[k] = zq.Add[P](out[k], term)
			} else {
				out[k-n] = zq.Add[P](out[k-n], zq.Mul[P](term, zeta))
			}
		}
	}
	return out
}

func zqParams[P zq.Params]() P {
	var p P
	return p
}

func bitLen(n int) int {
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b + 1
}
