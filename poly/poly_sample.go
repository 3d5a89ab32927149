package poly

import (
	"math/rand"

	"latticefold/zq"
)

// Random fills a fresh coefficient-form polynomial with uniform samples
// drawn from rng (spec.md §4.2 "random(rng)").
func Random[P zq.Params](rng *rand.Rand, n int, conv Convolution) Coeff[P] {
	out := NewCoeff[P](n, conv)
	var p P
	q := p.Q()
	for i := range out.Coeffs {
		out.Coeffs[i] = zq.From[P](uint64(rng.Int63n(int64(q))))
	}
	return out
}

// Dist is a caller-supplied coefficient distribution (spec.md §6.3): ternary
// uniform, discrete Gaussian, etc. Sample must return a canonical coefficient
// value.
type Dist[P zq.Params] interface {
	Sample(rng *rand.Rand) zq.Elem[P]
}

// RandomDist fills a polynomial using a caller-supplied distribution.
func RandomDist[P zq.Params](rng *rand.Rand, n int, conv Convolution, dist Dist[P]) Coeff[P] {
	out := NewCoeff[P](n, conv)
	for i := range out.Coeffs {
		out.Coeffs[i] = dist.Sample(rng)
	}
	return out
}

// RandomHamming rejection-samples into random positions until exactly
// hamming non-zero entries are present, then returns the coefficient-form
// polynomial tagged with the NTT convolution strategy (spec.md §4.2:
// "switches to NTT form" once sparse sampling completes).
func RandomHamming[P zq.Params](rng *rand.Rand, n, hamming int, dist Dist[P]) Coeff[P] {
	out := NewCoeff[P](n, NTT)
	placed := 0
	seen := make(map[int]bool, hamming)
	for placed < hamming {
		pos := rng.Intn(n)
		if seen[pos] {
			continue
		}
		v := dist.Sample(rng)
		if v.IsZero() {
			continue
		}
		out.Coeffs[pos] = v
		seen[pos] = true
		placed++
	}
	return out
}
