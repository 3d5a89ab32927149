// Package dist implements the distribution contract of spec.md §6.3: a
// distribution exposes Min/Max and a generator-driven draw, with uniform
// integer, ternary-uniform, and discrete-Gaussian instances built on
// package rng's word generator.
package dist

import (
	"math"

	"latticefold/rng"
)

// Distribution draws values of type int64 from a generator, reporting the
// inclusive range it can produce.
type Distribution interface {
	Min() int64
	Max() int64
	Draw(g *rng.DRG) int64
}

// Uniform draws uniformly from [lo, hi] via rejection sampling against the
// smallest power-of-two span covering the range (spec.md §6.3's "uniform
// integer").
type Uniform struct {
	Lo, Hi int64
}

func (u Uniform) Min() int64 { return u.Lo }
func (u Uniform) Max() int64 { return u.Hi }

func (u Uniform) Draw(g *rng.DRG) int64 {
	span := uint64(u.Hi-u.Lo) + 1
	if span == 0 {
		return int64(g.Uint64())
	}
	var mask uint64 = 1
	for mask < span {
		mask = mask<<1 | 1
	}
	for {
		v := g.Uint64() & mask
		if v < span {
			return u.Lo + int64(v)
		}
	}
}

// TernaryUniform draws from {-1, 0, 1} via cached 2-bit extraction from the
// DRG's word stream, rejecting the 0b11 pattern (spec.md §6.3).
type TernaryUniform struct {
	cached uint32
	bits   int
}

func (TernaryUniform) Min() int64 { return -1 }
func (TernaryUniform) Max() int64 { return 1 }

func (t *TernaryUniform) Draw(g *rng.DRG) int64 {
	for {
		if t.bits == 0 {
			t.cached = g.Next()
			t.bits = 32
		}
		pair := t.cached & 0b11
		t.cached >>= 2
		t.bits -= 2
		switch pair {
		case 0b00:
			return -1
		case 0b01:
			return 0
		case 0b10:
			return 1
		default: // 0b11 rejected
			continue
		}
	}
}

// DiscreteGaussian is a rejection sampler over Z with standard deviation
// Sigma, truncated at a tail cut of σ·√log₂(n) (spec.md §6.3).
type DiscreteGaussian struct {
	Sigma float64
	N     int // used only to derive the tail cut
}

func (d DiscreteGaussian) tailCut() int64 {
	cut := d.Sigma * math.Sqrt(math.Log2(float64(d.N)))
	return int64(math.Ceil(cut))
}

func (d DiscreteGaussian) Min() int64 { return -d.tailCut() }
func (d DiscreteGaussian) Max() int64 { return d.tailCut() }

// Draw rejection-samples a candidate integer in [-cut, cut] weighted by the
// Gaussian density exp(-x²/2σ²), accepting when a uniform draw over [0,1)
// falls under the weight.
func (d DiscreteGaussian) Draw(g *rng.DRG) int64 {
	cut := d.tailCut()
	span := Uniform{Lo: -cut, Hi: cut}
	for {
		x := span.Draw(g)
		weight := math.Exp(-float64(x*x) / (2 * d.Sigma * d.Sigma))
		u := float64(g.Next()) / float64(^uint32(0))
		if u < weight {
			return x
		}
	}
}
