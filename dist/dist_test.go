package dist

import (
	"testing"

	"latticefold/rng"
)

func freshDRG(t *testing.T, salt byte) *rng.DRG {
	var seed [32]byte
	seed[0] = salt
	d, err := rng.New(seed)
	if err != nil {
		t.Fatalf("new rng: %v", err)
	}
	return d
}

func TestUniformStaysInRange(t *testing.T) {
	g := freshDRG(t, 1)
	u := Uniform{Lo: -5, Hi: 5}
	for i := 0; i < 500; i++ {
		v := u.Draw(g)
		if v < u.Min() || v > u.Max() {
			t.Fatalf("uniform draw %d out of range [%d,%d]", v, u.Min(), u.Max())
		}
	}
}

func TestTernaryUniformOnlyEmitsAllowedValues(t *testing.T) {
	g := freshDRG(t, 2)
	tu := &TernaryUniform{}
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		v := tu.Draw(g)
		if v != -1 && v != 0 && v != 1 {
			t.Fatalf("ternary draw produced out-of-range value %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three ternary values to appear over 500 draws, saw %v", seen)
	}
}

func TestDiscreteGaussianStaysWithinTailCut(t *testing.T) {
	g := freshDRG(t, 3)
	dg := DiscreteGaussian{Sigma: 2.0, N: 1024}
	for i := 0; i < 200; i++ {
		v := dg.Draw(g)
		if v < dg.Min() || v > dg.Max() {
			t.Fatalf("discrete gaussian draw %d out of tail-cut range [%d,%d]", v, dg.Min(), dg.Max())
		}
	}
}

func TestDiscreteGaussianConcentratesNearZero(t *testing.T) {
	g := freshDRG(t, 4)
	dg := DiscreteGaussian{Sigma: 1.0, N: 256}
	var sumAbs float64
	const trials = 300
	for i := 0; i < trials; i++ {
		v := dg.Draw(g)
		if v < 0 {
			sumAbs += float64(-v)
		} else {
			sumAbs += float64(v)
		}
	}
	mean := sumAbs / trials
	if mean > 3*dg.Sigma {
		t.Fatalf("expected draws to concentrate near zero for sigma=%v, got mean abs %v", dg.Sigma, mean)
	}
}
