package ntt

import (
	"math/rand"
	"testing"

	"latticefold/zq"
)

// randomVec fills a length-n slice with pseudo-random field elements.
func randomVec[P zq.Params](rng *rand.Rand, n int) []zq.Elem[P] {
	out := make([]zq.Elem[P], n)
	for i := range out {
		out[i] = zq.FromSigned[P](int64(rng.Intn(1 << 20)))
	}
	return out
}

// schoolbookCyclic is the f = x^n-1 reference convolution, independent of
// the NTT path, used to check Convolve against both the inertia=1 and
// inertia>1 branches.
func schoolbookCyclic[P zq.Params](a, b []zq.Elem[P]) []zq.Elem[P] {
	n := len(a)
	out := make([]zq.Elem[P], n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := (i + j) % n
			out[k] = zq.Add[P](out[k], zq.Mul[P](a[i], b[j]))
		}
	}
	return out
}

func TestInertiaOne(t *testing.T) {
	// Fermat's two-adicity (16) comfortably covers n=8 (log2=3), so the
	// root of unity splits the full polynomial and inertia collapses to 1.
	if got := Inertia[zq.Fermat](8); got != 1 {
		t.Fatalf("expected inertia 1 for Fermat/n=8, got %d", got)
	}
}

func TestInertiaAboveOne(t *testing.T) {
	// Pervushin's root of unity has order only 2 (two-adicity 1), so for
	// n=8 the butterfly network can only split down to blocks of
	// inertia=8/2=4 — spec.md §4.3's literal "partition into 2·inertia
	// blocks" example (one 8-element block, two 4-element halves).
	if got := Inertia[zq.Pervushin](8); got != 4 {
		t.Fatalf("expected inertia 4 for Pervushin/n=8, got %d", got)
	}
}

func TestCooleyTukeyRoundTripInertiaOne(t *testing.T) {
	n := 8
	rng := rand.New(rand.NewSource(10))
	a := randomVec[zq.Fermat](rng, n)
	orig := append([]zq.Elem[zq.Fermat]{}, a...)

	CooleyTukey[zq.Fermat](a)
	GentlemanSande[zq.Fermat](a)

	for i := range a {
		if !zq.Equal[zq.Fermat](a[i], orig[i]) {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, a[i].Canonical(), orig[i].Canonical())
		}
	}
}

// TestCooleyTukeyRoundTripInertiaAboveOne exercises the residual-block path
// (inertia=4, m=2) that CooleyTukey/GentlemanSande fall back to when the
// modulus's root of unity is too small to split the whole polynomial.
func TestCooleyTukeyRoundTripInertiaAboveOne(t *testing.T) {
	n := 8
	rng := rand.New(rand.NewSource(11))
	a := randomVec[zq.Pervushin](rng, n)
	orig := append([]zq.Elem[zq.Pervushin]{}, a...)

	CooleyTukey[zq.Pervushin](a)
	GentlemanSande[zq.Pervushin](a)

	for i := range a {
		if !zq.Equal[zq.Pervushin](a[i], orig[i]) {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, a[i].Canonical(), orig[i].Canonical())
		}
	}
}

func TestConvolveMatchesSchoolbookInertiaOne(t *testing.T) {
	n := 8
	rng := rand.New(rand.NewSource(20))
	a := randomVec[zq.Fermat](rng, n)
	b := randomVec[zq.Fermat](rng, n)
	ref := schoolbookCyclic[zq.Fermat](a, b)

	av := append([]zq.Elem[zq.Fermat]{}, a...)
	bv := append([]zq.Elem[zq.Fermat]{}, b...)
	CooleyTukey[zq.Fermat](av)
	CooleyTukey[zq.Fermat](bv)
	cv := Convolve[zq.Fermat](av, bv)
	GentlemanSande[zq.Fermat](cv)

	for i := range cv {
		if !zq.Equal[zq.Fermat](cv[i], ref[i]) {
			t.Fatalf("coefficient %d mismatch: got %v want %v", i, cv[i].Canonical(), ref[i].Canonical())
		}
	}
}

// TestConvolveMatchesSchoolbookInertiaAboveOne checks the binomial-block
// convolution (spec.md §4.3's "two binomial convolutions of length 4 on
// each 8-element block") against the same f=x^8-1 schoolbook reference,
// using Pervushin where the root of unity only splits the ring into the
// two x^4∓1 factors.
func TestConvolveMatchesSchoolbookInertiaAboveOne(t *testing.T) {
	n := 8
	rng := rand.New(rand.NewSource(21))
	a := randomVec[zq.Pervushin](rng, n)
	b := randomVec[zq.Pervushin](rng, n)
	ref := schoolbookCyclic[zq.Pervushin](a, b)

	av := append([]zq.Elem[zq.Pervushin]{}, a...)
	bv := append([]zq.Elem[zq.Pervushin]{}, b...)
	CooleyTukey[zq.Pervushin](av)
	CooleyTukey[zq.Pervushin](bv)
	cv := Convolve[zq.Pervushin](av, bv)
	GentlemanSande[zq.Pervushin](cv)

	for i := range cv {
		if !zq.Equal[zq.Pervushin](cv[i], ref[i]) {
			t.Fatalf("coefficient %d mismatch: got %v want %v", i, cv[i].Canonical(), ref[i].Canonical())
		}
	}
}
