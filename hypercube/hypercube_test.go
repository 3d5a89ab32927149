package hypercube

import "testing"

func TestComposedRange(t *testing.T) {
	h := New(3)
	c := h.Composed()
	if len(c) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(c))
	}
	for i, v := range c {
		if v != i {
			t.Fatalf("composed[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestDecomposedMatchesBits(t *testing.T) {
	h := New(3)
	d := h.Decomposed()
	// index 5 = 0b101 -> MSB-first bits [true, false, true]
	want := []bool{true, false, true}
	for i, b := range want {
		if d[5][i] != b {
			t.Fatalf("decomposed[5][%d] = %v, want %v", i, d[5][i], b)
		}
	}
	single := h.DecomposedAt(5)
	for i, b := range want {
		if single[i] != b {
			t.Fatalf("decomposedAt[5][%d] = %v, want %v", i, single[i], b)
		}
	}
}

func TestSplitted(t *testing.T) {
	h := New(2)
	s := h.Splitted(2, 2)
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("splitted[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestSum(t *testing.T) {
	h := New(2)
	p := []int{1, 2, 3, 4}
	got := Sum(h, p, func(a, b int) int { return a + b }, 0)
	if got != 10 {
		t.Fatalf("expected sum 10, got %d", got)
	}
}
