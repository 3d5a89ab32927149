package bigint

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	a := FromUint64(4, 12345)
	b := FromUint64(4, 6789)
	sum := Add(a, b)
	back := Sub(sum, b)
	if back.Limb(0) != a.Limb(0) {
		t.Fatalf("add/sub round trip failed: got %d want %d", back.Limb(0), a.Limb(0))
	}
}

func TestMulWidens(t *testing.T) {
	a := FromUint64(2, 1<<63)
	b := FromUint64(2, 2)
	p := Mul(a, b)
	if p.N() != 4 {
		t.Fatalf("expected 2N=4 limbs, got %d", p.N())
	}
	if p.Limb(0) != 0 || p.Limb(1) != 1 {
		t.Fatalf("unexpected product limbs: %v %v", p.Limb(0), p.Limb(1))
	}
}

func TestDoubleEqualsAddSelf(t *testing.T) {
	a := FromUint64(4, 999)
	if Double(a).Limb(0) != Add(a, a).Limb(0) {
		t.Fatalf("double != add self")
	}
}

func TestHalve(t *testing.T) {
	a := FromUint64(2, 10)
	h := Halve(a)
	if h.Limb(0) != 5 {
		t.Fatalf("halve(10) = %d, want 5", h.Limb(0))
	}
}

func TestBitIterator(t *testing.T) {
	a := FromUint64(1, 0b1011)
	it := a.Bits()
	var bitsSeen []uint
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		bitsSeen = append(bitsSeen, b)
	}
	want := []uint{1, 0, 1, 1}
	if len(bitsSeen) != len(want) {
		t.Fatalf("got %v want %v", bitsSeen, want)
	}
	for i := range want {
		if bitsSeen[i] != want[i] {
			t.Fatalf("bit %d: got %d want %d", i, bitsSeen[i], want[i])
		}
	}
}
