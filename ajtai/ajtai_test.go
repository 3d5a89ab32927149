package ajtai

import (
	"testing"

	"latticefold/sponge"
	"latticefold/zq"
)

type ring62 = zq.Solinas62

func testOps() Ops[zq.Elem[ring62]] {
	return Ops[zq.Elem[ring62]]{
		Add:   zq.Add[ring62],
		Sub:   zq.Sub[ring62],
		Mul:   zq.Mul[ring62],
		Zero:  zq.Zero[ring62],
		Equal: zq.Equal[ring62],
		AbsLeq: func(v zq.Elem[ring62], bound int64) bool {
			return v.CheckInfinityNorm(uint64(bound) + 1)
		},
		SqAdd: func(acc, v zq.Elem[ring62]) zq.Elem[ring62] {
			return zq.Add[ring62](acc, zq.Square[ring62](v))
		},
		SqLeq: func(acc zq.Elem[ring62], boundSq int64) bool {
			return acc.Balanced() <= boundSq && acc.Balanced() >= -boundSq
		},
	}
}

func toySponge() sponge.Sponge[zq.Elem[ring62]] {
	params := &sponge.Params[zq.Elem[ring62]]{
		T: 3, Rate: 2, RF: 4, RP: 4, D: 5,
		CExt: make([][]zq.Elem[ring62], 4),
		CInt: make([]zq.Elem[ring62], 4),
		ME:   mixMatrix(3),
		MI:   mixMatrix(3),
	}
	for i := range params.CExt {
		row := make([]zq.Elem[ring62], 3)
		for j := range row {
			row[j] = zq.From[ring62](uint64(i*3 + j + 1))
		}
		params.CExt[i] = row
		params.CInt[i] = zq.From[ring62](uint64(i + 1))
	}
	ops := sponge.Ops[zq.Elem[ring62]]{
		Add: zq.Add[ring62], Mul: zq.Mul[ring62], Zero: zq.Zero[ring62], FromInt: func(v int) zq.Elem[ring62] { return zq.From[ring62](uint64(v)) },
	}
	return sponge.NewPoseidon2(ops, params)
}

// mixMatrix builds a toy n x n mixing matrix (diagonal 2, off-diagonal 1),
// invertible enough to give Poseidon2's rounds real diffusion in tests.
func mixMatrix(n int) [][]zq.Elem[ring62] {
	m := make([][]zq.Elem[ring62], n)
	for i := range m {
		m[i] = make([]zq.Elem[ring62], n)
		for j := range m[i] {
			if i == j {
				m[i][j] = zq.From[ring62](2)
			} else {
				m[i][j] = zq.One[ring62]()
			}
		}
	}
	return m
}

func TestCommitOpenRoundTrip(t *testing.T) {
	ops := testOps()
	sp := toySponge()
	s := Setup(ops, sp, 2, 2, NormInfinity, 100)
	m := []zq.Elem[ring62]{zq.From[ring62](3), zq.From[ring62](5)}
	c := s.Commit(m)
	if !s.Open(c, m) {
		t.Fatalf("expected valid opening to succeed")
	}
}

func TestOpenRejectsTamperedCommitment(t *testing.T) {
	ops := testOps()
	sp := toySponge()
	s := Setup(ops, sp, 2, 2, NormInfinity, 100)
	m := []zq.Elem[ring62]{zq.From[ring62](3), zq.From[ring62](5)}
	c := s.Commit(m)
	c[0] = zq.Add[ring62](c[0], zq.One[ring62]())
	if s.Open(c, m) {
		t.Fatalf("expected tampered commitment to be rejected")
	}
}

func TestOpenRejectsOutOfBoundNorm(t *testing.T) {
	ops := testOps()
	sp := toySponge()
	s := Setup(ops, sp, 2, 2, NormInfinity, 2)
	m := []zq.Elem[ring62]{zq.From[ring62](3), zq.From[ring62](5)}
	c := s.Commit(m)
	if s.Open(c, m) {
		t.Fatalf("expected an over-bound witness to be rejected by checkNorm")
	}
}

func TestHomomorphicAdd(t *testing.T) {
	ops := testOps()
	sp := toySponge()
	s := Setup(ops, sp, 2, 2, NormInfinity, 1000)
	m1 := []zq.Elem[ring62]{zq.From[ring62](1), zq.From[ring62](2)}
	m2 := []zq.Elem[ring62]{zq.From[ring62](3), zq.From[ring62](4)}
	c1 := s.Commit(m1)
	c2 := s.Commit(m2)

	summed := AddWitness(ops, m1, m2)
	wantC := s.Commit(summed)
	gotC := Add(ops, c1, c2)
	for i := range wantC {
		if !ops.Equal(wantC[i], gotC[i]) {
			t.Fatalf("commit(m1+m2) != commit(m1)+commit(m2) at index %d", i)
		}
	}
	if !s.Open(gotC, summed) {
		t.Fatalf("expected combined opening to succeed")
	}
}
