package transcript

import (
	"math/rand"
	"testing"

	"latticefold/constraint"
	"latticefold/fp"
	"latticefold/matvec"
	"latticefold/sponge"
)

type M = fp.BN254Scalar

func fieldOps() constraint.Ops[fp.Elem[M]] {
	return constraint.Ops[fp.Elem[M]]{
		Add: fp.Add[M], Sub: fp.Sub[M], Mul: fp.Mul[M],
		Zero: fp.Zero[M], One: fp.One[M], FromInt: fromInt, Equal: fp.Equal[M],
	}
}

func fromInt(v int) fp.Elem[M] {
	if v >= 0 {
		return fp.FromInt64[M](int64(v))
	}
	return fp.Neg[M](fp.FromInt64[M](int64(-v)))
}

func buildMultiplyR1CS(ops constraint.Ops[fp.Elem[M]]) constraint.R1CS[fp.Elem[M]] {
	a := matvec.NewSparse(1, 4, []int{0}, []int{1}, []fp.Elem[M]{ops.One()})
	b := matvec.NewSparse(1, 4, []int{0}, []int{2}, []fp.Elem[M]{ops.One()})
	c := matvec.NewSparse(1, 4, []int{0}, []int{3}, []fp.Elem[M]{ops.One()})
	return constraint.R1CS[fp.Elem[M]]{A: a, B: b, C: c, M: 1, N: 4}
}

func freshSponge() sponge.Sponge[fp.Elem[M]] {
	params := &sponge.Params[fp.Elem[M]]{
		T: 3, Rate: 2, RF: 4, RP: 4, D: 5,
		CExt: make([][]fp.Elem[M], 4),
		CInt: make([]fp.Elem[M], 4),
		ME:   mixMatrix(3),
		MI:   mixMatrix(3),
	}
	for i := range params.CExt {
		row := make([]fp.Elem[M], 3)
		for j := range row {
			row[j] = fromInt(i*3 + j + 1)
		}
		params.CExt[i] = row
		params.CInt[i] = fromInt(i + 1)
	}
	ops := sponge.Ops[fp.Elem[M]]{Add: fp.Add[M], Mul: fp.Mul[M], Zero: fp.Zero[M], FromInt: fromInt}
	return sponge.NewPoseidon2(ops, params)
}

func mixMatrix(n int) [][]fp.Elem[M] {
	m := make([][]fp.Elem[M], n)
	for i := range m {
		m[i] = make([]fp.Elem[M], n)
		for j := range m[i] {
			if i == j {
				m[i][j] = fromInt(2)
			} else {
				m[i][j] = fromInt(1)
			}
		}
	}
	return m
}

func TestFoldProducesSatisfyingRelaxedInstance(t *testing.T) {
	ops := fieldOps()
	r := buildMultiplyR1CS(ops)
	fs := New(ops, r, freshSponge)

	z1 := []fp.Elem[M]{ops.One(), fromInt(3), fromInt(4), fromInt(12)}
	a := constraint.Relaxed[fp.Elem[M]]{Z: z1, E: []fp.Elem[M]{ops.Zero()}}

	rng := rand.New(rand.NewSource(11))
	sampleZ := func() []fp.Elem[M] {
		return []fp.Elem[M]{ops.One(), fromInt(rng.Intn(20)), fromInt(rng.Intn(20)), fromInt(0)}
	}
	folded := fs.Randomize(a, sampleZ)

	mops := matvec.Ops[fp.Elem[M]]{Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul, Zero: ops.Zero}
	az := matvec.SparseMatVec(mops, r.A, folded.Z)
	bz := matvec.SparseMatVec(mops, r.B, folded.Z)
	cz := matvec.SparseMatVec(mops, r.C, folded.Z)
	for i := range az {
		lhs := ops.Sub(ops.Mul(az[i], bz[i]), ops.Mul(folded.U(), cz[i]))
		if !ops.Equal(lhs, folded.E[i]) {
			t.Fatalf("transcript-folded instance does not satisfy the relaxed R1CS relation at row %d", i)
		}
	}
}

func TestFoldIsDeterministicGivenSameInputs(t *testing.T) {
	ops := fieldOps()
	r := buildMultiplyR1CS(ops)
	fs := New(ops, r, freshSponge)

	z1 := []fp.Elem[M]{ops.One(), fromInt(3), fromInt(4), fromInt(12)}
	z2 := []fp.Elem[M]{ops.One(), fromInt(5), fromInt(6), fromInt(30)}
	a := constraint.Relaxed[fp.Elem[M]]{Z: z1, E: []fp.Elem[M]{ops.Zero()}}
	b := constraint.Relaxed[fp.Elem[M]]{Z: z2, E: []fp.Elem[M]{ops.Zero()}}

	f1 := fs.Fold(a, b)
	f2 := fs.Fold(a, b)
	for i := range f1.Z {
		if !ops.Equal(f1.Z[i], f2.Z[i]) {
			t.Fatalf("expected Fold to be deterministic given identical inputs")
		}
	}
}
