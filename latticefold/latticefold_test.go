package latticefold

import (
	"testing"

	"latticefold/fp"
	"latticefold/mle"
)

type M = fp.BN254Scalar

func fieldOps() Ops[fp.Elem[M]] {
	return Ops[fp.Elem[M]]{
		Add: fp.Add[M], Sub: fp.Sub[M], Mul: fp.Mul[M],
		Zero: fp.Zero[M], One: fp.One[M], FromInt: fromInt,
	}
}

func fromInt(v int) fp.Elem[M] {
	if v >= 0 {
		return fp.FromInt64[M](int64(v))
	}
	return fp.Neg[M](fp.FromInt64[M](int64(-v)))
}

func sumTable(ops Ops[fp.Elem[M]], tbl []fp.Elem[M]) fp.Elem[M] {
	acc := ops.Zero()
	for _, v := range tbl {
		acc = ops.Add(acc, v)
	}
	return acc
}

func TestGadgetDecomposeReconstructs(t *testing.T) {
	ops := fieldOps()
	m, n, radix := 2, 3, 10
	g := Gadget(ops, m, n, radix)

	v := []int64{123, 45}
	digits := Decompose(v, n, int64(radix))
	witness := make([]fp.Elem[M], len(digits))
	for i, d := range digits {
		witness[i] = fromInt(int(d))
	}

	for row := 0; row < m; row++ {
		acc := ops.Zero()
		for k := g.RowPtr[row]; k < g.RowPtr[row+1]; k++ {
			acc = ops.Add(acc, ops.Mul(g.Vals[k], witness[g.ColIdx[k]]))
		}
		if !fp.Equal(acc, fromInt(int(v[row]))) {
			t.Fatalf("row %d: gadget·decompose(v) = %v, want %d", row, acc.Value(), v[row])
		}
	}
}

// TestGadgetLiteralSpecVector is spec.md §8's literal gadget example:
// gadget<R>(1,4) applied to the digits (3,2,1,0) (radix DefaultRadix=65536)
// yields 3 + 2·65536 + 1·65536² + 0·65536³ = 4295098371, and decomposing
// that value back recovers (3,2,1,0).
func TestGadgetLiteralSpecVector(t *testing.T) {
	ops := fieldOps()
	g := Gadget(ops, 1, 4, DefaultRadix)

	digits := []int64{3, 2, 1, 0}
	witness := make([]fp.Elem[M], len(digits))
	for i, d := range digits {
		witness[i] = fromInt(int(d))
	}
	acc := ops.Zero()
	for k := g.RowPtr[0]; k < g.RowPtr[1]; k++ {
		acc = ops.Add(acc, ops.Mul(g.Vals[k], witness[g.ColIdx[k]]))
	}
	want := fromInt(4295098371)
	if !fp.Equal(acc, want) {
		t.Fatalf("gadget<R>(1,4)·(3,2,1,0) = %v, want 4295098371", acc.Value())
	}

	recovered := Decompose([]int64{4295098371}, 4, DefaultRadix)
	for i, d := range digits {
		if recovered[i] != d {
			t.Fatalf("decompose(4295098371)[%d] = %d, want %d", i, recovered[i], d)
		}
	}
}

func TestG2VanishesForBinaryWitness(t *testing.T) {
	ops := fieldOps()
	f := mle.NewMLE([]fp.Elem[M]{ops.Zero(), ops.One(), ops.One(), ops.Zero()})
	oracle := G2(ops, ops.One(), f)

	sum := sumTable(ops, oracle.Table(ops.Zero()))
	sum = ops.Add(sum, sumTable(ops, oracle.Table(ops.One())))
	if !fp.Equal(sum, ops.Zero()) {
		t.Fatalf("expected G2 to vanish on a {0,1}-valued witness, got %v", sum.Value())
	}
}

func TestG1MatchesEqTimesMLEAtEvalPoint(t *testing.T) {
	ops := fieldOps()
	f := mle.NewMLE([]fp.Elem[M]{fromInt(1), fromInt(2), fromInt(3), fromInt(4)})
	alpha := []fp.Elem[M]{fromInt(5), fromInt(7)}
	oracle := G1(ops, alpha, f)

	x := []fp.Elem[M]{fromInt(3), fromInt(9)}
	got := oracle.At(x)

	mops := mopsOf(ops)
	eq := mle.NewEq(mops, alpha)
	want := ops.Mul(mle.Eval(mops, eq, x), mle.EvalAt(mops, f, x))
	if !fp.Equal(got, want) {
		t.Fatalf("G1.At = %v, want Eq(alpha)(x)*MLE(f)(x) = %v", got.Value(), want.Value())
	}
}

func TestGFoldIsSumOfGEvalAndGNorm(t *testing.T) {
	ops := fieldOps()
	chunks := []mle.MLE[fp.Elem[M]]{
		mle.NewMLE([]fp.Elem[M]{ops.Zero(), ops.One()}),
		mle.NewMLE([]fp.Elem[M]{ops.One(), ops.Zero()}),
	}
	alphas := [][]fp.Elem[M]{{fromInt(2)}, {fromInt(3)}}
	mus := []fp.Elem[M]{fromInt(4), fromInt(5)}

	fold := GFold(ops, alphas, mus, chunks)
	x := []fp.Elem[M]{fromInt(9)}
	got := fold.At(x)

	eval := GEval(ops, alphas, chunks)
	norm := GNorm(ops, mus, chunks)
	want := ops.Add(eval.At(x), norm.At(x))
	if !fp.Equal(got, want) {
		t.Fatalf("GFold.At = %v, want GEval.At+GNorm.At = %v", got.Value(), want.Value())
	}
}
