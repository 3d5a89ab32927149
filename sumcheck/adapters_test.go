package sumcheck

import (
	"testing"

	"latticefold/fp"
	"latticefold/mle"
	"latticefold/sponge"
	"latticefold/univariate"
)

// powScenario builds spec.md §8 seed scenario 5: a Pow extension over
// τ=2, ℓ=4 variables. The Pow/Eq hypercube-sum identity (every per-variable
// eqTerm(r,0)+eqTerm(r,1) == 1, see mle.EqTerm) guarantees the claimed sum
// s=1 regardless of τ, which is why the scenario picks s=1.
func powScenario() (Ops[fp.Elem[M]], Oracle[fp.Elem[M]], fp.Elem[M]) {
	ops := fieldOps()
	tau := fromInt(2)
	p := mle.NewPow(ops, tau, 4)
	oracle := PowOracle(ops, p)
	return ops, oracle, ops.One()
}

// runFirstRounds replays n ordinary sum-check rounds (same logic as Prove's
// loop body, inlined here since it is package-internal) against sp,
// returning the round polynomials and the oracle bound down to
// oracle.NumVars-n variables.
func runFirstRounds(ops Ops[fp.Elem[M]], o Oracle[fp.Elem[M]], n int, sp sponge.Sponge[fp.Elem[M]]) ([]univariate.Poly[fp.Elem[M]], Oracle[fp.Elem[M]]) {
	uops := uniOps(ops)
	rounds := make([]univariate.Poly[fp.Elem[M]], n)
	cur := o
	for i := 0; i < n; i++ {
		xs := samplePoints(cur.Deg)
		values := make([]fp.Elem[M], len(xs))
		for k, x := range xs {
			values[k] = RoundEval(ops, cur, ops.FromInt(x))
		}
		qi, ok := univariate.Interpolate(uops, values)
		if !ok {
			panic("sumcheck: test interpolation failed")
		}
		rounds[i] = qi
		absorbPoly(sp, qi)
		r := sp.Squeeze()
		cur = cur.Bind(r)
	}
	return rounds, cur
}

// verifyFirstRounds replays the verifier side of runFirstRounds against its
// own fresh transcript, returning the final per-round claim and the oracle
// bound down the same way, or ok=false on the first round-sum mismatch.
func verifyFirstRounds(ops Ops[fp.Elem[M]], o Oracle[fp.Elem[M]], claimed fp.Elem[M], rounds []univariate.Poly[fp.Elem[M]], sp sponge.Sponge[fp.Elem[M]]) (fp.Elem[M], Oracle[fp.Elem[M]], bool) {
	uops := uniOps(ops)
	cur := o
	claim := claimed
	for _, qi := range rounds {
		v0 := univariate.Eval(uops, qi, ops.Zero())
		v1 := univariate.Eval(uops, qi, ops.One())
		if !ops.Equal(ops.Add(v0, v1), claim) {
			return claim, cur, false
		}
		absorbPoly(sp, qi)
		r := sp.Squeeze()
		claim = univariate.Eval(uops, qi, r)
		cur = cur.Bind(r)
	}
	return claim, cur, true
}

func restPointOneVar(r fp.Elem[M]) []fp.Elem[M] { return []fp.Elem[M]{r} }

func TestPowOracleEarlyStoppingRoundTrip(t *testing.T) {
	ops, oracle, claimed := powScenario()

	spP := freshSponge()
	rounds, lastOracle := runFirstRounds(ops, oracle, 3, spP)
	q0, _ := EarlyStoppingProve(ops, lastOracle, spP, absorbPoly)

	spV := freshSponge()
	claim, vOracle, ok := verifyFirstRounds(ops, oracle, claimed, rounds, spV)
	if !ok {
		t.Fatalf("expected the first three ordinary rounds to verify")
	}
	if !EarlyStoppingVerify(ops, vOracle, claim, q0, spV, absorbPoly, restPointOneVar) {
		t.Fatalf("expected early-stopping verification of the Pow oracle to succeed")
	}
}

func TestPowOracleEarlyStoppingRejectsTamperedClaimedSum(t *testing.T) {
	ops, oracle, claimed := powScenario()

	spP := freshSponge()
	rounds, lastOracle := runFirstRounds(ops, oracle, 3, spP)
	q0, _ := EarlyStoppingProve(ops, lastOracle, spP, absorbPoly)

	spV := freshSponge()
	tampered := ops.Add(claimed, ops.One())
	_, vOracle, ok := verifyFirstRounds(ops, oracle, tampered, rounds, spV)
	if ok && EarlyStoppingVerify(ops, vOracle, tampered, q0, spV, absorbPoly, restPointOneVar) {
		t.Fatalf("expected verification to reject a tampered claimed sum s != 1")
	}
}

func TestPowOracleEarlyStoppingRejectsTamperedFinalRound(t *testing.T) {
	ops, oracle, claimed := powScenario()

	spP := freshSponge()
	rounds, lastOracle := runFirstRounds(ops, oracle, 3, spP)
	q0, _ := EarlyStoppingProve(ops, lastOracle, spP, absorbPoly)
	q0.Coeffs[0] = ops.Add(q0.Coeffs[0], ops.One())

	spV := freshSponge()
	claim, vOracle, ok := verifyFirstRounds(ops, oracle, claimed, rounds, spV)
	if !ok {
		t.Fatalf("expected the first three ordinary rounds to verify")
	}
	if EarlyStoppingVerify(ops, vOracle, claim, q0, spV, absorbPoly, restPointOneVar) {
		t.Fatalf("expected verification to reject a tampered early-stopping round polynomial")
	}
}

func TestPowOracleEarlyStoppingRejectsTamperedEarlierRound(t *testing.T) {
	ops, oracle, claimed := powScenario()

	spP := freshSponge()
	rounds, lastOracle := runFirstRounds(ops, oracle, 3, spP)
	q0, _ := EarlyStoppingProve(ops, lastOracle, spP, absorbPoly)
	rounds[1].Coeffs[0] = ops.Add(rounds[1].Coeffs[0], ops.One())

	spV := freshSponge()
	claim, vOracle, ok := verifyFirstRounds(ops, oracle, claimed, rounds, spV)
	if ok && EarlyStoppingVerify(ops, vOracle, claim, q0, spV, absorbPoly, restPointOneVar) {
		t.Fatalf("expected verification to reject a tampered earlier-round polynomial")
	}
}
