// Package bfv is an external user of the ring layer (spec.md §1's "a BFV/LPR
// lattice encryption layer"): a minimal BFV-style scheme built directly on
// github.com/tuneinsight/lattigo/v4/ring's ring.Ring/ring.Poly API.
package bfv

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// SecretKey is a small ternary polynomial in the ciphertext ring.
type SecretKey struct{ Value *ring.Poly }

// PublicKey is (b, a) with b = -(a·s + e) in the ciphertext ring.
type PublicKey struct{ B, A *ring.Poly }

// Ciphertext is a degree-1 BFV ciphertext (c0, c1).
type Ciphertext struct{ C0, C1 *ring.Poly }

// GenerateSecretKey samples a ternary secret key (spec.md's test vector 1:
// "generateSecretKey").
func GenerateSecretKey(ringQ *ring.Ring, prng utils.PRNG) *SecretKey {
	ts := ring.NewTernarySampler(prng, ringQ, 1.0/3.0, false)
	s := ringQ.NewPoly()
	ts.Read(s)
	ringQ.NTT(s, s)
	return &SecretKey{Value: s}
}

// GeneratePublicKey samples a uniform a, a small error e, and sets
// b = -(a·s + e) (spec.md's test vector 1: "generatePublicKey").
func GeneratePublicKey(ringQ *ring.Ring, sk *SecretKey, prng utils.PRNG) *PublicKey {
	us := ring.NewUniformSampler(prng, ringQ)
	a := ringQ.NewPoly()
	us.Read(a)
	ringQ.NTT(a, a)

	gs := ring.NewGaussianSampler(prng, ringQ, ring.DefaultSigma, ring.DefaultBound)
	e := ringQ.NewPoly()
	gs.Read(e)
	ringQ.NTT(e, e)

	b := ringQ.NewPoly()
	ringQ.MulCoeffs(a, sk.Value, b)
	ringQ.Add(b, e, b)
	ringQ.Neg(b, b)
	ringQ.Reduce(b, b)
	return &PublicKey{B: b, A: a}
}

// delta returns floor(Q/T), the BFV scaling factor, for a single-modulus
// ringQ and plaintext modulus t.
func delta(ringQ *ring.Ring, t uint64) uint64 {
	q := ringQ.Modulus[0]
	return new(big.Int).Div(new(big.Int).SetUint64(q), new(big.Int).SetUint64(t)).Uint64()
}

// Encrypt packs values (each reduced mod t) into the constant terms of a
// scaled plaintext, then encrypts under pk with fresh ternary/error noise
// (spec.md's test vector 1: "encrypt(pk, [1,2,3,4])").
func Encrypt(ringQ *ring.Ring, t uint64, pk *PublicKey, values []uint64, prng utils.PRNG) (*Ciphertext, error) {
	if len(values) > ringQ.N {
		return nil, fmt.Errorf("bfv: %d values exceed ring degree %d", len(values), ringQ.N)
	}
	d := delta(ringQ, t)
	m := ringQ.NewPoly()
	for i, v := range values {
		m.Coeffs[0][i] = (v % t) * d
	}
	ringQ.NTT(m, m)

	us := ring.NewTernarySampler(prng, ringQ, 1.0/3.0, false)
	u := ringQ.NewPoly()
	us.Read(u)
	ringQ.NTT(u, u)

	gs := ring.NewGaussianSampler(prng, ringQ, ring.DefaultSigma, ring.DefaultBound)
	e1, e2 := ringQ.NewPoly(), ringQ.NewPoly()
	gs.Read(e1)
	gs.Read(e2)
	ringQ.NTT(e1, e1)
	ringQ.NTT(e2, e2)

	c0 := ringQ.NewPoly()
	ringQ.MulCoeffs(pk.B, u, c0)
	ringQ.Add(c0, e1, c0)
	ringQ.Add(c0, m, c0)

	c1 := ringQ.NewPoly()
	ringQ.MulCoeffs(pk.A, u, c1)
	ringQ.Add(c1, e2, c1)

	return &Ciphertext{C0: c0, C1: c1}, nil
}

// Decrypt recovers (c0 + c1·s), rescales by t/Q with rounding, and reads off
// the leading n coefficients mod t (spec.md's test vector 1: "decrypt(sk,
// ct) returns [1,2,3,4]").
func Decrypt(ringQ *ring.Ring, t uint64, sk *SecretKey, ct *Ciphertext, n int) []uint64 {
	m := ringQ.NewPoly()
	ringQ.MulCoeffs(ct.C1, sk.Value, m)
	ringQ.Add(m, ct.C0, m)
	ringQ.InvNTT(m, m)

	q := ringQ.Modulus[0]
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		// round(coeff * t / q) mod t
		num := new(big.Int).Mul(new(big.Int).SetUint64(m.Coeffs[0][i]), new(big.Int).SetUint64(t))
		qBig := new(big.Int).SetUint64(q)
		half := new(big.Int).Rsh(qBig, 1)
		num.Add(num, half)
		num.Div(num, qBig)
		out[i] = num.Uint64() % t
	}
	return out
}
