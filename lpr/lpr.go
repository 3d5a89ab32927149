// Package lpr is the second external user of the ring layer named by
// spec.md §1: an LPR-style (Lyubashevsky–Peikert–Regev) public-key
// encryption scheme over binary messages, with a Detect operation that
// checks for a known flag pattern without a full decryption — the
// "BlackLemon anonymity" smoke test of spec.md's test-vector list.
package lpr

import (
	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// SecretKey is a small ternary polynomial.
type SecretKey struct{ Value *ring.Poly }

// PublicKey is (b, a) with b = -(a·s + e).
type PublicKey struct{ B, A *ring.Poly }

// Ciphertext is an LPR ciphertext (c0, c1).
type Ciphertext struct{ C0, C1 *ring.Poly }

// GenerateSecretKey samples a ternary secret key.
func GenerateSecretKey(ringQ *ring.Ring, prng utils.PRNG) *SecretKey {
	ts := ring.NewTernarySampler(prng, ringQ, 1.0/3.0, false)
	s := ringQ.NewPoly()
	ts.Read(s)
	ringQ.NTT(s, s)
	return &SecretKey{Value: s}
}

// GeneratePublicKey samples a uniform a and small error e, and sets
// b = -(a·s + e).
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

// halfQ returns floor(Q/2), the binary-message scaling factor.
func halfQ(ringQ *ring.Ring) uint64 { return ringQ.Modulus[0] / 2 }

// Encrypt packs one bit per coefficient, scaled by Q/2, then encrypts under
// pk with fresh ternary/error noise (spec.md's "BlackLemon" test vector:
// "encrypt [0,0,1,1]").
func Encrypt(ringQ *ring.Ring, pk *PublicKey, bits []uint64, prng utils.PRNG) *Ciphertext {
	half := halfQ(ringQ)
	m := ringQ.NewPoly()
	for i, bit := range bits {
		if bit != 0 {
			m.Coeffs[0][i] = half
		}
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

	return &Ciphertext{C0: c0, C1: c1}
}

// Decrypt recovers n bits by rounding each coefficient of c0+c1·s to the
// nearer of {0, Q/2} (spec.md's round-trip test vector).
func Decrypt(ringQ *ring.Ring, sk *SecretKey, ct *Ciphertext, n int) []uint64 {
	m := ringQ.NewPoly()
	ringQ.MulCoeffs(ct.C1, sk.Value, m)
	ringQ.Add(m, ct.C0, m)
	ringQ.InvNTT(m, m)

	q := ringQ.Modulus[0]
	half := q / 2
	quarter := q / 4
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		c := m.Coeffs[0][i]
		dist := distanceToHalf(c, half, q)
		if dist < quarter {
			out[i] = 1
		}
	}
	return out
}

func distanceToHalf(c, half, q uint64) uint64 {
	var d uint64
	if c > half {
		d = c - half
	} else {
		d = half - c
	}
	if wrapped := q - d; wrapped < d {
		return wrapped
	}
	return d
}

// Detect checks whether the leading len(flag) decrypted bits equal flag,
// without decoding the remainder — the scheme's anonymity test: a ciphertext
// not carrying the flag, or a wrong secret key, produces an essentially
// uniform prefix that matches the flag only with negligible probability
// (spec.md's "snake-eye resistance": "detect(sk, (1,0)) is absent", "detect(sk',
// ct) with a fresh sk' is absent").
func Detect(ringQ *ring.Ring, sk *SecretKey, ct *Ciphertext, flag []uint64) bool {
	got := Decrypt(ringQ, sk, ct, len(flag))
	for i := range flag {
		if got[i] != flag[i] {
			return false
		}
	}
	return true
}
