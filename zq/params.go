// Package zq implements the signed-representative integer ring modulo a
// compile-time prime q, in Montgomery form, as described by spec.md §4.1.
//
// Concrete moduli are named zero-size marker types (Solinas62, Fermat,
// Pervushin, Dilithium, LM62) implementing Params entirely with constant
// methods, so Elem[P] can be generic over P without carrying any runtime
// parameter state — the Go analogue of the teacher's compile-time trait
// polymorphism (design notes, spec.md §9).
package zq

// Params describes one compile-time modulus and its Montgomery constants.
// All arithmetic is over R = 2^64.
type Params interface {
	// Q is the modulus.
	Q() uint64
	// R2 is R^2 mod Q, used to enter Montgomery form.
	R2() uint64
	// NegQInv is -Q^-1 mod 2^64, used by the single-word REDC reduction.
	NegQInv() uint64
	// TwoAdicity is the largest s with 2^s | (Q-1).
	TwoAdicity() int
	// RootOfUnity is a canonical (non-Montgomery) element of order exactly
	// 2^TwoAdicity().
	RootOfUnity() uint64
	// DivisionRing selects Fermat/Euler exponentiation (x^(q-2)) for
	// invert; when false the binary-GCD variant is used instead.
	DivisionRing() bool
	// TwoInverted is the Montgomery form of 2^-1. Zero when DivisionRing is
	// true. The binary-GCD inversion variant does not read it.
	TwoInverted() uint64
	// SparseModulus flags a modulus with very low Hamming weight (Solinas
	// form). Invert does not consult it; DivisionRing alone selects the
	// inversion path.
	SparseModulus() bool
	// Name is a human-readable label, used in error messages only.
	Name() string
}

// Solinas62 is a 62-bit Solinas prime 2^62 - 18*2^32 + 1, chosen for a large
// two-adicity (33) so it supports NTTs of degree up to 2^33.
type Solinas62 struct{}

func (Solinas62) Q() uint64           { return 4611685941117976577 }
func (Solinas62) R2() uint64          { return 1600614052114192 }
func (Solinas62) NegQInv() uint64     { return 4611685941117976575 }
func (Solinas62) TwoAdicity() int     { return 33 }
func (Solinas62) RootOfUnity() uint64 { return 391383840822949112 }
func (Solinas62) DivisionRing() bool  { return true }
func (Solinas62) TwoInverted() uint64 { return 0 }
func (Solinas62) SparseModulus() bool { return true }
func (Solinas62) Name() string        { return "Solinas62" }

// Fermat is the 16-bit Fermat prime 2^16+1, used as a small plaintext
// modulus (e.g. the BFV smoke test's Rt, spec.md §8 scenario 1).
type Fermat struct{}

func (Fermat) Q() uint64           { return 65537 }
func (Fermat) R2() uint64          { return 1 }
func (Fermat) NegQInv() uint64     { return 281470681808895 }
func (Fermat) TwoAdicity() int     { return 16 }
func (Fermat) RootOfUnity() uint64 { return 3 }
func (Fermat) DivisionRing() bool  { return true }
func (Fermat) TwoInverted() uint64 { return 0 }
func (Fermat) SparseModulus() bool { return true }
func (Fermat) Name() string        { return "Fermat" }

// Pervushin is the Mersenne prime 2^61-1 (verified prime by Ivan Pervushin).
type Pervushin struct{}

func (Pervushin) Q() uint64           { return 2305843009213693951 }
func (Pervushin) R2() uint64          { return 64 }
func (Pervushin) NegQInv() uint64     { return 2305843009213693953 }
func (Pervushin) TwoAdicity() int     { return 1 }
func (Pervushin) RootOfUnity() uint64 { return 2305843009213693950 }
func (Pervushin) DivisionRing() bool  { return true }
func (Pervushin) TwoInverted() uint64 { return 0 }
func (Pervushin) SparseModulus() bool { return true }
func (Pervushin) Name() string        { return "Pervushin" }

// Dilithium is the Dilithium signature scheme's modulus 2^23-2^13+1.
type Dilithium struct{}

func (Dilithium) Q() uint64           { return 8380417 }
func (Dilithium) R2() uint64          { return 7838417 }
func (Dilithium) NegQInv() uint64     { return 16714476285912408063 }
func (Dilithium) TwoAdicity() int     { return 13 }
func (Dilithium) RootOfUnity() uint64 { return 283817 }
func (Dilithium) DivisionRing() bool  { return true }
func (Dilithium) TwoInverted() uint64 { return 0 }
func (Dilithium) SparseModulus() bool { return false }
func (Dilithium) Name() string        { return "Dilithium" }

// LM62 is a second 62-bit NTT-friendly prime, distinct from Solinas62, used
// wherever two independent RNS limbs are required (ring product, §4.4).
type LM62 struct{}

func (LM62) Q() uint64           { return 4611685606110527489 }
func (LM62) R2() uint64          { return 243181185737883664 }
func (LM62) NegQInv() uint64     { return 4611685606110527487 }
func (LM62) TwoAdicity() int     { return 37 }
func (LM62) RootOfUnity() uint64 { return 3985272135162067206 }
func (LM62) DivisionRing() bool  { return true }
func (LM62) TwoInverted() uint64 { return 0 }
func (LM62) SparseModulus() bool { return true }
func (LM62) Name() string        { return "LM62" }
