package fp

import "math/big"

// BN254Scalar is the scalar-field modulus of the BN254 curve, a
// representative 254-bit prime with Q ≡ 1 (mod 4) exercising the full
// Tonelli–Shanks loop.
type BN254Scalar struct{}

var bn254Q, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

func (BN254Scalar) Q() *big.Int { return new(big.Int).Set(bn254Q) }
func (BN254Scalar) S() int      { return 28 }
func (BN254Scalar) QMinus1Over2S() *big.Int {
	v, _ := new(big.Int).SetString("81540058820840996586704275553141814055101440848469862132140264610111", 10)
	return v
}
func (BN254Scalar) QPlus1Halved() *big.Int {
	return new(big.Int).Rsh(new(big.Int).Add(bn254Q, big.NewInt(1)), 2)
}
func (BN254Scalar) PMinus1Halved() *big.Int {
	return new(big.Int).Rsh(new(big.Int).Sub(bn254Q, big.NewInt(1)), 1)
}
func (BN254Scalar) TwoInverted() *big.Int {
	two := big.NewInt(2)
	inv := new(big.Int).ModInverse(two, bn254Q)
	return inv
}
func (BN254Scalar) SparseModulus() bool { return false }
func (BN254Scalar) NonResidue() *big.Int { return big.NewInt(5) }
func (BN254Scalar) Name() string         { return "BN254Scalar" }

// Small23 is a toy 3-mod-4 prime (Q=23) used for cheap test fixtures that
// exercise the direct-formula square-root branch.
type Small23 struct{}

func (Small23) Q() *big.Int                 { return big.NewInt(23) }
func (Small23) S() int                       { return 1 }
func (Small23) QMinus1Over2S() *big.Int      { return big.NewInt(11) }
func (Small23) QPlus1Halved() *big.Int       { return big.NewInt(6) }
func (Small23) PMinus1Halved() *big.Int      { return big.NewInt(11) }
func (Small23) TwoInverted() *big.Int        { return big.NewInt(12) }
func (Small23) SparseModulus() bool          { return true }
func (Small23) NonResidue() *big.Int         { return big.NewInt(5) }
func (Small23) Name() string                 { return "Small23" }
