package pairing

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1, G2, and GT are the three groups of the BLS12-381 type-2 pairing.
type G1 = bls12381.G1Affine
type G2 = bls12381.G2Affine
type GT = bls12381.GT

// Order is the prime order q of G1, G2, and the scalar field Fr.
var Order = func() *big.Int {
	o, ok := new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
	if !ok {
		panic("pairing: failed to parse curve order")
	}
	return o
}()

// G1Generator returns the standard BLS12-381 G1 base point.
func G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// G2Generator returns the standard BLS12-381 G2 base point.
func G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// ScalarMulG1 computes p*s.
func ScalarMulG1(p G1, s *big.Int) G1 {
	var j bls12381.G1Jac
	j.FromAffine(&p)
	j.ScalarMultiplication(&j, s)
	var out G1
	out.FromJacobian(&j)
	return out
}

// ScalarMulG2 computes p*s.
func ScalarMulG2(p G2, s *big.Int) G2 {
	var j bls12381.G2Jac
	j.FromAffine(&p)
	j.ScalarMultiplication(&j, s)
	var out G2
	out.FromJacobian(&j)
	return out
}

// AddG1 computes a+b.
func AddG1(a, b G1) G1 {
	var out G1
	out.Add(&a, &b)
	return out
}

// AddG2 computes a+b.
func AddG2(a, b G2) G2 {
	var out G2
	out.Add(&a, &b)
	return out
}

// NegG1 computes -p.
func NegG1(p G1) G1 {
	var out G1
	out.Neg(&p)
	return out
}

// NegG2 computes -p.
func NegG2(p G2) G2 {
	var out G2
	out.Neg(&p)
	return out
}

// IsIdentityG1 reports whether p is the identity element of G1.
func IsIdentityG1(p G1) bool {
	return p.IsInfinity()
}

// IsIdentityG2 reports whether p is the identity element of G2.
func IsIdentityG2(p G2) bool {
	return p.IsInfinity()
}

// IdentityG1 returns the identity element of G1.
func IdentityG1() G1 {
	var out G1
	out.SetInfinity()
	return out
}
