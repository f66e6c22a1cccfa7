package pairing

import (
	"fmt"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MultiScalarMulG1 computes sum(points[i]*scalars[i]) using gnark-crypto's
// Pippenger-windowed MultiExp. All of points and scalars must be public,
// since MultiExp's bucketing windows branch on scalar bit patterns, which leaks
// exponents through timing. Use ConstantTimeMultiScalarMulG1 for secret
// exponents.
func MultiScalarMulG1(points []G1, scalars []*big.Int) (G1, error) {
	if len(points) != len(scalars) {
		return G1{}, coconuterr.ErrShape
	}
	if len(points) == 0 {
		return IdentityG1(), nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return G1{}, fmt.Errorf("pairing: nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result G1
	if _, err := result.MultiExp(points, frScalars, ecc.MultiExpConfig{}); err != nil {
		return G1{}, fmt.Errorf("pairing: multi-scalar multiplication: %w", err)
	}
	return result, nil
}

// ConstantTimeMultiScalarMulG1 computes sum(points[i]*scalars[i]) by
// accumulating one scalar multiplication at a time. Each individual
// ScalarMultiplication is constant-time in gnark-crypto; summing them
// sequentially (rather than through MultiExp's windowed bucketing, which
// groups multiple scalars by shared bit patterns) avoids branching across
// secret exponents. Used wherever the exponents are attributes,
// commitment randomness, or signer secrets rather than public data.
func ConstantTimeMultiScalarMulG1(points []G1, scalars []*big.Int) (G1, error) {
	if len(points) != len(scalars) {
		return G1{}, coconuterr.ErrShape
	}

	acc := bls12381.G1Jac{}
	acc.X.SetOne()
	acc.Y.SetOne()
	acc.Z.SetZero()

	for i := range points {
		if scalars[i] == nil {
			return G1{}, fmt.Errorf("pairing: nil scalar at index %d", i)
		}
		var term bls12381.G1Jac
		term.FromAffine(&points[i])
		term.ScalarMultiplication(&term, scalars[i])
		acc.AddAssign(&term)
	}

	var out G1
	out.FromJacobian(&acc)
	return out, nil
}

// MultiScalarMulG2 is the G2 analogue of MultiScalarMulG1, used for the
// public aggregation step of verification keys.
func MultiScalarMulG2(points []G2, scalars []*big.Int) (G2, error) {
	if len(points) != len(scalars) {
		return G2{}, coconuterr.ErrShape
	}
	if len(points) == 0 {
		var id G2
		id.SetInfinity()
		return id, nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return G2{}, fmt.Errorf("pairing: nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result G2
	if _, err := result.MultiExp(points, frScalars, ecc.MultiExpConfig{}); err != nil {
		return G2{}, fmt.Errorf("pairing: multi-scalar multiplication: %w", err)
	}
	return result, nil
}
