package pairing

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pair evaluates the type-2 pairing e(a, b).
func Pair(a G1, b G2) (GT, error) {
	res, err := bls12381.Pair([]G1{a}, []G2{b})
	if err != nil {
		return GT{}, fmt.Errorf("pairing: pairing evaluation: %w", err)
	}
	return res, nil
}

// MultiPair evaluates e(a1,b1)*e(a2,b2) as a single two-pairing Miller
// loop, which is both faster and avoids one GT element's worth of
// intermediate serialization compared to calling Pair twice and
// multiplying the results. Used for the verification equation in
// credential.Verify, where the check is phrased as
// e(sigma_1, Y~) * e(-sigma_2, g2) == 1.
func MultiPair(a1 G1, b1 G2, a2 G1, b2 G2) (GT, error) {
	res, err := bls12381.Pair([]G1{a1, a2}, []G2{b1, b2})
	if err != nil {
		return GT{}, fmt.Errorf("pairing: multi-pairing evaluation: %w", err)
	}
	return res, nil
}

// IsIdentityGT reports whether e is the identity of GT (i.e. 1).
func IsIdentityGT(e GT) bool {
	return e.IsOne()
}
