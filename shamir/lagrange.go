package shamir

import (
	"math/big"

	"github.com/vellum-crypto/coconut/pairing"
)

// LagrangeBasisAtZero computes l_j = prod_{k in S, k != j} (-k) * (j-k)^-1,
// the coefficient such that a degree-(|S|-1) polynomial's value at 0
// equals sum_i l_i * f(id_i) given evaluations at every id in S.
//
// S may be supplied in any order (the result does not depend on it) and
// need not be contiguous; {1,3,5} works exactly like {1,2,3}. This
// generalizes the teacher's calculateLagrangeCoefficients
// (bbs/keymanagement.go), which only ever recombines the full set it was
// given at once and assumes indices start at 1; here j must be a member
// of S and S is evaluated as an arbitrary index set.
//
// LagrangeBasisAtZero panics if j is not a member of S or if S contains
// 0: both are programmer errors (0 is the reserved "master secret"
// evaluation point, never a valid signer id), not adversarial input, so
// they are not surfaced as a returned error per the scheme's error
// policy.
func LagrangeBasisAtZero(S []uint32, j uint32) *big.Int {
	found := false
	for _, id := range S {
		if id == 0 {
			panic("shamir: 0 is not a valid signer id")
		}
		if id == j {
			found = true
		}
	}
	if !found {
		panic("shamir: j is not a member of S")
	}

	jBig := big.NewInt(int64(j))

	num := big.NewInt(1)
	den := big.NewInt(1)

	for _, k := range S {
		if k == j {
			continue
		}
		kBig := big.NewInt(int64(k))

		negK := new(big.Int).Neg(kBig)
		negK.Mod(negK, pairing.Order)
		num.Mul(num, negK)
		num.Mod(num, pairing.Order)

		diff := new(big.Int).Sub(jBig, kBig)
		diff.Mod(diff, pairing.Order)
		den.Mul(den, diff)
		den.Mod(den, pairing.Order)
	}

	denInv := new(big.Int).ModInverse(den, pairing.Order)
	result := new(big.Int).Mul(num, denInv)
	return result.Mod(result, pairing.Order)
}
