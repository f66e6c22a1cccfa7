package setup

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/shamir"
)

func TestParamsIndependentGenerators(t *testing.T) {
	params, err := NewParams(3, "test-label")
	require.NoError(t, err)

	require.False(t, pairing.IsIdentityG1(params.G1))
	require.False(t, params.H[0].Equal(&params.G1))
	for i := 0; i < len(params.H); i++ {
		for j := i + 1; j < len(params.H); j++ {
			require.False(t, params.H[i].Equal(&params.H[j]))
		}
	}
}

func TestParamsDeterministic(t *testing.T) {
	p1, err := NewParams(4, "same-label")
	require.NoError(t, err)
	p2, err := NewParams(4, "same-label")
	require.NoError(t, err)

	require.True(t, p1.G1.Equal(&p2.G1))
	require.True(t, p1.G2.Equal(&p2.G2))
	for i := range p1.H {
		require.True(t, p1.H[i].Equal(&p2.H[i]))
	}
}

// TestAggregateMatchesMasterSecret is the dealer-side test for testable
// property 7: aggregating any t verkey shares reproduces g2*x_master and
// g2*y_j for the dealer's own polynomials' constant terms.
func TestAggregateMatchesMasterSecret(t *testing.T) {
	const L, thresh, n = 7, 3, 6

	params, err := NewParams(L, "S6-label")
	require.NoError(t, err)

	shares, err := GenerateShares(thresh, n, params, rand.Reader)
	require.NoError(t, err)

	verkeys := make([]SignerVerkey, n)
	for i, s := range shares {
		verkeys[i] = SignerVerkey{ID: s.ID, Verkey: s.Sigkey.DerivePublic(params)}
	}

	// Sparse subset {1,3,5}.
	subset := []SignerVerkey{verkeys[0], verkeys[2], verkeys[4]}
	agg, err := Aggregate(thresh, subset)
	require.NoError(t, err)

	// GenerateShares doesn't return the master secret, so recover it in
	// Fr from the secret shares of signers {1,2,3} and compare the
	// aggregate against g2 times it.
	ids := []uint32{shares[0].ID, shares[1].ID, shares[2].ID}
	xMaster := new(big.Int)
	yMaster := make([]*big.Int, L)
	for j := range yMaster {
		yMaster[j] = new(big.Int)
	}
	for _, s := range shares[:thresh] {
		l := shamir.LagrangeBasisAtZero(ids, s.ID)
		xMaster.Add(xMaster, new(big.Int).Mul(l, s.Sigkey.X))
		for j := range yMaster {
			yMaster[j].Add(yMaster[j], new(big.Int).Mul(l, s.Sigkey.Y[j]))
		}
	}
	wantXt := pairing.ScalarMulG2(params.G2, xMaster.Mod(xMaster, pairing.Order))
	require.True(t, agg.Xt.Equal(&wantXt))
	for j := range yMaster {
		wantYt := pairing.ScalarMulG2(params.G2, yMaster[j].Mod(yMaster[j], pairing.Order))
		require.True(t, agg.Yt[j].Equal(&wantYt))
	}

	// A second, disjoint subset must aggregate to the same verkey
	// (testable property 2: threshold indifference).
	subset2 := []SignerVerkey{verkeys[1], verkeys[3], verkeys[5]}
	agg2, err := Aggregate(thresh, subset2)
	require.NoError(t, err)

	require.True(t, agg.Xt.Equal(&agg2.Xt))
	for j := range agg.Yt {
		require.True(t, agg.Yt[j].Equal(&agg2.Yt[j]))
	}
}

func TestAggregateThresholdNotMet(t *testing.T) {
	params, err := NewParams(2, "t-not-met")
	require.NoError(t, err)
	shares, err := GenerateShares(3, 5, params, rand.Reader)
	require.NoError(t, err)

	verkeys := make([]SignerVerkey, 2)
	for i := 0; i < 2; i++ {
		verkeys[i] = SignerVerkey{ID: shares[i].ID, Verkey: shares[i].Sigkey.DerivePublic(params)}
	}

	_, err = Aggregate(3, verkeys)
	require.Error(t, err)
}
