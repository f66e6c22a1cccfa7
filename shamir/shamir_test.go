package shamir

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellum-crypto/coconut/pairing"
)

func TestPolynomialInterpolation(t *testing.T) {
	secret := big.NewInt(424242)
	poly, err := NewPolynomialWithSecret(secret, 3, rand.Reader)
	require.NoError(t, err)

	ids := []uint32{1, 2, 3}
	shares := map[uint32]*big.Int{}
	for _, id := range ids {
		shares[id] = poly.Eval(big.NewInt(int64(id)))
	}

	recombined := big.NewInt(0)
	for _, id := range ids {
		l := LagrangeBasisAtZero(ids, id)
		term := new(big.Int).Mul(l, shares[id])
		recombined.Add(recombined, term)
	}
	recombined.Mod(recombined, pairing.Order)

	require.Equal(t, 0, recombined.Cmp(new(big.Int).Mod(secret, pairing.Order)))
}

func TestLagrangeOrderInvariant(t *testing.T) {
	S1 := []uint32{1, 2, 3}
	S2 := []uint32{3, 1, 2}
	require.Equal(t, 0, LagrangeBasisAtZero(S1, 2).Cmp(LagrangeBasisAtZero(S2, 2)))
}

func TestLagrangeGapTolerance(t *testing.T) {
	secret := big.NewInt(99)
	poly, err := NewPolynomialWithSecret(secret, 3, rand.Reader)
	require.NoError(t, err)

	ids := []uint32{1, 3, 5}
	recombined := big.NewInt(0)
	for _, id := range ids {
		l := LagrangeBasisAtZero(ids, id)
		share := poly.Eval(big.NewInt(int64(id)))
		term := new(big.Int).Mul(l, share)
		recombined.Add(recombined, term)
	}
	recombined.Mod(recombined, pairing.Order)
	require.Equal(t, 0, recombined.Cmp(new(big.Int).Mod(secret, pairing.Order)))
}

func TestLagrangePanicsOnMissingJ(t *testing.T) {
	require.Panics(t, func() {
		LagrangeBasisAtZero([]uint32{1, 2, 3}, 4)
	})
}

func TestLagrangePanicsOnZeroInS(t *testing.T) {
	require.Panics(t, func() {
		LagrangeBasisAtZero([]uint32{0, 2, 3}, 2)
	})
}
