package pairing

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarMulMatchesMultiScalarMul(t *testing.T) {
	g1 := G1Generator()
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	direct := ScalarMulG1(g1, s)

	msm, err := MultiScalarMulG1([]G1{g1}, []*big.Int{s})
	require.NoError(t, err)
	require.True(t, direct.Equal(&msm))

	ctMsm, err := ConstantTimeMultiScalarMulG1([]G1{g1}, []*big.Int{s})
	require.NoError(t, err)
	require.True(t, direct.Equal(&ctMsm))
}

func TestMultiScalarMulShapeMismatch(t *testing.T) {
	_, err := MultiScalarMulG1([]G1{G1Generator()}, nil)
	require.Error(t, err)
}

func TestHashToG1Deterministic(t *testing.T) {
	p1, err := HashToG1([]byte("label : g1"), []byte("COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_"))
	require.NoError(t, err)
	p2, err := HashToG1([]byte("label : g1"), []byte("COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_"))
	require.NoError(t, err)
	require.True(t, p1.Equal(&p2))
	require.False(t, IsIdentityG1(p1))
}

func TestHashToG1DomainSeparation(t *testing.T) {
	dst := []byte("COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_")
	p1, err := HashToG1([]byte("label : g1"), dst)
	require.NoError(t, err)
	p2, err := HashToG1([]byte("label : y0"), dst)
	require.NoError(t, err)
	require.False(t, p1.Equal(&p2))
}

func TestRandomScalarInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		s, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		require.True(t, s.Sign() >= 0)
		require.True(t, s.Cmp(Order) < 0)
	}
}

func TestPairBilinearity(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()

	a := big.NewInt(7)
	b := big.NewInt(11)

	lhs, err := Pair(ScalarMulG1(g1, a), ScalarMulG2(g2, b))
	require.NoError(t, err)

	ab := new(big.Int).Mul(a, b)
	rhs, err := Pair(g1, ScalarMulG2(g2, ab))
	require.NoError(t, err)

	require.True(t, lhs.Equal(&rhs))
}

func TestMultiPairMatchesTwoSinglePairs(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := ScalarMulG1(g1, big.NewInt(3))
	b := ScalarMulG2(g2, big.NewInt(5))
	c := ScalarMulG1(g1, big.NewInt(9))
	d := ScalarMulG2(g2, big.NewInt(2))

	got, err := MultiPair(a, b, c, d)
	require.NoError(t, err)

	p1, err := Pair(a, b)
	require.NoError(t, err)
	p2, err := Pair(c, d)
	require.NoError(t, err)
	want := p1
	want.Mul(&want, &p2)

	require.True(t, got.Equal(&want))
}
