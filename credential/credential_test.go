package credential

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellum-crypto/coconut/issuance"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

func randomMessages(t *testing.T, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		m, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		out[i] = m
	}
	return out
}

// issue runs a full threshold issuance with n signers, a threshold of
// thresh, and k of L attributes hidden, returning the aggregated
// signature, the aggregated Verkey, and the full message vector it
// should verify against.
func issue(t *testing.T, L, thresh, n, k int) (*Signature, *setup.Verkey, []*big.Int) {
	params, err := setup.NewParams(L, "credential-test")
	require.NoError(t, err)

	shares, err := setup.GenerateShares(thresh, n, params, rand.Reader)
	require.NoError(t, err)

	messages := randomMessages(t, L)

	kp, err := issuance.NewElGamalKeyPair(params, rand.Reader)
	require.NoError(t, err)

	req, rnd, err := issuance.PrepareBlindSign(messages, k, kp.Gamma, params, rand.Reader)
	require.NoError(t, err)

	pok, ann, err := issuance.Init(messages[:k], kp.D, rnd, params, rand.Reader)
	require.NoError(t, err)
	c, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	proof := pok.GenProof(c)

	ok, err := issuance.Verify(req, kp.Gamma, ann, proof, c, params)
	require.NoError(t, err)
	require.True(t, ok)

	signerSigs := make([]SignerSignature, thresh)
	verkeys := make([]setup.SignerVerkey, thresh)
	for i := 0; i < thresh; i++ {
		share := shares[i]
		bsig, err := BlindSign(&share.Sigkey, req)
		require.NoError(t, err)
		sig := Unblind(bsig, kp.D)
		signerSigs[i] = SignerSignature{ID: share.ID, Signature: *sig}
		verkeys[i] = setup.SignerVerkey{ID: share.ID, Verkey: share.Sigkey.DerivePublic(params)}
	}

	agg, err := AggCred(thresh, signerSigs)
	require.NoError(t, err)

	vk, err := setup.Aggregate(thresh, verkeys)
	require.NoError(t, err)

	return agg, &vk, messages
}

// TestEndToEndVerifies is scenario S2: an honestly run threshold
// issuance with a mix of hidden and disclosed attributes verifies.
func TestEndToEndVerifies(t *testing.T) {
	const L, thresh, n, k = 5, 3, 5, 3
	agg, vk, messages := issue(t, L, thresh, n, k)

	ok, err := Verify(messages, agg, vk, mustParams(t, L))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestEndToEndAllDisclosed covers k=0: no hidden attributes at all.
func TestEndToEndAllDisclosed(t *testing.T) {
	const L, thresh, n, k = 3, 2, 4, 0
	agg, vk, messages := issue(t, L, thresh, n, k)

	ok, err := Verify(messages, agg, vk, mustParams(t, L))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestEndToEndAllHidden covers k=L: every attribute hidden.
func TestEndToEndAllHidden(t *testing.T) {
	const L, thresh, n, k = 3, 2, 4, 3
	agg, vk, messages := issue(t, L, thresh, n, k)

	ok, err := Verify(messages, agg, vk, mustParams(t, L))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerifyRejectsWrongMessage: a single altered disclosed message
// must fail verification.
func TestVerifyRejectsWrongMessage(t *testing.T) {
	const L, thresh, n, k = 4, 3, 5, 1
	agg, vk, messages := issue(t, L, thresh, n, k)

	tampered := append([]*big.Int(nil), messages...)
	tampered[len(tampered)-1] = new(big.Int).Add(tampered[len(tampered)-1], big.NewInt(1))

	ok, err := Verify(tampered, agg, vk, mustParams(t, L))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestVerifyRejectsIdentitySigma1 is the identity-element rejection
// path: it must come back as ok=false, not an error.
func TestVerifyRejectsIdentitySigma1(t *testing.T) {
	const L = 3
	agg, vk, messages := issue(t, L, 2, 3, 1)
	agg.Sigma1 = pairing.IdentityG1()

	ok, err := Verify(messages, agg, vk, mustParams(t, L))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestAggCredRejectsMismatchedSigma1 exercises the second open question's
// resolution: shares from different issuance sessions must not combine.
func TestAggCredRejectsMismatchedSigma1(t *testing.T) {
	params, err := setup.NewParams(2, "mismatch-test")
	require.NoError(t, err)
	shares, err := setup.GenerateShares(2, 3, params, rand.Reader)
	require.NoError(t, err)

	messages := randomMessages(t, 2)
	kp, err := issuance.NewElGamalKeyPair(params, rand.Reader)
	require.NoError(t, err)

	req1, _, err := issuance.PrepareBlindSign(messages, 0, kp.Gamma, params, rand.Reader)
	require.NoError(t, err)
	req2, _, err := issuance.PrepareBlindSign(messages, 0, kp.Gamma, params, rand.Reader)
	require.NoError(t, err)

	bsig1, err := BlindSign(&shares[0].Sigkey, req1)
	require.NoError(t, err)
	bsig2, err := BlindSign(&shares[1].Sigkey, req2)
	require.NoError(t, err)

	sig1 := Unblind(bsig1, kp.D)
	sig2 := Unblind(bsig2, kp.D)

	_, err = AggCred(2, []SignerSignature{
		{ID: shares[0].ID, Signature: *sig1},
		{ID: shares[1].ID, Signature: *sig2},
	})
	require.Error(t, err)
}

func TestAggCredThresholdNotMet(t *testing.T) {
	_, err := AggCred(3, []SignerSignature{
		{ID: 1, Signature: Signature{}},
		{ID: 2, Signature: Signature{}},
	})
	require.Error(t, err)
}

func mustParams(t *testing.T, L int) *setup.Params {
	t.Helper()
	params, err := setup.NewParams(L, "credential-test")
	require.NoError(t, err)
	return params
}
