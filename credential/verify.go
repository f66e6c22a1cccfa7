package credential

import (
	"fmt"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

// Verify checks sig against the full message vector (every attribute,
// hidden or disclosed, in its original slot order) and an aggregated
// Verkey: e(sigma1, X~ + sum(Y~_i * m_i)) * e(-sigma2, g2) == 1.
//
// A signature whose sigma1 is the identity element is rejected, since
// the verification equation is trivially satisfied by sigma1 = sigma2 = 1
// regardless of the message vector. That rejection is
// reported the same way as an ordinary equation failure (a false
// return, never a distinguishable error), so that an adversary cannot
// use error type as a side channel to learn which check failed.
func Verify(messages []*big.Int, sig *Signature, vk *setup.Verkey, params *setup.Params) (bool, error) {
	if len(messages) != len(vk.Yt) {
		return false, fmt.Errorf("credential: verify: got %d messages, want %d: %w", len(messages), len(vk.Yt), coconuterr.ErrShape)
	}

	if pairing.IsIdentityG1(sig.Sigma1) {
		return false, nil
	}

	ym, err := pairing.MultiScalarMulG2(vk.Yt, messages)
	if err != nil {
		return false, fmt.Errorf("credential: verify: combining Y~: %w", err)
	}
	yTilde := pairing.AddG2(vk.Xt, ym)

	gt, err := pairing.MultiPair(sig.Sigma1, yTilde, pairing.NegG1(sig.Sigma2), params.G2)
	if err != nil {
		return false, fmt.Errorf("credential: verify: pairing check: %w", err)
	}

	return pairing.IsIdentityGT(gt), nil
}
