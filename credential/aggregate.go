package credential

import (
	"fmt"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/shamir"
)

// AggCred combines t unblinded partial signatures into one signature
// over the scheme-wide aggregated key, via Lagrange interpolation in
// the exponent; no secret key material is ever reconstructed.
//
// Every share must carry the same sigma1 (= h, the per-session point
// every signer independently recomputed from the same commitment); a
// mismatch means the shares came from different issuance sessions and
// cannot be combined; aggregation rejects that outright rather than
// silently picking one, resolving the scheme's second open question.
// Signer ids must be nonzero and distinct, matching setup.Aggregate's
// validation for verification key shares.
//
// All inputs here are public (already-unblinded signature shares), so
// the combination uses the variable-time MSM path.
func AggCred(t int, sigs []SignerSignature) (*Signature, error) {
	if len(sigs) < t {
		return nil, coconuterr.ErrThresholdNotMet
	}
	sigs = sigs[:t]

	sigma1 := sigs[0].Signature.Sigma1
	ids := make([]uint32, t)
	seen := make(map[uint32]bool, t)
	for i, s := range sigs {
		if s.ID == 0 {
			return nil, coconuterr.ErrInvalidSignerID
		}
		if seen[s.ID] {
			return nil, coconuterr.ErrDuplicateSignerID
		}
		seen[s.ID] = true
		if !s.Signature.Sigma1.Equal(&sigma1) {
			return nil, fmt.Errorf("credential: aggregating: signer %d has a different sigma1: %w", s.ID, coconuterr.ErrMismatchedSigma1)
		}
		ids[i] = s.ID
	}

	points := make([]pairing.G1, t)
	scalars := make([]*big.Int, t)
	for i, s := range sigs {
		l := shamir.LagrangeBasisAtZero(ids, s.ID)
		points[i] = s.Signature.Sigma2
		scalars[i] = l
	}

	sigma2, err := pairing.MultiScalarMulG1(points, scalars)
	if err != nil {
		return nil, fmt.Errorf("credential: aggregating sigma2: %w", err)
	}

	return &Signature{Sigma1: sigma1, Sigma2: sigma2}, nil
}
