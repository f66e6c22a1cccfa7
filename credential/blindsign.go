package credential

import (
	"fmt"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/issuance"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

// BlindSign produces sk's partial signature over req. h is recomputed
// from req.Commitment rather than trusted from any field on req, per
// issuance.SessionH's contract, every party derives h independently.
//
// The caller is expected to have already verified req's accompanying
// SignatureRequestPoK via issuance.Verify; BlindSign itself does not
// re-check the proof, matching the teacher's Sign, which does not
// re-validate message well-formedness either.
func BlindSign(sk *setup.Sigkey, req *issuance.SignatureRequest) (*BlindSignature, error) {
	k := req.HiddenCount()
	L := len(sk.Y)
	if k > L {
		return nil, fmt.Errorf("credential: blind sign: k=%d exceeds L=%d: %w", k, L, coconuterr.ErrShape)
	}
	if len(req.KnownMessages) != L-k {
		return nil, fmt.Errorf("credential: blind sign: got %d known messages, want %d: %w", len(req.KnownMessages), L-k, coconuterr.ErrShape)
	}

	h, err := issuance.SessionH(req.Commitment)
	if err != nil {
		return nil, err
	}

	aPoints := make([]pairing.G1, k)
	bPoints := make([]pairing.G1, k+1)
	yHidden := make([]*big.Int, k)
	for i := 0; i < k; i++ {
		aPoints[i] = req.Ciphertexts[i].A
		bPoints[i] = req.Ciphertexts[i].B
		yHidden[i] = sk.Y[i]
	}
	bPoints[k] = h

	// s = x + sum_{j<L-k} y_{k+j} * knownMessages_j, folded into the h
	// term of c2 so the whole combination is one constant-time MSM. The
	// per-term product borrows its scratch value from the module-wide
	// pool rather than allocating one per known message.
	s := new(big.Int).Set(sk.X)
	term := pairing.ScratchScalars.Get()
	for j, m := range req.KnownMessages {
		term.Mul(sk.Y[k+j], m)
		s.Add(s, term)
	}
	pairing.ScratchScalars.Put(term)
	s.Mod(s, pairing.Order)

	c1, err := pairing.ConstantTimeMultiScalarMulG1(aPoints, yHidden)
	if err != nil {
		return nil, fmt.Errorf("credential: blind sign: computing c1: %w", err)
	}

	bScalars := append(append([]*big.Int(nil), yHidden...), s)
	c2, err := pairing.ConstantTimeMultiScalarMulG1(bPoints, bScalars)
	if err != nil {
		return nil, fmt.Errorf("credential: blind sign: computing c2: %w", err)
	}

	return &BlindSignature{H: h, C1: c1, C2: c2}, nil
}
