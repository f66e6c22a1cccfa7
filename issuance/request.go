package issuance

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

// PrepareBlindSign builds a SignatureRequest for messages, the first k
// of which are hidden behind a Pedersen commitment and k ElGamal
// ciphertexts under gamma and the remaining len(messages)-k of which
// are sent in the clear.
//
// k > L is rejected explicitly here rather than left to an implicit
// consequence of the length check below, per the scheme's resolution
// of its own open question on this point.
func PrepareBlindSign(messages []*big.Int, k int, gamma pairing.G1, params *setup.Params, rng io.Reader) (*SignatureRequest, *Randomness, error) {
	if k > params.L || k < 0 {
		return nil, nil, fmt.Errorf("issuance: hidden count %d exceeds attribute count %d: %w", k, params.L, coconuterr.ErrShape)
	}
	if len(messages) != params.L {
		return nil, nil, fmt.Errorf("issuance: got %d messages, want %d: %w", len(messages), params.L, coconuterr.ErrShape)
	}

	r, err := pairing.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("issuance: sampling commitment randomness: %w", err)
	}

	commitment, err := computeCommitment(params, messages[:k], r)
	if err != nil {
		return nil, nil, err
	}

	h, err := SessionH(commitment)
	if err != nil {
		return nil, nil, err
	}

	ciphertexts := make([]Ciphertext, k)
	ks := make([]*big.Int, k)
	for i := 0; i < k; i++ {
		ki, err := pairing.RandomScalar(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("issuance: sampling ciphertext randomness %d: %w", i, err)
		}
		ks[i] = ki

		a := pairing.ScalarMulG1(params.G1, ki)
		b, err := pairing.ConstantTimeMultiScalarMulG1(
			[]pairing.G1{gamma, h},
			[]*big.Int{ki, messages[i]},
		)
		if err != nil {
			return nil, nil, fmt.Errorf("issuance: computing ciphertext %d: %w", i, err)
		}
		ciphertexts[i] = Ciphertext{A: a, B: b}
	}

	req := &SignatureRequest{
		KnownMessages: append([]*big.Int(nil), messages[k:]...),
		Commitment:    commitment,
		Ciphertexts:   ciphertexts,
	}
	rnd := &Randomness{R: r, K: ks}

	return req, rnd, nil
}

// computeCommitment computes g1*r + sum(H[i]*hiddenMessages[i]), the
// Pedersen commitment both PrepareBlindSign and SignatureRequestPoK.Init
// need to derive independently (the latter to recompute h, never to
// trust a caller-supplied commitment).
func computeCommitment(params *setup.Params, hiddenMessages []*big.Int, r *big.Int) (pairing.G1, error) {
	k := len(hiddenMessages)
	points := make([]pairing.G1, 0, k+1)
	scalars := make([]*big.Int, 0, k+1)
	points = append(points, params.H[:k]...)
	scalars = append(scalars, hiddenMessages...)
	points = append(points, params.G1)
	scalars = append(scalars, r)

	commitment, err := pairing.ConstantTimeMultiScalarMulG1(points, scalars)
	if err != nil {
		return pairing.G1{}, fmt.Errorf("issuance: computing commitment: %w", err)
	}
	return commitment, nil
}
