package issuance

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

// ElGamalKeyPair is the user's ephemeral encryption key for one
// issuance session: d in Fr, gamma = g1*d.
type ElGamalKeyPair struct {
	D     *big.Int
	Gamma pairing.G1
}

// NewElGamalKeyPair samples a fresh ElGamal keypair under params.
func NewElGamalKeyPair(params *setup.Params, rng io.Reader) (*ElGamalKeyPair, error) {
	d, err := pairing.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("issuance: sampling ElGamal secret: %w", err)
	}
	return &ElGamalKeyPair{
		D:     d,
		Gamma: pairing.ScalarMulG1(params.G1, d),
	}, nil
}

// Zeroize destroys d. Call once every partial signature built against
// this session has been unblinded (spec §3: "The ElGamal secret is
// retained until all partial signatures have been unblinded").
func (kp *ElGamalKeyPair) Zeroize() {
	kp.D.SetInt64(0)
}

// Ciphertext is one ElGamal-encrypted hidden attribute:
// (a,b) = (g1*k, gamma*k + h*m).
type Ciphertext struct {
	A pairing.G1
	B pairing.G1
}

// SignatureRequest is what a user sends to each signer: the attributes
// sent in the clear, a Pedersen commitment covering the hidden ones, and
// one ciphertext per hidden attribute.
type SignatureRequest struct {
	KnownMessages []*big.Int
	Commitment    pairing.G1
	Ciphertexts   []Ciphertext
}

// HiddenCount reports k, the number of hidden attributes.
func (r *SignatureRequest) HiddenCount() int {
	return len(r.Ciphertexts)
}

// Randomness is the private vector [r, k_0, ..., k_{k-1}] a
// PrepareBlindSign call returns alongside the request. It must be
// retained exactly until SignatureRequestPoK.GenProof consumes it
// (spec §4.6), then discarded; Zeroize does that.
type Randomness struct {
	R *big.Int
	K []*big.Int
}

// Zeroize destroys the retained randomness.
func (rnd *Randomness) Zeroize() {
	rnd.R.SetInt64(0)
	for _, k := range rnd.K {
		k.SetInt64(0)
	}
}
