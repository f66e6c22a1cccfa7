package issuance

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/setup"
)

// Announcement is the prover's first message: one commitment per secret
// being proved, built from fresh blinding factors. It is sent to the
// verifier (or absorbed into a Fiat-Shamir hash) before the challenge
// is known.
type Announcement struct {
	Td pairing.G1
	Tc pairing.G1
	Ta []pairing.G1
	Tb []pairing.G1
}

// Bytes serializes the announcement in a fixed order for external
// challenge derivation, e.g. via pairing.HashToScalar. The proof is
// deliberately challenge-agnostic: the caller decides what else (a
// session id, a set of known messages) feeds the same Fiat-Shamir hash,
// which is what lets this proof compose with others under one challenge.
func (a *Announcement) Bytes() []byte {
	var out []byte
	tdBytes := a.Td.Marshal()
	tcBytes := a.Tc.Marshal()
	out = append(out, tdBytes...)
	out = append(out, tcBytes...)
	for i := range a.Ta {
		taBytes := a.Ta[i].Marshal()
		tbBytes := a.Tb[i].Marshal()
		out = append(out, taBytes...)
		out = append(out, tbBytes...)
	}
	return out
}

// Proof is the prover's second message: one response per secret,
// s = rho + c*secret mod Order.
type Proof struct {
	Sd *big.Int
	Sr *big.Int
	Sm []*big.Int
	Sk []*big.Int
}

// SignatureRequestPoK drives the two-move Schnorr composition proving
// that a SignatureRequest's commitment and every ciphertext open to the
// same k hidden attribute values, and that the request's ElGamal key
// gamma is well-formed (gamma = g1*d for a known d). The three proofs
// share their m_i responses, which is what links them: a cheating
// prover who opens the commitment to one value and a ciphertext to
// another cannot produce a single Sm[i] that satisfies both verification
// equations.
//
// Use: Init, then (after the caller derives a challenge from the
// Announcement) GenProof. GenProof consumes and destroys the blinding
// factors sampled by Init; a SignatureRequestPoK must not be reused
// across two GenProof calls.
type SignatureRequestPoK struct {
	k int

	hiddenMessages []*big.Int
	d              *big.Int
	rnd            *Randomness

	rhoD *big.Int
	rhoR *big.Int
	beta []*big.Int
	rhoK []*big.Int
}

// Init samples fresh blinding factors and returns the resulting
// Announcement. hiddenMessages, d, and rnd are retained (not copied) for
// the subsequent GenProof call; the caller must not mutate them in the
// meantime.
func Init(hiddenMessages []*big.Int, d *big.Int, rnd *Randomness, params *setup.Params, rng io.Reader) (*SignatureRequestPoK, *Announcement, error) {
	k := len(hiddenMessages)
	if len(rnd.K) != k {
		return nil, nil, fmt.Errorf("issuance: pok init: %d hidden messages but %d ciphertext randomness values: %w", k, len(rnd.K), coconuterr.ErrShape)
	}

	gamma := pairing.ScalarMulG1(params.G1, d)
	commitPoints := make([]pairing.G1, 0, k+1)
	commitPoints = append(commitPoints, params.H[:k]...)
	commitPoints = append(commitPoints, params.G1)
	commitScalars := func(vals []*big.Int, extra *big.Int) []*big.Int {
		out := make([]*big.Int, 0, k+1)
		out = append(out, vals...)
		out = append(out, extra)
		return out
	}

	rhoD, err := pairing.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("issuance: pok init: sampling rho_d: %w", err)
	}
	rhoR, err := pairing.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("issuance: pok init: sampling rho_r: %w", err)
	}
	beta := make([]*big.Int, k)
	rhoK := make([]*big.Int, k)
	for i := 0; i < k; i++ {
		b, err := pairing.RandomScalar(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("issuance: pok init: sampling beta[%d]: %w", i, err)
		}
		beta[i] = b
		rk, err := pairing.RandomScalar(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("issuance: pok init: sampling rho_k[%d]: %w", i, err)
		}
		rhoK[i] = rk
	}

	commitment, err := computeCommitment(params, hiddenMessages, rnd.R)
	if err != nil {
		return nil, nil, err
	}
	h, err := SessionH(commitment)
	if err != nil {
		return nil, nil, err
	}

	td := pairing.ScalarMulG1(params.G1, rhoD)
	tc, err := pairing.ConstantTimeMultiScalarMulG1(commitPoints, commitScalars(beta, rhoR))
	if err != nil {
		return nil, nil, fmt.Errorf("issuance: pok init: computing Tc: %w", err)
	}

	ta := make([]pairing.G1, k)
	tb := make([]pairing.G1, k)
	for i := 0; i < k; i++ {
		ta[i] = pairing.ScalarMulG1(params.G1, rhoK[i])
		bi, err := pairing.ConstantTimeMultiScalarMulG1(
			[]pairing.G1{gamma, h},
			[]*big.Int{rhoK[i], beta[i]},
		)
		if err != nil {
			return nil, nil, fmt.Errorf("issuance: pok init: computing Tb[%d]: %w", i, err)
		}
		tb[i] = bi
	}

	pok := &SignatureRequestPoK{
		k:              k,
		hiddenMessages: hiddenMessages,
		d:              d,
		rnd:            rnd,
		rhoD:           rhoD,
		rhoR:           rhoR,
		beta:           beta,
		rhoK:           rhoK,
	}
	ann := &Announcement{Td: td, Tc: tc, Ta: ta, Tb: tb}
	return pok, ann, nil
}

// GenProof computes the Schnorr responses for challenge c, then destroys
// the blinding factors sampled by Init and zeroizes the request
// Randomness passed to Init. It must be called exactly once per
// SignatureRequestPoK.
func (p *SignatureRequestPoK) GenProof(c *big.Int) *Proof {
	sd := pairing.MulAddMod(p.rhoD, c, p.d)
	sr := pairing.MulAddMod(p.rhoR, c, p.rnd.R)

	sm := make([]*big.Int, p.k)
	sk := make([]*big.Int, p.k)
	for i := 0; i < p.k; i++ {
		sm[i] = pairing.MulAddMod(p.beta[i], c, p.hiddenMessages[i])
		sk[i] = pairing.MulAddMod(p.rhoK[i], c, p.rnd.K[i])
	}

	p.rhoD.SetInt64(0)
	p.rhoR.SetInt64(0)
	for i := range p.beta {
		p.beta[i].SetInt64(0)
		p.rhoK[i].SetInt64(0)
	}
	p.rnd.Zeroize()

	return &Proof{Sd: sd, Sr: sr, Sm: sm, Sk: sk}
}

// Verify checks that ann and proof are consistent with req and gamma
// under challenge c: that every Schnorr equation holds, and that the
// message response shared between the commitment proof and each
// ciphertext proof is literally the same value. A failing proof is a
// cryptographic/adversarial outcome, not a programmer error: it is
// reported as false, never as a distinguishable error, so that callers
// cannot use error type to learn which equation failed. Malformed input
// shapes (length mismatches) are still reported as errors, since they
// indicate a caller bug rather than an adversarial proof.
func Verify(req *SignatureRequest, gamma pairing.G1, ann *Announcement, proof *Proof, c *big.Int, params *setup.Params) (bool, error) {
	k := req.HiddenCount()
	if len(ann.Ta) != k || len(ann.Tb) != k || len(proof.Sm) != k || len(proof.Sk) != k {
		return false, fmt.Errorf("issuance: pok verify: length mismatch for k=%d: %w", k, coconuterr.ErrShape)
	}
	if k > params.L {
		return false, fmt.Errorf("issuance: pok verify: k=%d exceeds L=%d: %w", k, params.L, coconuterr.ErrShape)
	}

	h, err := SessionH(req.Commitment)
	if err != nil {
		return false, err
	}

	// g1*Sd - gamma*c =? Td
	lhsD := pairing.AddG1(pairing.ScalarMulG1(params.G1, proof.Sd), pairing.NegG1(pairing.ScalarMulG1(gamma, c)))
	if !lhsD.Equal(&ann.Td) {
		return false, nil
	}

	// (sum h_i*Sm_i) + g1*Sr - commitment*c =? Tc
	commitPoints := make([]pairing.G1, 0, k+1)
	commitPoints = append(commitPoints, params.H[:k]...)
	commitPoints = append(commitPoints, params.G1)
	commitScalars := make([]*big.Int, 0, k+1)
	commitScalars = append(commitScalars, proof.Sm...)
	commitScalars = append(commitScalars, proof.Sr)
	lhsC, err := pairing.MultiScalarMulG1(commitPoints, commitScalars)
	if err != nil {
		return false, fmt.Errorf("issuance: pok verify: computing Tc check: %w", err)
	}
	lhsC = pairing.AddG1(lhsC, pairing.NegG1(pairing.ScalarMulG1(req.Commitment, c)))
	if !lhsC.Equal(&ann.Tc) {
		return false, nil
	}

	for i := 0; i < k; i++ {
		// g1*Sk_i - a_i*c =? Ta_i
		lhsA := pairing.AddG1(pairing.ScalarMulG1(params.G1, proof.Sk[i]), pairing.NegG1(pairing.ScalarMulG1(req.Ciphertexts[i].A, c)))
		if !lhsA.Equal(&ann.Ta[i]) {
			return false, nil
		}

		// gamma*Sk_i + h*Sm_i - b_i*c =? Tb_i
		lhsB, err := pairing.MultiScalarMulG1([]pairing.G1{gamma, h}, []*big.Int{proof.Sk[i], proof.Sm[i]})
		if err != nil {
			return false, fmt.Errorf("issuance: pok verify: computing Tb[%d] check: %w", i, err)
		}
		lhsB = pairing.AddG1(lhsB, pairing.NegG1(pairing.ScalarMulG1(req.Ciphertexts[i].B, c)))
		if !lhsB.Equal(&ann.Tb[i]) {
			return false, nil
		}
	}

	return true, nil
}
