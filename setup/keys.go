package setup

import (
	"fmt"
	"math/big"

	"github.com/vellum-crypto/coconut/internal/coconuterr"
	"github.com/vellum-crypto/coconut/pairing"
	"github.com/vellum-crypto/coconut/shamir"
)

// Sigkey is one signer's secret key share: x plus one y_i per attribute
// slot. It is consumed only by credential.BlindSign and must never leave
// the signer's process.
type Sigkey struct {
	X *big.Int
	Y []*big.Int
}

// Zeroize overwrites the key material in place. Call once a signer is
// permanently retiring this share.
func (sk *Sigkey) Zeroize() {
	sk.X.SetInt64(0)
	for _, y := range sk.Y {
		y.SetInt64(0)
	}
}

// Verkey is the public counterpart of a Sigkey: X~ = g2*x and
// Y~_i = g2*y_i for every attribute slot.
type Verkey struct {
	Xt pairing.G2
	Yt []pairing.G2
}

// DerivePublic computes the Verkey matching sk under the shared Params.
func (sk *Sigkey) DerivePublic(params *Params) Verkey {
	yt := make([]pairing.G2, len(sk.Y))
	for i, y := range sk.Y {
		yt[i] = pairing.ScalarMulG2(params.G2, y)
	}
	return Verkey{
		Xt: pairing.ScalarMulG2(params.G2, sk.X),
		Yt: yt,
	}
}

// SignerVerkey pairs a signer id with the Verkey it produced, the input
// shape Aggregate expects.
type SignerVerkey struct {
	ID     uint32
	Verkey Verkey
}

// Aggregate combines t verification key shares into the scheme-wide
// verkey over the master secret, via Lagrange interpolation in the
// exponent. It takes the first t entries of keys (ignoring any beyond
// that; callers that want a specific subset should pass exactly that
// subset), requires every share to cover the same number of attribute
// slots L, and requires the signer ids to be distinct and nonzero.
//
// All inputs are public, so the combination uses the variable-time MSM
// path.
func Aggregate(t int, keys []SignerVerkey) (Verkey, error) {
	if len(keys) < t {
		return Verkey{}, coconuterr.ErrThresholdNotMet
	}
	keys = keys[:t]

	L := len(keys[0].Verkey.Yt)
	ids := make([]uint32, t)
	seen := make(map[uint32]bool, t)
	for i, k := range keys {
		if k.ID == 0 {
			return Verkey{}, coconuterr.ErrInvalidSignerID
		}
		if seen[k.ID] {
			return Verkey{}, coconuterr.ErrDuplicateSignerID
		}
		seen[k.ID] = true
		if len(k.Verkey.Yt) != L {
			return Verkey{}, fmt.Errorf("setup: verkey %d has %d attribute slots, want %d: %w", k.ID, len(k.Verkey.Yt), L, coconuterr.ErrShape)
		}
		ids[i] = k.ID
	}

	xtPoints := make([]pairing.G2, t)
	xtScalars := make([]*big.Int, t)
	ytPoints := make([][]pairing.G2, L)
	ytScalars := make([]*big.Int, t)
	for j := 0; j < L; j++ {
		ytPoints[j] = make([]pairing.G2, t)
	}

	for i, k := range keys {
		l := shamir.LagrangeBasisAtZero(ids, k.ID)
		xtPoints[i] = k.Verkey.Xt
		xtScalars[i] = l
		ytScalars[i] = l
		for j := 0; j < L; j++ {
			ytPoints[j][i] = k.Verkey.Yt[j]
		}
	}

	xt, err := pairing.MultiScalarMulG2(xtPoints, xtScalars)
	if err != nil {
		return Verkey{}, fmt.Errorf("setup: aggregating X~: %w", err)
	}

	yt := make([]pairing.G2, L)
	for j := 0; j < L; j++ {
		yj, err := pairing.MultiScalarMulG2(ytPoints[j], ytScalars)
		if err != nil {
			return Verkey{}, fmt.Errorf("setup: aggregating Y~[%d]: %w", j, err)
		}
		yt[j] = yj
	}

	return Verkey{Xt: xt, Yt: yt}, nil
}
