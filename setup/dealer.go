package setup

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vellum-crypto/coconut/shamir"
)

// SignerSigkey pairs a signer id with the Sigkey share it was dealt.
type SignerSigkey struct {
	ID     uint32
	Sigkey Sigkey
}

// GenerateShares is the trusted-dealer oracle the protocol treats as an
// external collaborator (spec §1): it samples a master (x, y_1..y_L)
// pair and Shamir-shares each coordinate independently across n signers
// with threshold t, returning one SignerSigkey per signer, with ids 1..n.
// The matching Verkey of each share comes from Sigkey.DerivePublic.
//
// This is a convenience for tests and local experimentation, not a
// distributed key generation protocol; a real deployment would run an
// actual (verifiable) DKG and never have any single party see the
// master secret this function constructs in memory, adapted in shape
// from the teacher's GenerateThresholdKey (bbs/keymanagement.go), which
// has the same "one process deals all shares" structure.
func GenerateShares(t, n int, params *Params, rng io.Reader) ([]SignerSigkey, error) {
	if t <= 0 || n <= 0 || t > n {
		return nil, fmt.Errorf("setup: invalid threshold parameters t=%d, n=%d", t, n)
	}

	xPoly, err := shamir.NewPolynomial(t, rng)
	if err != nil {
		return nil, fmt.Errorf("setup: sampling x polynomial: %w", err)
	}

	yPolys := make([]*shamir.Polynomial, params.L)
	for j := 0; j < params.L; j++ {
		p, err := shamir.NewPolynomial(t, rng)
		if err != nil {
			return nil, fmt.Errorf("setup: sampling y[%d] polynomial: %w", j, err)
		}
		yPolys[j] = p
	}

	shares := make([]SignerSigkey, n)
	for i := 1; i <= n; i++ {
		idx := big.NewInt(int64(i))
		y := make([]*big.Int, params.L)
		for j := 0; j < params.L; j++ {
			y[j] = yPolys[j].Eval(idx)
		}
		shares[i-1] = SignerSigkey{
			ID: uint32(i),
			Sigkey: Sigkey{
				X: xPoly.Eval(idx),
				Y: y,
			},
		}
	}

	return shares, nil
}
