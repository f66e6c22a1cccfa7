package issuance

import (
	"fmt"

	"github.com/vellum-crypto/coconut/pairing"
)

// sessionHDST is the domain separation tag for the per-session h point.
const sessionHDST = "COCONUT_SESSION_H_XMD:SHA-256_SSWU_RO_"

// SessionH derives h = H(commitment), the per-session G1 point every
// ciphertext is encrypted against and that ultimately becomes sigma_1 of
// the issued signature. It is recomputed (never taken off the wire)
// by the request builder, the PoK verifier, and BlindSign alike, per
// spec §4.5 ("h ... recomputed; never taken from the user").
func SessionH(commitment pairing.G1) (pairing.G1, error) {
	h, err := pairing.HashToG1(commitment.Marshal(), []byte(sessionHDST))
	if err != nil {
		return pairing.G1{}, fmt.Errorf("issuance: deriving session h: %w", err)
	}
	return h, nil
}
