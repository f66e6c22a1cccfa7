package setup

import (
	"fmt"
	"strconv"

	"github.com/vellum-crypto/coconut/pairing"
)

// dstG1 and dstG2 are the RFC 9380 domain separation tags passed to
// gnark-crypto's HashToG1/HashToG2. Distinctness between the individual
// generators (g1 vs g2 vs each h_i) comes from varying the hashed
// message per §6 of the scheme, not from varying these tags; each
// group gets one fixed tag, as RFC 9380 expects.
const (
	dstG1 = "COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_"
	dstG2 = "COCONUT_BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

// Params holds the generators every signer and user in a deployment
// shares: g1 and g2, the base points of G1 and G2, and h, one
// message-specific G1 generator per attribute slot. All of it is
// derived deterministically from a caller-supplied label, so any two
// parties who agree on (label, L) agree on Params without exchanging
// anything.
type Params struct {
	G1 pairing.G1
	G2 pairing.G2
	H  []pairing.G1
	L  int
}

// NewParams derives Params for L attributes from label via hash-to-curve,
// using a distinct message per generator (label+" : g1", label+" : g2",
// label+" : y"+i) so that h_i is independent of g1 and of every other
// h_j, the only invariant §3 asks this constructor to guarantee.
func NewParams(L int, label string) (*Params, error) {
	if L < 0 {
		return nil, fmt.Errorf("setup: L must be non-negative, got %d", L)
	}

	g1, err := pairing.HashToG1([]byte(label+" : g1"), []byte(dstG1))
	if err != nil {
		return nil, fmt.Errorf("setup: deriving g1: %w", err)
	}
	g2, err := pairing.HashToG2([]byte(label+" : g2"), []byte(dstG2))
	if err != nil {
		return nil, fmt.Errorf("setup: deriving g2: %w", err)
	}

	h := make([]pairing.G1, L)
	for i := 0; i < L; i++ {
		msg := label + " : y" + strconv.Itoa(i)
		hi, err := pairing.HashToG1([]byte(msg), []byte(dstG1))
		if err != nil {
			return nil, fmt.Errorf("setup: deriving h[%d]: %w", i, err)
		}
		h[i] = hi
	}

	return &Params{G1: g1, G2: g2, H: h, L: L}, nil
}
