package pairing

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/vellum-crypto/coconut/internal/coconuterr"
)

// wideBytes is the number of random bytes drawn per scalar: Order is 255
// bits, and 64 extra bits of input keeps the bias from reducing mod Order
// below 2^-64, the same margin the teacher's ConstantTimeRandom targets.
const wideBytes = (255 + 64 + 7) / 8

// RandomScalar draws a uniform element of Fr from rng. Unlike the
// teacher's ConstantTimeRandom (bbs/utils.go), which loops with rejection
// sampling and therefore branches a variable number of times depending on
// the sampled value, this reduces a single over-wide draw through
// saferith's constant-time Nat arithmetic, so the number of operations
// performed never depends on the sampled value.
func RandomScalar(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		return nil, fmt.Errorf("pairing: nil randomness source: %w", coconuterr.ErrRandomnessFailure)
	}

	buf := make([]byte, wideBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("pairing: reading randomness: %w: %w", coconuterr.ErrRandomnessFailure, err)
	}

	modulus := saferith.ModulusFromBytes(orderBytes())
	nat := new(saferith.Nat).SetBytes(buf)
	nat.Mod(nat, modulus)

	return nat.Big(), nil
}

// orderBytes returns Order's big-endian byte representation.
func orderBytes() []byte {
	return Order.Bytes()
}
