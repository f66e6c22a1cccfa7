package pairing

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/zeebo/blake3"
)

// HashToG1 maps message under the RFC 9380 XMD:SHA-256_SSWU_RO_ suite
// gnark-crypto implements for BLS12-381, using dst as the domain
// separation tag. This is the component-A "H: bytes -> G1" the rest of
// the module is built on.
func HashToG1(message, dst []byte) (G1, error) {
	p, err := bls12381.HashToG1(message, dst)
	if err != nil {
		return G1{}, fmt.Errorf("pairing: hash to G1: %w", err)
	}
	return p, nil
}

// HashToG2 is the G2 analogue of HashToG1, used to derive the shared
// generator g2.
func HashToG2(message, dst []byte) (G2, error) {
	p, err := bls12381.HashToG2(message, dst)
	if err != nil {
		return G2{}, fmt.Errorf("pairing: hash to G2: %w", err)
	}
	return p, nil
}

// HashToScalar derives an Fr element from arbitrary bytes using blake3 as
// a 512-bit-output XOF, then reducing mod Order. It plays no part in the
// per-session h point, which issuance.SessionH derives with HashToG1
// alone; this helper serves the Fiat-Shamir challenge, which must land
// in Fr directly rather than on the curve.
func HashToScalar(parts ...[]byte) *big.Int {
	h := blake3.New()
	for _, p := range parts {
		// length-prefix each part so a hash of ["ab","c"] cannot collide
		// with a hash of ["a","bc"].
		var lenBuf [8]byte
		n := len(p)
		for i := 0; i < 8; i++ {
			lenBuf[i] = byte(n >> (8 * i))
		}
		h.Write(lenBuf[:])
		h.Write(p)
	}
	// Pull 64 bytes from blake3's XOF so reduction mod Order has
	// negligible bias, rather than truncating to the 32-byte Sum.
	wide := make([]byte, 64)
	_, _ = h.Digest().Read(wide)
	s := new(big.Int).SetBytes(wide)
	return s.Mod(s, Order)
}
