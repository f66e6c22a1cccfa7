package credential

import (
	"math/big"

	"github.com/vellum-crypto/coconut/pairing"
)

// Unblind removes the ElGamal blinding from bsig using the requester's
// secret d: sigma2 = c2 - c1*d, sigma1 = h. d is the same secret whose
// knowledge the SignatureRequestPoK proved, tying this step back to the
// original request.
func Unblind(bsig *BlindSignature, d *big.Int) *Signature {
	sigma2 := pairing.AddG1(bsig.C2, pairing.NegG1(pairing.ScalarMulG1(bsig.C1, d)))
	return &Signature{Sigma1: bsig.H, Sigma2: sigma2}
}
