package credential

import "github.com/vellum-crypto/coconut/pairing"

// BlindSignature is one signer's partial signature over a
// SignatureRequest, still blinded by the requester's ElGamal
// randomness. Unblind removes that blinding.
type BlindSignature struct {
	H  pairing.G1
	C1 pairing.G1
	C2 pairing.G1
}

// Signature is a signature over a full message vector, whether it came
// from one signer's own key (after Unblind) or from AggCred combining t
// signers' shares.
type Signature struct {
	Sigma1 pairing.G1
	Sigma2 pairing.G1
}

// SignerSignature pairs a signer id with the Signature it produced, the
// input shape AggCred expects, the credential-package analogue of
// setup.SignerVerkey.
type SignerSignature struct {
	ID        uint32
	Signature Signature
}
