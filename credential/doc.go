// Package credential implements the signer and aggregator halves of
// issuance: producing a blind partial signature over a SignatureRequest,
// unblinding it against the requester's ElGamal secret, combining t
// partial signatures into one threshold-issued signature via Lagrange
// interpolation in the exponent, and verifying a signature against the
// full message vector and an aggregated Verkey.
//
// The signing and verification equations mirror the teacher's own
// Sign/Verify in bbs/bbs.go, generalized from a single known message
// vector to a mix of disclosed messages and values hidden behind the
// commitment and ciphertexts issuance builds.
package credential
