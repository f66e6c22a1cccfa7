// Package issuance builds the blind signature request a user sends to
// each signer during credential issuance, and the non-interactive
// zero-knowledge proof that binds it together: a Pedersen commitment to
// the hidden attributes, one ElGamal ciphertext per hidden attribute
// encrypted under the user's ephemeral key, and a composite Schnorr
// proof, under a single Fiat-Shamir challenge, that the commitment and
// every ciphertext open to the same attribute values.
//
// The three-part shape mirrors the teacher's selective-disclosure proof
// in bbs/proof.go (commit blinding factors, derive a challenge from
// their hash, respond with blinding+challenge*secret, let the verifier
// recompute the commitments from the claimed responses) generalized
// from BBS+'s single signature-opening proof to three linked Schnorr
// proofs sharing one challenge, per the scheme's §4.4.
package issuance
