// Package coconuterr holds the sentinel error values shared across the
// pairing, setup, issuance, and credential packages, mirroring
// the flat var-block-of-sentinels style of the teacher repo's
// bbs/constants.go.
//
// Per the scheme's error-handling design: shape errors below are
// programmer errors, returned as typed errors. Cryptographic mismatches
// (a NIZK equation or a pairing equation not holding) are adversarial
// and are never surfaced as errors; callers get a plain bool instead,
// so that which equation failed can't be learned from the error value
// that came back.
package coconuterr

import "errors"

var (
	// ErrShape is returned when input lengths disagree: a message vector
	// of the wrong size, a ciphertext count that doesn't match the hidden
	// count, or a response vector of unexpected length.
	ErrShape = errors.New("coconut: shape mismatch")

	// ErrThresholdNotMet is returned when fewer than t entries were
	// supplied to an aggregation routine.
	ErrThresholdNotMet = errors.New("coconut: fewer than the threshold number of entries supplied")

	// ErrDuplicateSignerID is returned when an aggregation input contains
	// the same signer id more than once.
	ErrDuplicateSignerID = errors.New("coconut: duplicate signer id")

	// ErrInvalidSignerID is returned when a signer id is zero, the
	// reserved evaluation point.
	ErrInvalidSignerID = errors.New("coconut: invalid signer id")

	// ErrRandomnessFailure is returned when the injected RNG fails.
	ErrRandomnessFailure = errors.New("coconut: randomness source failed")

	// ErrMismatchedSigma1 is returned when AggCred's inputs don't all
	// carry the same h = sigma_1, meaning they weren't all derived from
	// the same issuance session.
	ErrMismatchedSigma1 = errors.New("coconut: partial signatures disagree on sigma_1")
)
