// Package pairing adapts github.com/consensys/gnark-crypto's BLS12-381
// implementation to the handful of group operations the rest of this
// module needs: multi-scalar multiplication (both variable-time, for
// publicly-known exponents, and a constant-time path for
// secret-dependent ones), hash-to-curve, and a pairing/two-pairing
// evaluator for the verification equation.
//
// Nothing here is specific to any one protocol step; callers in
// shamir, setup, issuance, and credential all go through this package
// rather than touching gnark-crypto directly, so the curve choice and
// MSM strategy stay in one place.
package pairing
