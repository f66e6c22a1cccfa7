// Package setup holds the shared public parameters and per-signer key
// material a coconut threshold-credential deployment is built on:
// Params (the generators every other package treats as fixed), Sigkey
// (one signer's secret share), and Verkey (that signer's public share,
// aggregable with shamir.LagrangeBasisAtZero into the scheme-wide
// verification key).
//
// Generating the Sigkey/Verkey shares themselves (the trusted-party or
// distributed key generation step) is explicitly out of scope for the
// protocol this package implements (spec treats it as an external
// oracle); setup/dealer.go provides a minimal in-process stand-in for
// that oracle so the rest of the module has something to test against,
// not a production DKG.
package setup
