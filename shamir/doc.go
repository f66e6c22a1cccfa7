// Package shamir implements the polynomial arithmetic a (t,n) threshold
// scheme needs: sampling a degree-(t-1) polynomial over Fr, evaluating it
// at a signer index, and recombining t evaluations via the Lagrange
// basis at zero. Nothing here touches a pairing group; setup uses this
// package to derive signer shares and verkeys combine with it in the
// exponent, but the arithmetic itself is pure Fr.
package shamir
