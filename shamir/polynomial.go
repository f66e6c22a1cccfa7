package shamir

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vellum-crypto/coconut/pairing"
)

// Polynomial is a degree-(t-1) polynomial over Fr, stored as
// coefficients lowest-degree first: f(x) = coeffs[0] + coeffs[1]*x + ...
type Polynomial struct {
	coeffs []*big.Int
}

// NewPolynomial samples a uniform random polynomial of degree t-1, i.e.
// t coefficients, matching the teacher's GenerateThresholdKey coefficient
// sampling loop (bbs/keymanagement.go) generalized to an injected RNG.
func NewPolynomial(t int, rng io.Reader) (*Polynomial, error) {
	if t <= 0 {
		return nil, fmt.Errorf("shamir: threshold must be positive, got %d", t)
	}
	coeffs := make([]*big.Int, t)
	for i := 0; i < t; i++ {
		c, err := pairing.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("shamir: sampling coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// NewPolynomialWithSecret is NewPolynomial with the constant term fixed
// to secret, so the dealer controls f(0) while the remaining t-1
// coefficients are random, for sharing a chosen secret.
func NewPolynomialWithSecret(secret *big.Int, t int, rng io.Reader) (*Polynomial, error) {
	p, err := NewPolynomial(t, rng)
	if err != nil {
		return nil, err
	}
	p.coeffs[0] = new(big.Int).Mod(secret, pairing.Order)
	return p, nil
}

// Eval evaluates the polynomial at x via Horner's method.
func (p *Polynomial) Eval(x *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coeffs[i])
		result.Mod(result, pairing.Order)
	}
	return result
}

// Constant returns f(0), the secret the polynomial shares.
func (p *Polynomial) Constant() *big.Int {
	return new(big.Int).Set(p.coeffs[0])
}

// Degree returns the polynomial's degree, t-1.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}
