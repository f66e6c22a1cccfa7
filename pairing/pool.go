package pairing

import (
	"math/big"
	"sync"
)

// ScalarPool recycles *big.Int scratch values for hot paths that build
// many short-lived scalars per call: the NIZK response computation in
// GenProof (via MulAddMod) and BlindSign's known-message accumulation.
// Adapted from the teacher's bbs/pool.go ObjectPool, narrowed to the one
// type this module's hot paths actually churn through.
type ScalarPool struct {
	pool sync.Pool
}

// NewScalarPool creates an empty pool.
func NewScalarPool() *ScalarPool {
	return &ScalarPool{
		pool: sync.Pool{
			New: func() interface{} { return new(big.Int) },
		},
	}
}

// Get returns a scratch *big.Int, its value unspecified.
func (p *ScalarPool) Get() *big.Int {
	return p.pool.Get().(*big.Int)
}

// Put returns s to the pool after zeroing it, so a released scratch
// value never leaks a previous secret to its next borrower.
func (p *ScalarPool) Put(s *big.Int) {
	s.SetInt64(0)
	p.pool.Put(s)
}

// ScratchScalars is the module-wide scratch pool: the NIZK response
// formula (MulAddMod) and the credential package's per-signer scalar
// accumulation both borrow from it instead of allocating a fresh
// *big.Int for every intermediate product.
var ScratchScalars = NewScalarPool()

// MulAddMod computes (rho + c*secret) mod Order, the Schnorr response
// formula every proof in this module computes once per blinded scalar.
// The intermediate product is a pool-borrowed scratch value rather than
// a fresh allocation.
func MulAddMod(rho, c, secret *big.Int) *big.Int {
	tmp := ScratchScalars.Get()
	defer ScratchScalars.Put(tmp)

	tmp.Mul(c, secret)
	out := new(big.Int).Add(tmp, rho)
	return out.Mod(out, Order)
}
