package arith

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandScalar returns a uniform random integer in [1, n-1] read from rand.
// Nonces and private keys are sampled through here; zero is excluded because
// it collapses the corresponding point to the identity.
func RandScalar(rand io.Reader, n *big.Int) (*big.Int, error) {
	if n.Cmp(two) < 0 {
		return nil, fmt.Errorf("arith: order %v leaves no valid scalars", n)
	}
	k, err := crand.Int(rand, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, fmt.Errorf("arith: sample scalar: %w", err)
	}
	return k.Add(k, one), nil
}
