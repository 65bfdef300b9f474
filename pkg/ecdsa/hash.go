package ecdsa

import (
	"crypto/sha256"
	"math/big"
)

// HashMessage hashes an arbitrary-length message into the 256-bit digest
// form consumed by Sign and Verify, using double SHA-256 in the Bitcoin
// convention. The digest is returned as a non-negative integer below 2²⁵⁶.
func HashMessage(msg []byte) *big.Int {
	first := sha256.Sum256(msg)
	second := sha256.Sum256(first[:])
	return new(big.Int).SetBytes(second[:])
}
