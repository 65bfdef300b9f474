package ecdsa

import (
	"math/big"

	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// SharedSecret derives a Diffie-Hellman shared secret from the local private
// key and a remote public key: the x-coordinate of d*P as a fixed 32-byte
// big-endian value (RFC 5903 section 9 returns only x). Both sides of an
// exchange compute the same bytes.
//
// Hash the result before using it as a cryptographic key.
func SharedSecret(priv *PrivateKey, pub *PublicKey) []byte {
	e := new(big.Int).Mod(priv.D, secp256k1.Params().N)
	x, _, ok := pub.point.ScalarMult(e).Coordinates()
	if !ok {
		return nil
	}

	secret := make([]byte, 32)
	x.Value().FillBytes(secret)
	return secret
}
