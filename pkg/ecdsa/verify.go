package ecdsa

import (
	"crypto/sha256"
	"math/big"

	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// Verify reports whether sig is a valid signature over the digest z under
// the public key pub. It never panics or returns an error on adversarial
// input: any malformed signature or mismatched digest simply yields false.
// (Off-curve public keys cannot reach here; they are rejected when the
// PublicKey is constructed.)
func Verify(pub *PublicKey, z *big.Int, sig *Signature) bool {
	if pub == nil || z == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	// s must be invertible mod n; s ≡ 0 never verifies.
	sInv, ok := secp256k1.ScalarInt(sig.S).Inverse()
	if !ok {
		return false
	}

	u := secp256k1.ScalarInt(z).Mul(sInv)
	v := secp256k1.ScalarInt(sig.R).Mul(sInv)

	// R' = u*G + v*P recovers the signer's nonce point; the signature is
	// valid iff its x-coordinate equals r as an integer.
	rp := secp256k1.Generator().ScalarMult(u.Value()).Add(pub.point.ScalarMult(v.Value()))
	x, _, ok := rp.Coordinates()
	if !ok {
		return false
	}
	return x.Value().Cmp(sig.R) == 0
}

// VerifyDigest is Verify for a digest in its fixed 32-byte big-endian form.
// A digest of any other length is simply an invalid signature input and
// yields false.
func VerifyDigest(pub *PublicKey, digest []byte, sig *Signature) bool {
	if len(digest) != sha256.Size {
		return false
	}
	return Verify(pub, new(big.Int).SetBytes(digest), sig)
}
