package ecdsa

import (
	crand "crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"github.com/curvebook/go-ecc/internal/arith"
	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// Signature is an ECDSA signature. R is the x-coordinate of the nonce point
// k*G as an integer in [0, p); S is the scalar (z + r*e)/k modulo the group
// order n. Both fields are treated as read-only.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over the 256-bit digest z with the private key
// priv. The per-signature nonce k is drawn uniformly from [1, n-1] using
// rand (crypto/rand.Reader when nil); a degenerate draw (r = 0, k without
// an inverse, or s = 0) is retried with a fresh nonce rather than emitted.
//
// Two signatures over the same digest differ because the nonce differs; both
// verify.
func Sign(rand io.Reader, priv *PrivateKey, z *big.Int) (*Signature, error) {
	if priv == nil || priv.D == nil {
		return nil, ErrInvalidPrivateKey
	}
	if z == nil {
		return nil, ErrInvalidDigest
	}
	if rand == nil {
		rand = crand.Reader
	}

	// e, z, and the nonce arithmetic live modulo the group order n, not the
	// field prime.
	e := secp256k1.ScalarInt(priv.D)
	zn := secp256k1.ScalarInt(z)

	for {
		k, err := arith.RandScalar(rand, secp256k1.Params().N)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: sign: %w", err)
		}

		// r is the x-coordinate of k*G as an integer, not reduced mod n.
		x, _, ok := secp256k1.Generator().ScalarMult(k).Coordinates()
		if !ok {
			continue
		}
		r := x.Value()
		if r.Sign() == 0 {
			continue
		}

		kInv, ok := secp256k1.ScalarInt(k).Inverse()
		if !ok {
			continue
		}

		// s = (z + r*e) / k mod n.
		s := zn.Add(secp256k1.ScalarInt(r).Mul(e)).Mul(kInv)
		if s.IsZero() {
			continue
		}

		return &Signature{R: r, S: s.Value()}, nil
	}
}

// SignDigest is Sign for a digest in its fixed 32-byte big-endian form.
func SignDigest(rand io.Reader, priv *PrivateKey, digest []byte) (*Signature, error) {
	if len(digest) != sha256.Size {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDigest, len(digest))
	}
	return Sign(rand, priv, new(big.Int).SetBytes(digest))
}
