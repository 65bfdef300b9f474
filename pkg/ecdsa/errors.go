package ecdsa

import "errors"

var (
	// ErrInvalidPrivateKey is returned when a private scalar is nil, not
	// positive, or reduces to zero modulo the group order (leaving no affine
	// public point).
	ErrInvalidPrivateKey = errors.New("ecdsa: private key must be a positive scalar")

	// ErrInvalidPublicKey is returned when a public key is built from
	// anything other than an affine secp256k1 point.
	ErrInvalidPublicKey = errors.New("ecdsa: public key must be an affine secp256k1 point")

	// ErrInvalidDigest is returned by the digest-slice entry points when the
	// digest is not exactly 32 bytes.
	ErrInvalidDigest = errors.New("ecdsa: digest must be 32 bytes")

	// ErrInvalidSignature is returned by conversions that require both
	// signature components to lie in [1, n-1].
	ErrInvalidSignature = errors.New("ecdsa: signature components must be in [1, n-1]")
)
