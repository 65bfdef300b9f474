package ecdsa

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/curvebook/go-ecc/internal/arith"
	"github.com/curvebook/go-ecc/pkg/curve"
	"github.com/curvebook/go-ecc/pkg/field"
	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// PublicKey is a validated affine point on the secp256k1 curve. It is freely
// shareable; only the private scalar is secret.
type PublicKey struct {
	point curve.Point[field.Int]
}

// X returns a copy of the x-coordinate as an integer in [0, p).
func (pub *PublicKey) X() *big.Int {
	x, _, _ := pub.point.Coordinates()
	return x.Value()
}

// Y returns a copy of the y-coordinate as an integer in [0, p).
func (pub *PublicKey) Y() *big.Int {
	_, y, _ := pub.point.Coordinates()
	return y.Value()
}

// Point returns the public key as a curve point.
func (pub *PublicKey) Point() curve.Point[field.Int] {
	return pub.point
}

// Equal reports whether pub and other represent the same point.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.point.Equal(other.point)
}

// PrivateKey holds the secret scalar together with the public key derived
// from it. Callers own key storage and lifetime; nothing in this package
// persists keys.
type PrivateKey struct {
	PublicKey
	// D is the private scalar. Treat as read-only.
	D *big.Int
}

// GenerateKey draws a private scalar uniformly from [1, n-1] and derives its
// public key. The scalar is read from rand, or from crypto/rand.Reader when
// rand is nil; callers needing cryptographic strength must supply (or
// default to) a cryptographically secure source.
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	if rand == nil {
		rand = crand.Reader
	}
	d, err := arith.RandScalar(rand, secp256k1.Params().N)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: generate key: %w", err)
	}
	return NewPrivateKey(d)
}

// NewPrivateKey builds a key pair from the scalar d, which must be positive.
// Values of n and above wrap by the periodicity of the group: the derived
// public point is (d mod n)*G. A d that reduces to zero has no affine public
// point and is rejected.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d == nil || d.Sign() <= 0 {
		return nil, ErrInvalidPrivateKey
	}

	e := new(big.Int).Mod(d, secp256k1.Params().N)
	if e.Sign() == 0 {
		return nil, fmt.Errorf("%w: value is a multiple of the group order", ErrInvalidPrivateKey)
	}

	return &PrivateKey{
		PublicKey: PublicKey{point: secp256k1.Generator().ScalarMult(e)},
		D:         new(big.Int).Set(d),
	}, nil
}

// NewPublicKey validates the raw integer coordinates against the curve
// equation and returns the public key. Coordinates are reduced modulo the
// field prime on the way in; points off the curve are rejected with an error
// wrapping curve.ErrPointNotOnCurve, so untrusted input never reaches
// verification unvalidated.
func NewPublicKey(x, y *big.Int) (*PublicKey, error) {
	if x == nil || y == nil {
		return nil, ErrInvalidPublicKey
	}
	p, err := secp256k1.NewPoint(x, y)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: %w", err)
	}
	return &PublicKey{point: p}, nil
}

// NewPublicKeyFromPoint builds a public key from an already-constructed
// curve point, which must be affine and carry the secp256k1 coefficients.
func NewPublicKeyFromPoint(p curve.Point[field.Int]) (*PublicKey, error) {
	d := secp256k1.Params()
	if !p.A().Equal(d.A) || !p.B().Equal(d.B) {
		return nil, fmt.Errorf("%w: point is on a different curve", ErrInvalidPublicKey)
	}
	if p.IsInfinity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidPublicKey)
	}
	return &PublicKey{point: p}, nil
}
