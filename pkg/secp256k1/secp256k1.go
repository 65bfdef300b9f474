// Package secp256k1 provides the fixed parameters of the secp256k1 curve
// (y² = x³ + 7 over the prime field of 2²⁵⁶ − 2³² − 977) and constructors
// for points and field elements bound to those parameters.
//
// The parameters form one immutable Domain value built on first use; there is
// no other package state. Operations that need curve context take it from the
// points themselves, never from a global.
package secp256k1

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/curvebook/go-ecc/pkg/curve"
	"github.com/curvebook/go-ecc/pkg/field"
)

// Domain holds the secp256k1 parameters. The fields are exported for
// convenient access but must be treated as read-only; mutating them is
// undefined behavior.
type Domain struct {
	// P is the prime of the coordinate field, 2²⁵⁶ − 2³² − 977.
	P *big.Int
	// N is the order of the cyclic group generated by G. Scalars (private
	// keys, nonces) live modulo N, which is distinct from P.
	N *big.Int
	// A and B are the coefficients of y² = x³ + Ax + B as elements of the
	// coordinate field: A = 0 and B = 7.
	A, B field.Int
	// G is the standard generator point.
	G curve.Point[field.Int]
	// BitSize is the size of the field in bits.
	BitSize int
}

var (
	domainOnce sync.Once
	domain     *Domain
)

// fromHex converts a hex string to a big.Int. It panics on invalid input and
// is only used for the hard-coded curve constants.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("secp256k1: invalid hex constant %q", s))
	}
	return v
}

// Params returns the secp256k1 domain parameters, built once.
func Params() *Domain {
	domainOnce.Do(func() {
		p := fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
		n := fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
		a := field.NewInt(big.NewInt(0), p)
		b := field.NewInt(big.NewInt(7), p)

		gx := field.NewInt(fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"), p)
		gy := field.NewInt(fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"), p)
		g, err := curve.NewPoint(gx, gy, a, b)
		if err != nil {
			panic(fmt.Sprintf("secp256k1: generator constant rejected: %v", err))
		}

		domain = &Domain{P: p, N: n, A: a, B: b, G: g, BitSize: 256}
	})
	return domain
}

// FieldInt reduces v modulo the field prime P and returns the resulting
// coordinate-field element.
func FieldInt(v *big.Int) field.Int {
	return field.NewInt(v, Params().P)
}

// ScalarInt reduces v modulo the group order N and returns the resulting
// scalar-field element. Signing arithmetic (s, z, r as residues) happens in
// this field.
func ScalarInt(v *big.Int) field.Int {
	return field.NewInt(v, Params().N)
}

// NewPoint wraps the raw integer coordinates into the coordinate field and
// validates that the point is on the curve. Coordinates of any sign or size
// are reduced modulo P first.
func NewPoint(x, y *big.Int) (curve.Point[field.Int], error) {
	return NewFieldPoint(FieldInt(x), FieldInt(y))
}

// NewFieldPoint validates that the already-wrapped coordinates are on the
// curve. x and y must be elements of the secp256k1 coordinate field.
func NewFieldPoint(x, y field.Int) (curve.Point[field.Int], error) {
	d := Params()
	return curve.NewPoint(x, y, d.A, d.B)
}

// Infinity returns the point at infinity of the secp256k1 group.
func Infinity() curve.Point[field.Int] {
	d := Params()
	return curve.Infinity(d.A, d.B)
}

// Generator returns the generator point G.
func Generator() curve.Point[field.Int] {
	return Params().G
}

// MaxPrivateKey returns N − 1, the largest valid private scalar, as a fresh
// value the caller may modify.
func MaxPrivateKey() *big.Int {
	return new(big.Int).Sub(Params().N, big.NewInt(1))
}
