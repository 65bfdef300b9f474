package field

import (
	"fmt"
	"math/big"

	"github.com/curvebook/go-ecc/internal/arith"
)

// Int is a residue modulo a prime, the field used for cryptographic curves.
// The value is kept canonical in [0, modulus) at all times; construction
// reduces arbitrary integers, including negative ones, into that range.
//
// The zero value of Int is not usable; construct elements with NewInt.
type Int struct {
	v *big.Int
	m *big.Int
}

var _ Element[Int] = Int{}

// NewInt reduces v modulo m and returns the canonical element. The result is
// non-negative for any input sign. m must be at least 1; smaller moduli are a
// programming error and panic with ErrInvalidModulus. Primality of m is the
// caller's responsibility and is assumed by Inverse, Div, and Sqrt.
func NewInt(v, m *big.Int) Int {
	if m == nil || m.Sign() <= 0 {
		panic(ErrInvalidModulus)
	}
	return Int{
		v: new(big.Int).Mod(v, m),
		m: new(big.Int).Set(m),
	}
}

// NewInt64 is NewInt for small constants, mostly used by tests and examples.
func NewInt64(v, m int64) Int {
	return NewInt(big.NewInt(v), big.NewInt(m))
}

// Value returns a copy of the canonical representative in [0, modulus).
func (x Int) Value() *big.Int {
	return new(big.Int).Set(x.v)
}

// Modulus returns a copy of the field modulus.
func (x Int) Modulus() *big.Int {
	return new(big.Int).Set(x.m)
}

// sameField panics unless x and y live in the same field. Results share the
// receiver's modulus pointer; moduli are never mutated after construction.
func (x Int) sameField(y Int) {
	if x.m.Cmp(y.m) != 0 {
		panic(ErrMismatchedField)
	}
}

// Add returns x + y mod m.
func (x Int) Add(y Int) Int {
	x.sameField(y)
	v := new(big.Int).Add(x.v, y.v)
	return Int{v: v.Mod(v, x.m), m: x.m}
}

// Sub returns x - y mod m.
func (x Int) Sub(y Int) Int {
	x.sameField(y)
	v := new(big.Int).Sub(x.v, y.v)
	return Int{v: v.Mod(v, x.m), m: x.m}
}

// Mul returns x * y mod m.
func (x Int) Mul(y Int) Int {
	x.sameField(y)
	v := new(big.Int).Mul(x.v, y.v)
	return Int{v: v.Mod(v, x.m), m: x.m}
}

// Div returns x * y^-1 mod m. It panics with ErrNoInverse when y is not
// invertible; use Inverse to test first.
func (x Int) Div(y Int) Int {
	x.sameField(y)
	inv, ok := y.Inverse()
	if !ok {
		panic(ErrNoInverse)
	}
	return x.Mul(inv)
}

// Neg returns -x mod m, which is 0 - x reduced into canonical range.
func (x Int) Neg() Int {
	v := new(big.Int).Neg(x.v)
	return Int{v: v.Mod(v, x.m), m: x.m}
}

// Square returns x * x mod m.
func (x Int) Square() Int {
	v := new(big.Int).Mul(x.v, x.v)
	return Int{v: v.Mod(v, x.m), m: x.m}
}

// Pow returns x^exp mod m by square-and-multiply. exp may be negative, in
// which case the inverse of x is raised to -exp; that panics with
// ErrNoInverse when x is not invertible.
func (x Int) Pow(exp *big.Int) Int {
	if exp.Sign() < 0 {
		inv, ok := x.Inverse()
		if !ok {
			panic(ErrNoInverse)
		}
		return inv.Pow(new(big.Int).Neg(exp))
	}
	return Int{v: arith.PowMod(x.v, exp, x.m), m: x.m}
}

// Inverse returns x^-1 mod m via the extended Euclidean algorithm. The
// second return value is false when gcd(x, m) != 1, in particular for x = 0.
func (x Int) Inverse() (Int, bool) {
	inv, ok := arith.ModInverse(x.v, x.m)
	if !ok {
		return Int{}, false
	}
	return Int{v: inv, m: x.m}, true
}

// Sqrt returns the smallest non-negative r with r^2 = x mod m, or false when
// x is a quadratic non-residue. The modulus must be prime for the result to
// be meaningful.
func (x Int) Sqrt() (Int, bool) {
	r, ok := arith.SqrtModPrime(x.v, x.m)
	if !ok {
		return Int{}, false
	}
	return Int{v: r, m: x.m}, true
}

// Equal reports whether x and y have the same value and the same modulus.
// Elements of different fields compare unequal rather than panicking, so
// Equal is safe on arbitrary pairs, including the unusable zero value, which
// is not an element of any field and equals nothing.
func (x Int) Equal(y Int) bool {
	if x.m == nil || y.m == nil {
		return false
	}
	return x.m.Cmp(y.m) == 0 && x.v.Cmp(y.v) == 0
}

// IsZero reports whether x is the additive identity.
func (x Int) IsZero() bool {
	return x.v.Sign() == 0
}

// Sign returns 0 when x is zero and 1 otherwise; canonical residues are
// never negative.
func (x Int) Sign() int {
	return x.v.Sign()
}

func (x Int) String() string {
	return fmt.Sprintf("%v mod %v", x.v, x.m)
}
