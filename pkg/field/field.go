// Package field implements the two coefficient fields the curve package can
// be instantiated with: Int, integers modulo a prime, and Rat, exact
// rationals. The Element constraint is the closed interface in front of both,
// so the choice of field is made statically through a type parameter rather
// than by inspecting values at runtime.
//
// Elements are immutable. Every operation returns a new element and leaves
// its operands untouched, so values can be shared freely between goroutines
// without synchronization.
package field

import "math/big"

// Element is the method set common to the field implementations. The type
// parameter is the implementing type itself, which restricts arithmetic to
// operands of one implementation at compile time.
//
// Binary operations additionally require both operands to belong to the same
// field instance (for Int, the same modulus). Mixing instances is a
// programming error and panics with ErrMismatchedField.
type Element[E any] interface {
	// Add returns the field sum of the receiver and other.
	Add(other E) E
	// Sub returns the field difference of the receiver and other.
	Sub(other E) E
	// Mul returns the field product of the receiver and other.
	Mul(other E) E
	// Div returns the receiver times the inverse of other. It panics with
	// ErrNoInverse when other is not invertible; Inverse is the checked form.
	Div(other E) E
	// Neg returns the additive inverse.
	Neg() E
	// Square returns the receiver multiplied by itself.
	Square() E
	// Pow returns the receiver raised to exp. A zero exponent yields the
	// multiplicative identity; a negative exponent raises the inverse to
	// -exp and panics with ErrNoInverse when no inverse exists.
	Pow(exp *big.Int) E
	// Inverse returns the multiplicative inverse and true, or the zero value
	// and false when none exists. A missing inverse is an expected outcome,
	// not an error.
	Inverse() (E, bool)
	// Sqrt returns an r with r*r equal to the receiver and true, or the zero
	// value and false when the receiver is not a square. When both roots
	// exist the canonical one is returned: the smaller non-negative
	// representative for Int, the non-negative root for Rat.
	Sqrt() (E, bool)
	// Equal reports whether the receiver and other are the same element of
	// the same field. Elements of different fields are unequal, never an
	// error.
	Equal(other E) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Sign returns -1, 0, or 1 according to the sign of the element. Int
	// elements are canonical non-negative residues, so Sign is 0 or 1.
	Sign() int
	// String renders the element for logs and test failures.
	String() string
}
