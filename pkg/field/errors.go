package field

import "errors"

var (
	// ErrInvalidModulus is the panic value when an integer field element is
	// constructed with a modulus below 1.
	ErrInvalidModulus = errors.New("field: modulus must be a positive integer")

	// ErrMismatchedField is the panic value when arithmetic combines
	// elements of different fields. That is a programming error rather than
	// bad input data, so it fails fast instead of returning an error.
	ErrMismatchedField = errors.New("field: elements belong to different fields")

	// ErrNoInverse is the panic value when Div or a negative Pow meets a
	// non-invertible operand. Inverse reports the same condition without
	// panicking.
	ErrNoInverse = errors.New("field: element has no multiplicative inverse")
)
