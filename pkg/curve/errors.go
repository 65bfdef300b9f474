package curve

import "errors"

var (
	// ErrPointNotOnCurve is returned (wrapped) by NewPoint when the supplied
	// coordinates do not satisfy the curve equation. Bad coordinates are a
	// data error, so construction reports it instead of panicking.
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrMismatchedCurve is the panic value when a group operation combines
	// points of different curves. Like mixing field moduli, that is a
	// programming error and fails fast.
	ErrMismatchedCurve = errors.New("curve: points belong to different curves")

	// ErrNegativeScalar is the panic value when ScalarMult is given a
	// negative scalar. Callers wanting -k*P negate the point and multiply
	// by |k|.
	ErrNegativeScalar = errors.New("curve: scalar must be non-negative")
)
