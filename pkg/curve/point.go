// Package curve implements affine points on short-Weierstrass elliptic
// curves y² = x³ + ax + b together with the group law: identity, negation,
// addition, and scalar multiplication by iterative double-and-add.
//
// A point is either the point at infinity (the group identity) or an affine
// coordinate pair, and both variants carry the curve coefficients, so any two
// points know whether they belong to the same group. The coefficient field is
// a type parameter: instantiate with field.Int for curves over a prime field
// or with field.Rat for the illustrative rational curves.
//
// Points are immutable values; operations return new points.
package curve

import (
	"fmt"
	"math/big"

	"github.com/curvebook/go-ecc/pkg/field"
)

// Point is a point on the curve y² = x³ + ax + b over the field E, either
// affine or the point at infinity.
//
// The zero value of Point is not usable; construct points with NewPoint,
// Infinity, or PointsAtX.
type Point[E field.Element[E]] struct {
	x, y E
	a, b E
	inf  bool
}

// NewPoint validates that (x, y) satisfies y² = x³ + ax + b and returns the
// affine point. Coordinates off the curve return an error wrapping
// ErrPointNotOnCurve; they are rejected at construction so group operations
// never see an invalid point.
func NewPoint[E field.Element[E]](x, y, a, b E) (Point[E], error) {
	if !y.Square().Equal(rhs(x, a, b)) {
		return Point[E]{}, fmt.Errorf("%w: (%v, %v) with a = %v, b = %v",
			ErrPointNotOnCurve, x, y, a, b)
	}
	return Point[E]{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity of the curve y² = x³ + ax + b, the
// group identity. It is valid for any coefficients.
func Infinity[E field.Element[E]](a, b E) Point[E] {
	return Point[E]{a: a, b: b, inf: true}
}

// PointsAtX returns the points on y² = x³ + ax + b with the given
// x-coordinate: none when x³ + ax + b is a non-residue, the single point
// (x, 0) when it is zero, and otherwise the two points (x, y) and (x, -y)
// with the canonical square root first.
func PointsAtX[E field.Element[E]](x, a, b E) []Point[E] {
	v := rhs(x, a, b)
	if v.IsZero() {
		return []Point[E]{{x: x, y: x.Sub(x), a: a, b: b}}
	}
	y, ok := v.Sqrt()
	if !ok {
		return nil
	}
	return []Point[E]{
		{x: x, y: y, a: a, b: b},
		{x: x, y: y.Neg(), a: a, b: b},
	}
}

// rhs evaluates the curve polynomial x³ + ax + b by Horner's method.
func rhs[E field.Element[E]](x, a, b E) E {
	return x.Square().Add(a).Mul(x).Add(b)
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool {
	return p.inf
}

// Coordinates returns the affine coordinates of p. ok is false for the point
// at infinity, which has no coordinates; x and y are then the zero value.
func (p Point[E]) Coordinates() (x, y E, ok bool) {
	if p.inf {
		var zero E
		return zero, zero, false
	}
	return p.x, p.y, true
}

// A returns the curve coefficient a.
func (p Point[E]) A() E {
	return p.a
}

// B returns the curve coefficient b.
func (p Point[E]) B() E {
	return p.b
}

// Equal reports whether p and q are the same point of the same curve. Points
// of different curves compare unequal rather than panicking, so Equal is safe
// on arbitrary pairs.
func (p Point[E]) Equal(q Point[E]) bool {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return false
	}
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection of p across the x-axis. The identity is its
// own negation.
func (p Point[E]) Neg() Point[E] {
	if p.inf {
		return p
	}
	return Point[E]{x: p.x, y: p.y.Neg(), a: p.a, b: p.b}
}

// sameCurve panics unless p and q carry the same coefficients.
func (p Point[E]) sameCurve(q Point[E]) {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		panic(ErrMismatchedCurve)
	}
}

// Add returns the group sum p + q.
//
// The case analysis rules out every division by a non-invertible slope
// denominator: vertical chords and vertical tangents are handled before the
// slope is formed.
func (p Point[E]) Add(q Point[E]) Point[E] {
	p.sameCurve(q)

	// Identity law.
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	// Additive inverses share an x-coordinate and the chord through them is
	// vertical. This also covers doubling a point with y = 0, whose tangent
	// is vertical.
	if p.x.Equal(q.x) && q.y.Equal(p.y.Neg()) {
		return Infinity(p.a, p.b)
	}

	var s E
	if p.x.Equal(q.x) {
		// Doubling: tangent slope (3x² + a) / 2y.
		xx := p.x.Square()
		s = xx.Add(xx).Add(xx).Add(p.a).Div(p.y.Add(p.y))
	} else {
		// Chord slope (y2 - y1) / (x2 - x1).
		s = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	}

	x3 := s.Square().Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point[E]{x: x3, y: y3, a: p.a, b: p.b}
}

// ScalarMult returns k*p computed by right-to-left double-and-add over the
// bits of k, least significant first. Zero yields the point at infinity for
// any p. k must be non-negative; a negative k panics with ErrNegativeScalar.
func (p Point[E]) ScalarMult(k *big.Int) Point[E] {
	if k.Sign() < 0 {
		panic(ErrNegativeScalar)
	}

	result := Infinity(p.a, p.b)
	factor := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(factor)
		}
		factor = factor.Add(factor)
	}
	return result
}

// String renders the point for logs and test failures.
func (p Point[E]) String() string {
	if p.inf {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
