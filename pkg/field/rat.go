package field

import (
	"math/big"
)

// Rat is an exact rational number, the field used by the illustrative curve
// examples where coordinates like (-1, -1) or (0.25, 0.5) appear. There is
// one rational field, so any two Rat values may be combined; no modulus
// bookkeeping applies.
//
// The zero value of Rat is not usable; construct elements with NewRat or
// NewRatFromBig.
type Rat struct {
	v *big.Rat
}

var _ Element[Rat] = Rat{}

// NewRat returns the rational num/den. den must not be zero.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// NewRatFromBig returns an element holding a copy of v.
func NewRatFromBig(v *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(v)}
}

// RatValue returns a copy of the underlying rational.
func (x Rat) RatValue() *big.Rat {
	return new(big.Rat).Set(x.v)
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return Rat{v: new(big.Rat).Add(x.v, y.v)}
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{v: new(big.Rat).Sub(x.v, y.v)}
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{v: new(big.Rat).Mul(x.v, y.v)}
}

// Div returns x / y. It panics with ErrNoInverse when y is zero.
func (x Rat) Div(y Rat) Rat {
	if y.v.Sign() == 0 {
		panic(ErrNoInverse)
	}
	return Rat{v: new(big.Rat).Quo(x.v, y.v)}
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{v: new(big.Rat).Neg(x.v)}
}

// Square returns x * x.
func (x Rat) Square() Rat {
	return Rat{v: new(big.Rat).Mul(x.v, x.v)}
}

// Pow returns x^exp by square-and-multiply. A negative exponent raises the
// reciprocal to -exp and panics with ErrNoInverse when x is zero.
func (x Rat) Pow(exp *big.Int) Rat {
	if exp.Sign() < 0 {
		inv, ok := x.Inverse()
		if !ok {
			panic(ErrNoInverse)
		}
		return inv.Pow(new(big.Int).Neg(exp))
	}

	result := NewRat(1, 1)
	factor := Rat{v: new(big.Rat).Set(x.v)}
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = result.Mul(factor)
		}
		factor = factor.Square()
	}
	return result
}

// Inverse returns 1/x, with false when x is zero.
func (x Rat) Inverse() (Rat, bool) {
	if x.v.Sign() == 0 {
		return Rat{}, false
	}
	return Rat{v: new(big.Rat).Inv(x.v)}, true
}

// Sqrt returns the non-negative rational square root of x when one exists,
// which requires x to be non-negative and both the numerator and denominator
// of the reduced fraction to be perfect squares.
func (x Rat) Sqrt() (Rat, bool) {
	if x.v.Sign() < 0 {
		return Rat{}, false
	}

	num, den := x.v.Num(), x.v.Denom()
	rootNum := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(rootNum, rootNum).Cmp(num) != 0 {
		return Rat{}, false
	}
	rootDen := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(rootDen, rootDen).Cmp(den) != 0 {
		return Rat{}, false
	}
	return Rat{v: new(big.Rat).SetFrac(rootNum, rootDen)}, true
}

// Equal reports whether x and y are the same rational. The unusable zero
// value equals nothing, so Equal is safe on arbitrary pairs.
func (x Rat) Equal(y Rat) bool {
	if x.v == nil || y.v == nil {
		return false
	}
	return x.v.Cmp(y.v) == 0
}

// IsZero reports whether x is zero.
func (x Rat) IsZero() bool {
	return x.v.Sign() == 0
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Rat) Sign() int {
	return x.v.Sign()
}

func (x Rat) String() string {
	return x.v.RatString()
}
