// Package arith provides the shared modular arithmetic helpers used by the
// field and curve packages: the extended Euclidean algorithm, modular
// inverses, modular exponentiation, square roots modulo a prime, and uniform
// scalar sampling.
//
// All functions treat their big.Int arguments as read-only and return fresh
// values.
package arith

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ExtendedGCD computes g = gcd(a, b) together with the Bézout coefficients
// x, y satisfying a*x + b*y = g. Both a and b must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q, rem := new(big.Int).QuoRem(oldR, r, new(big.Int))
		oldR, r = r, rem
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// ModInverse returns the multiplicative inverse of v modulo m, normalized
// into [0, m), using the extended Euclidean algorithm on (m, v mod m). The
// second return value is false when no inverse exists, that is when
// gcd(v, m) != 1; in particular v = 0 has no inverse for any m > 1. A missing
// inverse is an expected outcome, not an error. m must be positive.
func ModInverse(v, m *big.Int) (*big.Int, bool) {
	if m.Sign() <= 0 {
		panic("arith: modulus must be positive")
	}

	a := new(big.Int).Mod(v, m)
	g, _, y := ExtendedGCD(m, a)
	if g.Cmp(one) != 0 {
		return nil, false
	}
	return y.Mod(y, m), true
}

// PowMod computes base^exp mod m by square-and-multiply over the binary
// digits of exp, least significant bit first. exp must be non-negative and m
// must be positive.
func PowMod(base, exp, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		panic("arith: modulus must be positive")
	}
	if exp.Sign() < 0 {
		panic("arith: exponent must be non-negative")
	}

	result := new(big.Int).Mod(one, m)
	factor := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, factor)
			result.Mod(result, m)
		}
		factor.Mul(factor, factor)
		factor.Mod(factor, m)
	}
	return result
}
