package arith

import (
	"math/big"
)

// SqrtModPrime returns the smallest non-negative square root of v modulo the
// odd prime p, or false when v is a quadratic non-residue. Every non-zero
// residue has two roots r and p-r; the smaller of the pair is returned so the
// result is deterministic.
//
// Primes congruent to 3 mod 4 take the direct exponentiation shortcut
// v^((p+1)/4); the general case runs Tonelli-Shanks. Both are polynomial in
// the bit length of p.
func SqrtModPrime(v, p *big.Int) (*big.Int, bool) {
	a := new(big.Int).Mod(v, p)
	if a.Sign() == 0 {
		return big.NewInt(0), true
	}
	if p.Cmp(two) == 0 {
		return a, true
	}

	// Euler's criterion: a is a residue iff a^((p-1)/2) = 1.
	halfOrder := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)
	if PowMod(a, halfOrder, p).Cmp(one) != 0 {
		return nil, false
	}

	var r *big.Int
	if p.Bit(0) == 1 && p.Bit(1) == 1 { // p = 3 (mod 4)
		exp := new(big.Int).Add(p, one)
		exp.Rsh(exp, 2)
		r = PowMod(a, exp, p)
	} else {
		r = tonelliShanks(a, p)
	}

	if other := new(big.Int).Sub(p, r); other.Cmp(r) < 0 {
		r = other
	}
	return r, true
}

// tonelliShanks finds one square root of the quadratic residue a modulo the
// odd prime p. a must be a non-zero residue; SqrtModPrime checks that before
// calling in here.
func tonelliShanks(a, p *big.Int) *big.Int {
	// Write p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a non-residue z by scanning upward from 2. Half of all residues
	// qualify, so the scan is short.
	pm1 := new(big.Int).Sub(p, one)
	halfOrder := new(big.Int).Rsh(pm1, 1)
	z := big.NewInt(2)
	for PowMod(z, halfOrder, p).Cmp(pm1) != 0 {
		z = new(big.Int).Add(z, one)
	}

	m := s
	c := PowMod(z, q, p)
	t := PowMod(a, q, p)
	r := PowMod(a, new(big.Int).Rsh(new(big.Int).Add(q, one), 1), p)

	for t.Cmp(one) != 0 {
		// Least i with t^(2^i) = 1; always < m for a residue.
		i := 0
		probe := new(big.Int).Set(t)
		for probe.Cmp(one) != 0 {
			probe.Mul(probe, probe)
			probe.Mod(probe, p)
			i++
		}

		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b)
			b.Mod(b, p)
		}

		m = i
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
	return r
}
