// Package schnorr implements a non-interactive Schnorr proof of knowledge of
// a secp256k1 private key: given X = x*G, the prover convinces a verifier
// that it knows x without revealing it.
//
// The interactive protocol commits to R = k*G, receives a challenge e, and
// answers with s = k + e*x mod n; the verifier accepts when s*G = R + e*X.
// This package derives the challenge by the Fiat-Shamir transform,
// e = H(G, X, R) mod n over SHA-256, making the proof a single message.
//
// Proofs use the same point and scalar arithmetic as the ecdsa package and
// none of decred's; they exist to demonstrate knowledge of a key, not to
// sign anything.
package schnorr

import (
	crand "crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/curvebook/go-ecc/internal/arith"
	"github.com/curvebook/go-ecc/pkg/curve"
	"github.com/curvebook/go-ecc/pkg/field"
	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// ErrInvalidProofInput is returned by Prove when the secret scalar or public
// point is missing or inconsistent.
var ErrInvalidProofInput = errors.New("schnorr: secret must be a scalar in [1, n-1] with X = x*G")

// Proof is a non-interactive proof of knowledge of x with X = x*G.
type Proof struct {
	// R is the prover's commitment k*G.
	R curve.Point[field.Int]
	// S is the response k + e*x modulo the group order.
	S *big.Int
}

// Prove builds a proof of knowledge of x for the public point X. x must lie
// in [1, n-1] and X must equal x*G; the nonce k is drawn from rand
// (crypto/rand.Reader when nil).
func Prove(rand io.Reader, x *big.Int, X curve.Point[field.Int]) (*Proof, error) {
	n := secp256k1.Params().N
	if x == nil || x.Sign() <= 0 || x.Cmp(n) >= 0 {
		return nil, ErrInvalidProofInput
	}
	if !secp256k1.Generator().ScalarMult(x).Equal(X) {
		return nil, fmt.Errorf("%w: point does not match the secret", ErrInvalidProofInput)
	}
	if rand == nil {
		rand = crand.Reader
	}

	k, err := arith.RandScalar(rand, n)
	if err != nil {
		return nil, fmt.Errorf("schnorr: sample nonce: %w", err)
	}

	R := secp256k1.Generator().ScalarMult(k)
	e := challenge(X, R)

	// s = k + e*x mod n.
	s := secp256k1.ScalarInt(k).Add(e.Mul(secp256k1.ScalarInt(x)))

	return &Proof{R: R, S: s.Value()}, nil
}

// Verify reports whether p proves knowledge of the discrete log of X. Like
// signature verification it never panics or errors on adversarial input;
// malformed proofs are simply false.
func (p *Proof) Verify(X curve.Point[field.Int]) bool {
	if p == nil || p.S == nil || X.IsInfinity() {
		return false
	}
	d := secp256k1.Params()
	if p.S.Sign() < 0 || p.S.Cmp(d.N) >= 0 {
		return false
	}
	if !p.R.A().Equal(d.A) || !p.R.B().Equal(d.B) || !X.A().Equal(d.A) || !X.B().Equal(d.B) {
		return false
	}

	// s*G = R + e*X binds the response to the commitment and the key.
	e := challenge(X, p.R)
	lhs := secp256k1.Generator().ScalarMult(p.S)
	rhs := p.R.Add(X.ScalarMult(e.Value()))
	return lhs.Equal(rhs)
}

// challenge derives the Fiat-Shamir challenge H(G, X, R) mod n. Hashing the
// generator pins the proof to this group; coordinates are hashed in their
// fixed 32-byte form so the transcript is unambiguous. The identity, which
// has no coordinates, contributes zero words and cannot collide with an
// affine point because every affine encoding here is nonzero in y.
func challenge(X, R curve.Point[field.Int]) field.Int {
	h := sha256.New()
	for _, pt := range []curve.Point[field.Int]{secp256k1.Generator(), X, R} {
		x, y, ok := pt.Coordinates()
		if !ok {
			continue
		}
		var word [32]byte
		x.Value().FillBytes(word[:])
		h.Write(word[:])
		y.Value().FillBytes(word[:])
		h.Write(word[:])
	}
	return secp256k1.ScalarInt(new(big.Int).SetBytes(h.Sum(nil)))
}
