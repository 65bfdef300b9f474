package ecdsa

import (
	"fmt"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

// Conversions between this package's types and the decred/dcrd secp256k1
// implementation. They are lossless for in-range values and power the
// cross-implementation suites under test/e2e; they are also the escape hatch
// for callers that need serialization formats this module does not provide.

// word32 renders v as the fixed 32-byte big-endian form the decred types
// consume. v must be non-negative and below 2²⁵⁶.
func word32(v *big.Int) [32]byte {
	var out [32]byte
	v.FillBytes(out[:])
	return out
}

// DecredPublicKey converts pub to the decred representation.
func DecredPublicKey(pub *PublicKey) *dcrsecp.PublicKey {
	var fx, fy dcrsecp.FieldVal
	xb, yb := word32(pub.X()), word32(pub.Y())
	fx.SetByteSlice(xb[:])
	fy.SetByteSlice(yb[:])
	return dcrsecp.NewPublicKey(&fx, &fy)
}

// PublicKeyFromDecred converts a decred public key, revalidating it against
// the curve equation on the way in.
func PublicKeyFromDecred(pk *dcrsecp.PublicKey) (*PublicKey, error) {
	return NewPublicKey(pk.X(), pk.Y())
}

// DecredPrivateKey converts priv, reduced modulo the group order, to the
// decred representation.
func DecredPrivateKey(priv *PrivateKey) *dcrsecp.PrivateKey {
	e := new(big.Int).Mod(priv.D, secp256k1.Params().N)
	eb := word32(e)
	return dcrsecp.PrivKeyFromBytes(eb[:])
}

// PrivateKeyFromDecred converts a decred private key and derives its public
// key with this module's arithmetic.
func PrivateKeyFromDecred(pk *dcrsecp.PrivateKey) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(pk.Serialize()))
}

// DecredSignature converts sig to the decred representation. Decred scalars
// live strictly in [1, n-1], so signatures with components outside that
// range (possible here because r is a coordinate, not a scalar) are
// rejected rather than silently reduced.
func DecredSignature(sig *Signature) (*dcrecdsa.Signature, error) {
	n := secp256k1.Params().N
	if sig.R == nil || sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: r = %v", ErrInvalidSignature, sig.R)
	}
	if sig.S == nil || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: s = %v", ErrInvalidSignature, sig.S)
	}

	var r, s dcrsecp.ModNScalar
	rb, sb := word32(sig.R), word32(sig.S)
	r.SetByteSlice(rb[:])
	s.SetByteSlice(sb[:])
	return dcrecdsa.NewSignature(&r, &s), nil
}

// SignatureFromDecred converts a decred signature.
func SignatureFromDecred(sig *dcrecdsa.Signature) *Signature {
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()
	return &Signature{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	}
}
