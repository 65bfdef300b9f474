/*
Package ecdsa implements the Elliptic Curve Digital Signature Algorithm over
the secp256k1 curve, built on this module's own field and point arithmetic.

The package provides private-key generation, public-key derivation, signing,
and verification, together with a double SHA-256 digest helper, an ECDH
shared-secret derivation, and lossless conversions to and from the
decred/dcrd secp256k1 types for interoperability testing.

Signing draws the per-signature nonce uniformly from [1, n-1] using the
caller-supplied random source (crypto/rand.Reader when nil). Nonces are not
derived deterministically per RFC 6979, and no operation attempts to be
constant-time; this package trades those hardenings for arithmetic that can
be read top to bottom. Do not use it to guard funds.
*/
package ecdsa
