//go:build js && wasm

// WASM bindings exposing key generation, hashing, signing, and verification
// to JavaScript. Scalars and coordinates cross the boundary as big-endian hex
// strings so no precision is lost to JavaScript numbers.
package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/curvebook/go-ecc/pkg/ecdsa"
)

func main() {
	c := make(chan struct{})

	fmt.Println("go-ecc WASM initialized")

	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKey":  js.FuncOf(GenerateKey),
		"HashMessage":  js.FuncOf(HashMessage),
		"Sign":         js.FuncOf(Sign),
		"Verify":       js.FuncOf(Verify),
		"SharedSecret": js.FuncOf(SharedSecret),
	})

	<-c
}

// GenerateKey draws a fresh key pair.
// Returns a JSON object {privateKey, publicKeyX, publicKeyY} (hex) or an
// error string.
func GenerateKey(this js.Value, args []js.Value) interface{} {
	priv, err := ecdsa.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}

	resp := map[string]interface{}{
		"privateKey": priv.D.Text(16),
		"publicKeyX": priv.X().Text(16),
		"publicKeyY": priv.Y().Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// HashMessage double-SHA-256 hashes a UTF-8 message.
// Arguments:
// 0: message (string)
// Returns the 256-bit digest as hex, or an error string.
func HashMessage(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (message)"
	}
	return ecdsa.HashMessage([]byte(args[0].String())).Text(16)
}

// Sign signs a digest with a private key.
// Arguments:
// 0: JSON string {privateKey, digest} (hex)
// Returns a JSON object {r, s} (hex) or an error string.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type SignInput struct {
		PrivateKey string `json:"privateKey"`
		Digest     string `json:"digest"`
	}
	var input SignInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	d, err := parseHex(input.PrivateKey)
	if err != nil {
		return fmt.Sprintf("error: invalid privateKey: %v", err)
	}
	z, err := parseHex(input.Digest)
	if err != nil {
		return fmt.Sprintf("error: invalid digest: %v", err)
	}

	priv, err := ecdsa.NewPrivateKey(d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sig, err := ecdsa.Sign(rand.Reader, priv, z)
	if err != nil {
		return fmt.Sprintf("error: signing failed: %v", err)
	}

	resp := map[string]interface{}{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks a signature.
// Arguments:
// 0: JSON string {publicKeyX, publicKeyY, digest, r, s} (hex)
// Returns a bool, or an error string for structurally invalid input.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type VerifyInput struct {
		PublicKeyX string `json:"publicKeyX"`
		PublicKeyY string `json:"publicKeyY"`
		Digest     string `json:"digest"`
		R          string `json:"r"`
		S          string `json:"s"`
	}
	var input VerifyInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	fields := map[string]*big.Int{}
	for name, hex := range map[string]string{
		"publicKeyX": input.PublicKeyX,
		"publicKeyY": input.PublicKeyY,
		"digest":     input.Digest,
		"r":          input.R,
		"s":          input.S,
	} {
		v, err := parseHex(hex)
		if err != nil {
			return fmt.Sprintf("error: invalid %s: %v", name, err)
		}
		fields[name] = v
	}

	// An off-curve public key is a construction error, not a false result.
	pub, err := ecdsa.NewPublicKey(fields["publicKeyX"], fields["publicKeyY"])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig := &ecdsa.Signature{R: fields["r"], S: fields["s"]}
	return ecdsa.Verify(pub, fields["digest"], sig)
}

// SharedSecret derives the ECDH shared secret between a local private key
// and a remote public key.
// Arguments:
// 0: JSON string {privateKey, publicKeyX, publicKeyY} (hex)
// Returns the 32-byte secret as hex, or an error string.
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type ECDHInput struct {
		PrivateKey string `json:"privateKey"`
		PublicKeyX string `json:"publicKeyX"`
		PublicKeyY string `json:"publicKeyY"`
	}
	var input ECDHInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	d, err := parseHex(input.PrivateKey)
	if err != nil {
		return fmt.Sprintf("error: invalid privateKey: %v", err)
	}
	x, err := parseHex(input.PublicKeyX)
	if err != nil {
		return fmt.Sprintf("error: invalid publicKeyX: %v", err)
	}
	y, err := parseHex(input.PublicKeyY)
	if err != nil {
		return fmt.Sprintf("error: invalid publicKeyY: %v", err)
	}

	priv, err := ecdsa.NewPrivateKey(d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := ecdsa.NewPublicKey(x, y)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	secret := ecdsa.SharedSecret(priv, pub)
	if secret == nil {
		return "error: derivation produced the identity"
	}
	return fmt.Sprintf("%x", secret)
}

func parseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty value")
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("not a hex integer: %q", s)
	}
	return v, nil
}
