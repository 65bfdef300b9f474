// eccdemo signs and verifies a message on secp256k1 from the command line,
// logging each protocol step. It exists to exercise the library end to end;
// run it with no flags for a fresh random key.
//
//	eccdemo -message "pay alice 5" [-key <hex scalar>] [-tamper] [-ecdh]
package main

import (
	"crypto/rand"
	"flag"
	"math/big"
	"os"
	"time"

	"github.com/curvebook/go-ecc/logger"
	"github.com/curvebook/go-ecc/pkg/ecdsa"
	"github.com/curvebook/go-ecc/pkg/schnorr"
	"github.com/curvebook/go-ecc/pkg/secp256k1"
)

var (
	fMessage = flag.String("message", "Hello, elliptic curves!", "message to sign")
	fKey     = flag.String("key", "", "private key as a hex scalar in [1, n-1]; random when empty")
	fTamper  = flag.Bool("tamper", false, "also verify against a flipped digest bit to show rejection")
	fECDH    = flag.Bool("ecdh", false, "also derive a shared secret with a fresh peer key")
)

func main() {
	flag.Parse()
	log := logger.Logger()

	// Key material: parse the supplied scalar or draw one.
	var (
		priv *ecdsa.PrivateKey
		err  error
	)
	if *fKey != "" {
		d, ok := new(big.Int).SetString(*fKey, 16)
		if !ok {
			log.Error().Str("key", *fKey).Msg("key is not a hex integer")
			os.Exit(1)
		}
		priv, err = ecdsa.NewPrivateKey(d)
	} else {
		priv, err = ecdsa.GenerateKey(rand.Reader)
	}
	if err != nil {
		log.Error().Err(err).Msg("key setup failed")
		os.Exit(1)
	}
	log.Info().
		Str("pubX", priv.X().Text(16)).
		Str("pubY", priv.Y().Text(16)).
		Msg("key pair ready")

	// Digest.
	z := ecdsa.HashMessage([]byte(*fMessage))
	log.Info().Str("message", *fMessage).Str("digest", z.Text(16)).Msg("hashed message")

	// Sign.
	start := time.Now()
	sig, err := ecdsa.Sign(rand.Reader, priv, z)
	if err != nil {
		log.Error().Err(err).Msg("signing failed")
		os.Exit(1)
	}
	log.Info().
		Str("r", sig.R.Text(16)).
		Str("s", sig.S.Text(16)).
		Dur("took", time.Since(start)).
		Msg("signed digest")

	// Verify.
	start = time.Now()
	ok := ecdsa.Verify(&priv.PublicKey, z, sig)
	log.Info().Bool("valid", ok).Dur("took", time.Since(start)).Msg("verified signature")
	if !ok {
		log.Error().Msg("genuine signature rejected")
		os.Exit(1)
	}

	if *fTamper {
		flipped := new(big.Int).SetBit(z, 0, z.Bit(0)^1)
		log.Info().
			Bool("valid", ecdsa.Verify(&priv.PublicKey, flipped, sig)).
			Msg("verified against tampered digest")
	}

	// Schnorr proof of key possession rides along for free. Prove wants the
	// canonical scalar, so out-of-range -key values are reduced first.
	x := new(big.Int).Mod(priv.D, secp256k1.Params().N)
	proof, err := schnorr.Prove(rand.Reader, x, priv.Point())
	if err != nil {
		log.Error().Err(err).Msg("key proof failed")
		os.Exit(1)
	}
	log.Info().Bool("valid", proof.Verify(priv.Point())).Msg("proved key possession")

	if *fECDH {
		peer, err := ecdsa.GenerateKey(rand.Reader)
		if err != nil {
			log.Error().Err(err).Msg("peer key generation failed")
			os.Exit(1)
		}
		secret := ecdsa.SharedSecret(priv, &peer.PublicKey)
		log.Info().Hex("secret", secret).Msg("derived shared secret with fresh peer")
	}
}
