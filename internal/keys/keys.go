// Package keys derives WireGuard public keys from the private keys written in
// a network declaration.
//
// Keys travel as standard base64 text of 32 raw bytes. Derivation is
// Curve25519 base-point multiplication of the clamped private scalar.
package keys

import (
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

// KeyLen is the raw length of a WireGuard key.
const KeyLen = wgtypes.KeyLen

// ErrInvalidKeyEncoding indicates a key that is not base64 of exactly 32 bytes.
var ErrInvalidKeyEncoding = errors.New("invalid key encoding")

// DerivePublic returns the base64 public key for a base64 private key. Only
// the canonical encoding of a key is accepted.
func DerivePublic(privateKey string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if len(raw) != KeyLen {
		return "", fmt.Errorf("%w: decoded %d bytes, want %d", ErrInvalidKeyEncoding, len(raw), KeyLen)
	}
	key, err := wgtypes.NewKey(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	// Each key has exactly one accepted spelling; the decoder alone lets
	// line breaks and non-zero padding bits through.
	if key.String() != privateKey {
		return "", fmt.Errorf("%w: not canonical base64", ErrInvalidKeyEncoding)
	}
	return key.PublicKey().String(), nil
}

// DeriveError reports which input of DeriveAll failed.
type DeriveError struct {
	Index int
	Err   error
}

func (e *DeriveError) Error() string {
	return fmt.Sprintf("key %d: %v", e.Index, e.Err)
}

func (e *DeriveError) Unwrap() error { return e.Err }

// DeriveAll derives the public key for every private key. Output order
// matches input order. When several keys fail, the lowest index is reported.
func DeriveAll(privateKeys []string) ([]string, error) {
	out := make([]string, len(privateKeys))
	errs := make([]error, len(privateKeys))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, priv := range privateKeys {
		g.Go(func() error {
			pub, err := DerivePublic(priv)
			if err != nil {
				errs[i] = err
				return err
			}
			out[i] = pub
			return nil
		})
	}
	if err := g.Wait(); err == nil {
		return out, nil
	}

	for i, err := range errs {
		if err != nil {
			return nil, &DeriveError{Index: i, Err: err}
		}
	}
	return out, nil
}

// Generate returns a fresh private key and its public key.
func Generate() (private, public string, err error) {
	key, err := wgtypes.GeneratePrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("generate private key: %w", err)
	}
	return key.String(), key.PublicKey().String(), nil
}
