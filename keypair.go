package keccaktool

import (
	"fmt"

	"github.com/sprocketlabs/keccaktool/internal/cliutil"
	"github.com/sprocketlabs/keccaktool/internal/curve"
	"github.com/sprocketlabs/keccaktool/internal/ec"
)

// KeyPair is an ECDHIES/Schnorr key pair, re-exported from internal/ec.
type KeyPair = ec.KeyPair

// Point is a point on E_521, re-exported from internal/curve.
type Point = curve.Point

// DeriveKeyPair derives a key pair from a password.
func DeriveKeyPair(password []byte) (*KeyPair, error) {
	return ec.DeriveKeyPair(password)
}

// DeriveKeyPairFromPassword derives a key pair from a string password.
func DeriveKeyPairFromPassword(password string) (*KeyPair, error) {
	return ec.DeriveKeyPairFromPassword(password)
}

// WritePublicKeyFile serializes and writes kp's public point to path.
func WritePublicKeyFile(kp *KeyPair, path string) error {
	return cliutil.WriteFile(path, kp.PublicKeyBytes())
}

// WritePrivateKeyFile encrypts kp's private seed under password and
// writes the resulting AE record to path.
func WritePrivateKeyFile(kp *KeyPair, password []byte, path string) error {
	record, err := kp.PrivateKeyRecord(password)
	if err != nil {
		return err
	}
	return cliutil.WriteFile(path, record)
}

// ReadPublicKeyFile reads and parses a public key file.
func ReadPublicKeyFile(path string) (Point, error) {
	data, err := cliutil.ReadFile(path)
	if err != nil {
		return Point{}, err
	}
	pub, err := ec.LoadPublicKey(data)
	if err != nil {
		return Point{}, fmt.Errorf("parsing public key %s: %w", path, err)
	}
	return pub, nil
}

// ReadPrivateKeyFile reads an encrypted private key file and reconstructs
// the key pair it encodes under password.
func ReadPrivateKeyFile(path string, password []byte) (*KeyPair, error) {
	data, err := cliutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ec.LoadPrivateKey(data, password)
}
