package keccaktool

import (
	"math/big"

	"github.com/sprocketlabs/keccaktool/internal/aead"
	"github.com/sprocketlabs/keccaktool/internal/ec"
)

// Encrypt performs password-based symmetric authenticated encryption,
// returning a nonce || ciphertext || tag record.
func Encrypt(password, plaintext []byte) ([]byte, error) {
	return aead.Encrypt(password, plaintext)
}

// Decrypt reverses Encrypt, reporting tag validity alongside the
// recovered plaintext.
func Decrypt(password, record []byte) (plaintext []byte, valid bool, err error) {
	return aead.Decrypt(password, record)
}

// EncryptEC performs ECDHIES asymmetric encryption under a recipient's
// public point.
func EncryptEC(pub Point, plaintext []byte) ([]byte, error) {
	return ec.EncryptEC(pub, plaintext)
}

// DecryptEC reverses EncryptEC using the recipient's private scalar.
func DecryptEC(prvScalar *big.Int, record []byte) (plaintext []byte, valid bool, err error) {
	return ec.DecryptEC(prvScalar, record)
}

// SchnorrSign produces a Schnorr signature of in under prvScalar.
func SchnorrSign(prvScalar *big.Int, in []byte) ([]byte, error) {
	return ec.SchnorrSign(prvScalar, in)
}

// SchnorrVerify reports whether sig is a valid signature of in under pub.
func SchnorrVerify(sig []byte, pub Point, in []byte) (bool, error) {
	return ec.SchnorrVerify(sig, pub, in)
}
