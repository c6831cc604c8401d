package ec

import (
	"fmt"
	"math/big"

	"github.com/sprocketlabs/keccaktool/internal/aead"
	"github.com/sprocketlabs/keccaktool/internal/bigsign"
	"github.com/sprocketlabs/keccaktool/internal/curve"
	"github.com/sprocketlabs/keccaktool/internal/keccak"
)

// KeyPair is an ECDHIES/Schnorr key pair: a public point pub completing
// the static pair (pub, G), and the private scalar prvScalar = 4*s
// derived from the password-derived seed s.
type KeyPair struct {
	PrvBytes  []byte
	PrvScalar *big.Int
	Pub       curve.Point
}

// DeriveKeyPair derives a fresh key pair from password via
// prv_bytes = KMACXOF256(password, "", 512, "K"); PrvScalar carries the
// cofactor-4 multiplication, and the public point is G*PrvScalar.
func DeriveKeyPair(password []byte) (*KeyPair, error) {
	prvBytes, err := keccak.KMACXOF256(password, nil, 512, "K")
	if err != nil {
		return nil, fmt.Errorf("ec: deriving private key: %w", err)
	}
	return newKeyPairFromSeed(prvBytes)
}

// DeriveKeyPairFromPassword is a convenience wrapper over DeriveKeyPair for
// string passwords, interpreted as their UTF-8 bytes.
func DeriveKeyPairFromPassword(password string) (*KeyPair, error) {
	return DeriveKeyPair([]byte(password))
}

func newKeyPairFromSeed(prvBytes []byte) (*KeyPair, error) {
	s := bigsign.FromBytes(prvBytes)
	prvScalar := new(big.Int).Mul(s, big.NewInt(4))
	pub := curve.ScalarMultiply(curve.G, prvScalar)
	return &KeyPair{
		PrvBytes:  prvBytes,
		PrvScalar: prvScalar,
		Pub:       pub,
	}, nil
}

// Equal reports whether two key pairs carry the same private seed,
// scalar, and public point.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return string(kp.PrvBytes) == string(other.PrvBytes) &&
		kp.PrvScalar.Cmp(other.PrvScalar) == 0 &&
		kp.Pub.Equal(other.Pub)
}

// PublicKeyBytes serializes pub for file persistence; G is never written
// since it is a package-level constant.
func (kp *KeyPair) PublicKeyBytes() []byte {
	return kp.Pub.Bytes()
}

// PrivateKeyRecord encrypts the raw KMACXOF256 seed under password as an
// AE record (internal/aead), suitable for writing to a private-key file.
func (kp *KeyPair) PrivateKeyRecord(password []byte) ([]byte, error) {
	record, err := aead.Encrypt(password, kp.PrvBytes)
	if err != nil {
		return nil, fmt.Errorf("ec: encrypting private key: %w", err)
	}
	return record, nil
}

// LoadPublicKey parses a serialized public point read from a public-key
// file.
func LoadPublicKey(data []byte) (curve.Point, error) {
	return curve.PointFromBytes(data)
}

// LoadPrivateKey decrypts a private-key record under password and
// reconstructs the key pair it encodes. Unlike DeriveKeyPair, the
// re-derived pair is built directly from the recovered seed, so it is
// bit-identical to the pair that produced the record.
func LoadPrivateKey(record, password []byte) (*KeyPair, error) {
	prvBytes, valid, err := aead.Decrypt(password, record)
	if err != nil {
		return nil, fmt.Errorf("ec: decrypting private key: %w", err)
	}
	if !valid {
		return nil, ErrAuthFailed
	}
	return newKeyPairFromSeed(prvBytes)
}
