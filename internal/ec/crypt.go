package ec

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/sprocketlabs/keccaktool/internal/bigsign"
	"github.com/sprocketlabs/keccaktool/internal/curve"
	"github.com/sprocketlabs/keccaktool/internal/keccak"
)

// EncryptEC encrypts plaintext under pub using ECDHIES: a fresh ephemeral
// scalar k produces a shared point W = pub*k, which seeds the same
// mask/tag construction as internal/aead but keyed by W's x coordinate.
// The returned record is serialize(Z) || ciphertext || tag, where
// Z = G*k lets the recipient recompute W without knowing k.
func EncryptEC(pub curve.Point, plaintext []byte) ([]byte, error) {
	rnd := make([]byte, 65)
	if _, err := rand.Read(rnd); err != nil {
		return nil, fmt.Errorf("ec: reading ephemeral randomness: %w", err)
	}
	rnd[0] = 0 // force a non-negative interpretation

	k := new(big.Int).Mul(bigsign.FromBytes(rnd), big.NewInt(4))

	W := curve.ScalarMultiply(pub, k)
	Z := curve.ScalarMultiply(curve.G, k)

	key1, key2, err := deriveECDHKeys(W)
	if err != nil {
		return nil, err
	}

	var mask []byte
	if len(plaintext) > 0 {
		mask, err = keccak.KMACXOF256(key1, nil, 8*len(plaintext), "PKE")
		if err != nil {
			return nil, fmt.Errorf("ec: deriving keystream: %w", err)
		}
	}
	ciphertext := xor(plaintext, mask)

	tag, err := keccak.KMACXOF256(key2, plaintext, 512, "PKA")
	if err != nil {
		return nil, fmt.Errorf("ec: computing tag: %w", err)
	}

	record := make([]byte, 0, curve.StdBlen+len(ciphertext)+64)
	record = append(record, Z.Bytes()...)
	record = append(record, ciphertext...)
	record = append(record, tag...)
	return record, nil
}

// DecryptEC reverses EncryptEC using the recipient's private scalar.
func DecryptEC(prvScalar *big.Int, record []byte) (plaintext []byte, valid bool, err error) {
	if len(record) < curve.StdBlen+64 {
		return nil, false, ErrMalformedCiphertext
	}

	Z, err := curve.PointFromBytes(record[:curve.StdBlen])
	if err != nil {
		return nil, false, fmt.Errorf("ec: parsing ephemeral point: %w", err)
	}
	ciphertext := record[curve.StdBlen : len(record)-64]
	tag := record[len(record)-64:]

	W := curve.ScalarMultiply(Z, prvScalar)

	key1, key2, err := deriveECDHKeys(W)
	if err != nil {
		return nil, false, err
	}

	var mask []byte
	if len(ciphertext) > 0 {
		mask, err = keccak.KMACXOF256(key1, nil, 8*len(ciphertext), "PKE")
		if err != nil {
			return nil, false, fmt.Errorf("ec: deriving keystream: %w", err)
		}
	}
	plaintext = xor(ciphertext, mask)

	wantTag, err := keccak.KMACXOF256(key2, plaintext, 512, "PKA")
	if err != nil {
		return nil, false, fmt.Errorf("ec: recomputing tag: %w", err)
	}

	valid = subtle.ConstantTimeCompare(tag, wantTag) == 1
	return plaintext, valid, nil
}

// deriveECDHKeys splits KMACXOF256(W.x, "", 1024, "P") into the masking
// and tagging keys shared by EncryptEC and DecryptEC.
func deriveECDHKeys(W curve.Point) (key1, key2 []byte, err error) {
	keys, err := keccak.KMACXOF256(bigsign.MinimalBytes(W.X), nil, 1024, "P")
	if err != nil {
		return nil, nil, fmt.Errorf("ec: deriving shared keys: %w", err)
	}
	return keys[:64], keys[64:], nil
}

func xor(a, mask []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ mask[i]
	}
	return out
}
