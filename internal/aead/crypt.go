package aead

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/sprocketlabs/keccaktool/internal/keccak"
)

const (
	// NonceLen is the fixed byte width of the random nonce prefixing a
	// record.
	NonceLen = 64
	// TagLen is the fixed byte width of the authentication tag suffixing
	// a record.
	TagLen = 64
	// MinRecordLen is the smallest possible record: an empty plaintext.
	MinRecordLen = NonceLen + TagLen
)

// Encrypt derives a pair of session keys from a fresh random nonce and the
// password, masks plaintext with a KMACXOF256 keystream, and binds the
// plaintext with a KMACXOF256 tag. The returned record is
// nonce || ciphertext || tag.
func Encrypt(password, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("aead: reading nonce: %w", err)
	}

	key1, key2, err := deriveSessionKeys(nonce, password)
	if err != nil {
		return nil, err
	}

	ciphertext, err := maskWithKeystream(key1, plaintext)
	if err != nil {
		return nil, err
	}

	tag, err := keccak.KMACXOF256(key2, plaintext, 512, "SKA")
	if err != nil {
		return nil, fmt.Errorf("aead: computing tag: %w", err)
	}

	record := make([]byte, 0, NonceLen+len(ciphertext)+TagLen)
	record = append(record, nonce...)
	record = append(record, ciphertext...)
	record = append(record, tag...)
	return record, nil
}

// Decrypt splits record into its nonce, ciphertext, and tag, re-derives
// the session keys, recovers the plaintext, and reports whether the
// recomputed tag matches in constant time. The plaintext is returned even
// when valid is false, matching the original's behavior of surfacing the
// attempted recovery alongside the validity flag.
func Decrypt(password, record []byte) (plaintext []byte, valid bool, err error) {
	if len(record) < MinRecordLen {
		return nil, false, ErrMalformedRecord
	}

	nonce := record[:NonceLen]
	ciphertext := record[NonceLen : len(record)-TagLen]
	tag := record[len(record)-TagLen:]

	key1, key2, err := deriveSessionKeys(nonce, password)
	if err != nil {
		return nil, false, err
	}

	plaintext, err = maskWithKeystream(key1, ciphertext)
	if err != nil {
		return nil, false, err
	}

	wantTag, err := keccak.KMACXOF256(key2, plaintext, 512, "SKA")
	if err != nil {
		return nil, false, fmt.Errorf("aead: recomputing tag: %w", err)
	}

	valid = subtle.ConstantTimeCompare(tag, wantTag) == 1
	return plaintext, valid, nil
}

// deriveSessionKeys splits KMACXOF256(nonce||password, "", 1024, "S") into
// the masking key and the tagging key.
func deriveSessionKeys(nonce, password []byte) (key1, key2 []byte, err error) {
	seed := make([]byte, 0, len(nonce)+len(password))
	seed = append(seed, nonce...)
	seed = append(seed, password...)

	keys, err := keccak.KMACXOF256(seed, nil, 1024, "S")
	if err != nil {
		return nil, nil, fmt.Errorf("aead: deriving session keys: %w", err)
	}
	return keys[:64], keys[64:], nil
}

// maskWithKeystream XORs data with a KMACXOF256 keystream of matching
// length derived from key under the "SKE" domain.
func maskWithKeystream(key, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	mask, err := keccak.KMACXOF256(key, nil, 8*len(data), "SKE")
	if err != nil {
		return nil, fmt.Errorf("aead: deriving keystream: %w", err)
	}
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ mask[i]
	}
	return out, nil
}
