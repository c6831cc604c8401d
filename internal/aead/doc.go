// Package aead implements password-based symmetric authenticated
// encryption keyed entirely through KMACXOF256, grounded on
// _examples/original_source/src/crypto/keccak/KCrypt.java. Records have
// the fixed layout nonce (64 B) || ciphertext || tag (64 B).
package aead
