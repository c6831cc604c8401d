package keccaktool

import "github.com/sprocketlabs/keccaktool/internal/keccak"

// SHA3 computes the SHA3-n message digest of in, n in {224,256,384,512}.
func SHA3(in []byte, n int) ([]byte, error) {
	return keccak.SHA3(in, n)
}

// SHAKE256 computes the SHAKE256 extendable-output function of in,
// truncated to bitLen bits.
func SHAKE256(in []byte, bitLen int) ([]byte, error) {
	return keccak.SHAKE256(in, bitLen)
}

// CSHAKE256 computes cSHAKE256(in, bitLen, fnName, custom).
func CSHAKE256(in []byte, bitLen int, fnName, custom string) ([]byte, error) {
	return keccak.CSHAKE256(in, bitLen, fnName, custom)
}

// KMACXOF256 computes the extendable-output KMAC over key and in under
// the given customization string.
func KMACXOF256(key, in []byte, bitLen int, custom string) ([]byte, error) {
	return keccak.KMACXOF256(key, in, bitLen, custom)
}
