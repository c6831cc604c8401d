package keccak

// Domain-separation suffix bytes, ref FIPS 202 sec. 6.1/6.2 and SP 800-185.
const (
	suffixSHA3     = 0x06
	suffixSHAKE    = 0x1f
	suffixCSHAKE   = 0x04
	cshakeRate     = 136 // bytepad width for cSHAKE/KMAC prefixes, capacity 512
)

// SHA3 computes the SHA3-n message digest of in, n in {224,256,384,512}.
func SHA3(in []byte, n int) ([]byte, error) {
	switch n {
	case 224, 256, 384, 512:
	default:
		return nil, ErrInvalidLength
	}
	return Sponge(withSuffix(in, suffixSHA3), n, 2*n)
}

// SHAKE256 computes the SHAKE256 extendable-output function of in,
// truncated to bitLen bits.
func SHAKE256(in []byte, bitLen int) ([]byte, error) {
	return Sponge(withSuffix(in, suffixSHAKE), bitLen, 512)
}

// CSHAKE256 computes cSHAKE256(in, bitLen, fnName, custom). When both
// fnName and custom are empty it falls through to plain SHAKE256.
func CSHAKE256(in []byte, bitLen int, fnName, custom string) ([]byte, error) {
	if fnName == "" && custom == "" {
		return SHAKE256(in, bitLen)
	}

	prefix := bytepad(append(encodeString([]byte(fnName)), encodeString([]byte(custom))...), cshakeRate)
	newIn := append(prefix, in...)
	return Sponge(withSuffix(newIn, suffixCSHAKE), bitLen, 512)
}

// KMACXOF256 computes the extendable-output KMAC over key and in, with the
// given customization string, ref SP 800-185 sec. 4.
func KMACXOF256(key, in []byte, bitLen int, custom string) ([]byte, error) {
	newIn := bytepad(encodeString(key), cshakeRate)
	newIn = append(newIn, in...)
	newIn = append(newIn, rightEncode(0)...)
	return CSHAKE256(newIn, bitLen, "KMAC", custom)
}

// withSuffix appends the single-byte domain separator to in without
// mutating the caller's slice.
func withSuffix(in []byte, suffix byte) []byte {
	out := make([]byte, len(in)+1)
	copy(out, in)
	out[len(in)] = suffix
	return out
}
