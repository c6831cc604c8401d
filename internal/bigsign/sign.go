package bigsign

import "math/big"

// FromBytes parses b as a big-endian, two's-complement signed integer. The
// high bit of the first byte determines the sign; an empty slice decodes
// to zero.
func FromBytes(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}

	magnitude := new(big.Int).SetBytes(b)
	if b[0]&0x80 == 0 {
		return magnitude
	}

	full := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
	return magnitude.Sub(magnitude, full)
}

// ToBytes renders v as a big-endian, two's-complement signed integer of
// exactly length bytes: left-padded with 0x00 when v is non-negative,
// sign-extended with 0xff when v is negative. Callers must choose length
// large enough to hold v; values produced by this package's own callers
// always do, by construction.
func ToBytes(v *big.Int, length int) []byte {
	out := make([]byte, length)

	if v.Sign() >= 0 {
		b := v.Bytes()
		copy(out[length-len(b):], b)
		return out
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*length))
	mod.Add(mod, v)
	b := mod.Bytes()
	for i := 0; i < length-len(b); i++ {
		out[i] = 0xff
	}
	copy(out[length-len(b):], b)
	return out
}

// MinimalBytes renders v as the shortest big-endian two's-complement
// encoding that round-trips through FromBytes, matching
// java.math.BigInteger.toByteArray(). Used for feeding a field element's
// raw value into a hash function, where the original implementation
// relies on that exact encoding.
func MinimalBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}
		return b
	}

	// -v-1 is the magnitude bound Java's bitLength() uses for negatives, so
	// that e.g. -128 encodes as the single byte 0x80.
	length := (new(big.Int).Sub(new(big.Int).Neg(v), big.NewInt(1)).BitLen() + 8) / 8
	for {
		b := ToBytes(v, length)
		if FromBytes(b).Cmp(v) == 0 {
			return b
		}
		length++
	}
}
