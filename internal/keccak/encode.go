package keccak

// Encoding helpers from NIST SP 800-185 sec. 2.3, used to build the
// domain-separated inputs consumed by cSHAKE256 and KMACXOF256.

// encodeInt renders x as the minimal number of big-endian bytes such that
// x < 2^(8*len(out)), with a single zero byte for x == 0.
func encodeInt(x uint64) []byte {
	if x == 0 {
		return []byte{0}
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(x)
		x >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, buf[i:])
	return out
}

// leftEncode returns left_encode(x): the byte length of the minimal
// encoding of x, followed by that encoding.
func leftEncode(x uint64) []byte {
	enc := encodeInt(x)
	return append([]byte{byte(len(enc))}, enc...)
}

// rightEncode returns right_encode(x): the minimal encoding of x, followed
// by its byte length.
func rightEncode(x uint64) []byte {
	enc := encodeInt(x)
	return append(enc, byte(len(enc)))
}

// encodeString returns encode_string(s) = left_encode(|s|*8) || s.
func encodeString(s []byte) []byte {
	return append(leftEncode(uint64(len(s))*8), s...)
}

// bytepad returns bytepad(s, w): left_encode(w) || s, zero-padded so the
// total length is a multiple of w.
func bytepad(s []byte, w int) []byte {
	z := append(leftEncode(uint64(w)), s...)
	if rem := len(z) % w; rem != 0 {
		z = append(z, make([]byte, w-rem)...)
	}
	return z
}
