package keccak

import (
	"bytes"
	"testing"
)

func TestLeftEncodeZero(t *testing.T) {
	if got, want := leftEncode(0), []byte{1, 0}; !bytes.Equal(got, want) {
		t.Errorf("leftEncode(0) = %v, want %v", got, want)
	}
}

func TestLeftEncodeKnownValue(t *testing.T) {
	// left_encode(136) per SP 800-185 sec. 2.3.2 example: one length byte,
	// one value byte.
	if got, want := leftEncode(136), []byte{1, 136}; !bytes.Equal(got, want) {
		t.Errorf("leftEncode(136) = %v, want %v", got, want)
	}
}

func TestRightEncodeZero(t *testing.T) {
	if got, want := rightEncode(0), []byte{0, 1}; !bytes.Equal(got, want) {
		t.Errorf("rightEncode(0) = %v, want %v", got, want)
	}
}

func TestBytepadMultipleOfW(t *testing.T) {
	// len(leftEncode(4)) + len(s) already a multiple of 4: no padding added.
	s := []byte{0xAA, 0xBB}
	out := bytepad(s, 4)
	if len(out)%4 != 0 {
		t.Fatalf("bytepad output length %d not a multiple of 4", len(out))
	}
	if !bytes.HasPrefix(out, leftEncode(4)) {
		t.Errorf("bytepad(%v, 4) = %v, missing left_encode(4) prefix", s, out)
	}
}

func TestEncodeStringLengthPrefix(t *testing.T) {
	s := []byte("KMAC")
	out := encodeString(s)
	if !bytes.HasSuffix(out, s) {
		t.Errorf("encodeString(%q) = %v, missing suffix", s, out)
	}
	if !bytes.Equal(out[:len(out)-len(s)], leftEncode(uint64(len(s)*8))) {
		t.Errorf("encodeString(%q) prefix = %v, want left_encode(%d)", s, out[:len(out)-len(s)], len(s)*8)
	}
}
