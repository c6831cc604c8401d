package keccak

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

func TestSHA3Empty(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{256, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{512, "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	}
	for _, c := range cases {
		got, err := SHA3(nil, c.n)
		if err != nil {
			t.Fatalf("SHA3(nil, %d): %v", c.n, err)
		}
		want := mustHex(t, c.want)
		if !bytes.Equal(got, want) {
			t.Errorf("SHA3(nil, %d) = %x, want %x", c.n, got, want)
		}
	}
}

func TestSHAKE256Empty(t *testing.T) {
	got, err := SHAKE256(nil, 256)
	if err != nil {
		t.Fatalf("SHAKE256: %v", err)
	}
	want := mustHex(t, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f")
	if !bytes.Equal(got, want) {
		t.Errorf("SHAKE256(nil, 256) = %x, want %x", got, want)
	}
}

func TestSHA3_224_abc(t *testing.T) {
	got, err := SHA3([]byte("abc"), 224)
	if err != nil {
		t.Fatalf("SHA3: %v", err)
	}
	want := mustHex(t, "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf")
	if !bytes.Equal(got, want) {
		t.Errorf("SHA3-224(\"abc\") = %x, want %x", got, want)
	}
}

func TestSHAKE256_abc_512(t *testing.T) {
	got, err := SHAKE256([]byte("abc"), 512)
	if err != nil {
		t.Fatalf("SHAKE256: %v", err)
	}
	want := mustHex(t, "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739d5a15bef186a5386c75744c0527e1faa9f8726e462a12a4feb06bd8801e751e4")
	if !bytes.Equal(got, want) {
		t.Errorf("SHAKE256(\"abc\", 512) = %x, want %x", got, want)
	}
}

func TestKMACXOF256_SP800185Example4(t *testing.T) {
	key := mustHex(t, "404142434445464748494A4B4C4D4E4F505152535455565758595A5B5C5D5E5F")
	msg := mustHex(t, "00010203")
	got, err := KMACXOF256(key, msg, 512, "My Tagged Application")
	if err != nil {
		t.Fatalf("KMACXOF256: %v", err)
	}
	want := mustHex(t, "1755133F1534752AAD0748F2C706FB5C784512CAB835CD15676B16C0C6647FA96FAA7AF634A0BF8FF6DF39374FA00FAD9A39E322A7C92065A64EB1FB0801EB2B")
	if !bytes.Equal(got, want) {
		t.Errorf("KMACXOF256(...) = %x, want %x", got, want)
	}
}

func TestCSHAKE256FallsThroughToSHAKE(t *testing.T) {
	in := []byte("some input")
	shake, err := SHAKE256(in, 256)
	if err != nil {
		t.Fatalf("SHAKE256: %v", err)
	}
	cshake, err := CSHAKE256(in, 256, "", "")
	if err != nil {
		t.Fatalf("CSHAKE256: %v", err)
	}
	if !bytes.Equal(shake, cshake) {
		t.Errorf("CSHAKE256 with empty name/custom = %x, want SHAKE256 = %x", cshake, shake)
	}
}

func TestSHA3InvalidLength(t *testing.T) {
	if _, err := SHA3([]byte("x"), 300); err != ErrInvalidLength {
		t.Errorf("SHA3 with bitLen=300: err = %v, want ErrInvalidLength", err)
	}
}

// TestOutputLengthMustBeMultipleOf8 covers spec.md's InvalidLength
// definition, "output length not a positive multiple of 8", across every
// derived function, not just SHA3's fixed-size set.
func TestOutputLengthMustBeMultipleOf8(t *testing.T) {
	if _, err := SHAKE256(nil, 255); err != ErrInvalidLength {
		t.Errorf("SHAKE256(bitLen=255): err = %v, want ErrInvalidLength", err)
	}
	if _, err := CSHAKE256(nil, 255, "N", "S"); err != ErrInvalidLength {
		t.Errorf("CSHAKE256(bitLen=255): err = %v, want ErrInvalidLength", err)
	}
	if _, err := KMACXOF256([]byte("key"), nil, 255, "S"); err != ErrInvalidLength {
		t.Errorf("KMACXOF256(bitLen=255): err = %v, want ErrInvalidLength", err)
	}
}

func TestSpongeRejectsNonPositiveOutput(t *testing.T) {
	if _, err := Sponge([]byte{0x06}, 0, 512); err != ErrInvalidLength {
		t.Errorf("Sponge(outputBits=0): err = %v, want ErrInvalidLength", err)
	}
	if _, err := Sponge([]byte{0x06}, -8, 512); err != ErrInvalidLength {
		t.Errorf("Sponge(outputBits=-8): err = %v, want ErrInvalidLength", err)
	}
}

func TestSpongeRejectsNonByteAlignedOutput(t *testing.T) {
	if _, err := Sponge([]byte{0x06}, 5, 512); err != ErrInvalidLength {
		t.Errorf("Sponge(outputBits=5): err = %v, want ErrInvalidLength", err)
	}
	if _, err := Sponge([]byte{0x06}, 511, 512); err != ErrInvalidLength {
		t.Errorf("Sponge(outputBits=511): err = %v, want ErrInvalidLength", err)
	}
}
