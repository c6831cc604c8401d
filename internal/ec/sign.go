package ec

import (
	"math/big"

	"github.com/sprocketlabs/keccaktool/internal/bigsign"
	"github.com/sprocketlabs/keccaktool/internal/curve"
	"github.com/sprocketlabs/keccaktool/internal/keccak"
)

// hLen and zLen are the fixed byte widths of the two integers packed into
// a signature: h never exceeds 64 bytes (it is a 512-bit hash output),
// and z is reduced mod r so it fits, sign bit included, in 65.
const (
	hLen   = 64
	zLen   = 65
	SigLen = hLen + zLen
)

// SchnorrSign produces a non-interactive Schnorr signature of in under
// prvScalar. The nonce k is derived deterministically from prvScalar and
// the message via KMACXOF256, so signing the same message twice with the
// same key yields the same signature.
func SchnorrSign(prvScalar *big.Int, in []byte) ([]byte, error) {
	kBytes, err := keccak.KMACXOF256(bigsign.MinimalBytes(prvScalar), in, 512, "N")
	if err != nil {
		return nil, err
	}
	k := new(big.Int).Mul(bigsign.FromBytes(kBytes), big.NewInt(4))

	U := curve.ScalarMultiply(curve.G, k)

	hBytes, err := keccak.KMACXOF256(bigsign.MinimalBytes(U.X), in, 512, "T")
	if err != nil {
		return nil, err
	}
	h := bigsign.FromBytes(hBytes)

	z := new(big.Int).Mul(h, prvScalar)
	z.Sub(k, z)
	z.Mod(z, curve.R)

	return encodeSignature(h, z), nil
}

// SchnorrVerify reports whether sig is a valid signature of in under pub.
func SchnorrVerify(sig []byte, pub curve.Point, in []byte) (bool, error) {
	h, z, err := decodeSignature(sig)
	if err != nil {
		return false, err
	}

	U := curve.Add(curve.ScalarMultiply(curve.G, z), curve.ScalarMultiply(pub, h))

	hPrimeBytes, err := keccak.KMACXOF256(bigsign.MinimalBytes(U.X), in, 512, "T")
	if err != nil {
		return false, err
	}
	hPrime := bigsign.FromBytes(hPrimeBytes)

	return hPrime.Cmp(h) == 0, nil
}

// encodeSignature packs (h, z) into SigLen bytes, h occupying the first
// hLen bytes and z the last zLen, each sign-extended independently.
func encodeSignature(h, z *big.Int) []byte {
	out := make([]byte, SigLen)
	copy(out[:hLen], bigsign.ToBytes(h, hLen))
	copy(out[hLen:], bigsign.ToBytes(z, zLen))
	return out
}

// decodeSignature is the inverse of encodeSignature.
func decodeSignature(sig []byte) (h, z *big.Int, err error) {
	if len(sig) != SigLen {
		return nil, nil, ErrMalformedSignature
	}
	h = bigsign.FromBytes(sig[:hLen])
	z = bigsign.FromBytes(sig[hLen:])
	return h, z, nil
}
