package keccaktool

import (
	"github.com/sprocketlabs/keccaktool/internal/aead"
	"github.com/sprocketlabs/keccaktool/internal/curve"
	"github.com/sprocketlabs/keccaktool/internal/ec"
	"github.com/sprocketlabs/keccaktool/internal/keccak"
)

// Sentinel errors re-exported from the internal packages so that callers
// of this package can use errors.Is without importing internal/*.
var (
	ErrInvalidLength       = keccak.ErrInvalidLength
	ErrNotOnCurve          = curve.ErrNotOnCurve
	ErrNoSquareRoot        = curve.ErrNoSquareRoot
	ErrMalformedEncoding   = curve.ErrMalformedEncoding
	ErrMalformedRecord     = aead.ErrMalformedRecord
	ErrAuthFailed          = ec.ErrAuthFailed
	ErrMalformedSignature  = ec.ErrMalformedSignature
	ErrMalformedCiphertext = ec.ErrMalformedCiphertext
)
