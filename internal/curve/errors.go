package curve

import "errors"

var (
	// ErrNotOnCurve is returned when a deserialized (x, y) pair fails the
	// curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on E_521")

	// ErrNoSquareRoot is returned when point decompression is requested
	// for an x coordinate that has no corresponding y.
	ErrNoSquareRoot = errors.New("curve: no square root exists for the given x")

	// ErrMalformedEncoding is returned when a byte slice has the wrong
	// length to be a serialized point.
	ErrMalformedEncoding = errors.New("curve: malformed point encoding")
)
