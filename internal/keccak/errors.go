package keccak

import "errors"

// ErrInvalidLength is returned when a derived function is asked for an
// output length that is not a positive multiple of 8 bits.
var ErrInvalidLength = errors.New("keccak: requested output length must be a positive multiple of 8 bits")
