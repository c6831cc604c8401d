package ec

import "errors"

// ErrAuthFailed is returned when a stored private key fails to
// authenticate under the supplied password. Signature verification
// reports failure as a boolean, not through this error.
var ErrAuthFailed = errors.New("ec: authentication failed")

// ErrMalformedSignature is returned when a signature is not exactly
// SigLen bytes.
var ErrMalformedSignature = errors.New("ec: malformed signature encoding")

// ErrMalformedCiphertext is returned when an ECDHIES record is too short
// to contain a serialized point and a tag.
var ErrMalformedCiphertext = errors.New("ec: malformed ciphertext")
