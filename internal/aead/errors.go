package aead

import "errors"

// ErrMalformedRecord is returned when a record is too short to contain a
// nonce and a tag.
var ErrMalformedRecord = errors.New("aead: record too short to contain nonce and tag")
