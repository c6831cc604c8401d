// Package ec composes internal/curve, internal/keccak, and internal/aead
// into password-derived EC key pairs, ECDHIES-style asymmetric encryption,
// and Schnorr-style signatures over E_521, grounded on
// _examples/original_source/src/crypto/schnorr/ECKeyPair.java and
// _examples/original_source/src/crypto/EC/{ECCrypt,ECSign}.java.
package ec
