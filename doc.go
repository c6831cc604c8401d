// Package keccaktool provides a Keccak-p[1600,24] sponge library, E_521
// Edwards-curve arithmetic, and the password-based symmetric and
// ECDHIES/Schnorr asymmetric protocols built on top of them.
//
// The hash and curve primitives live in internal/keccak and internal/curve;
// the composed protocols live in internal/aead and internal/ec. This
// package is a thin façade over internal/ec and internal/aead adding the
// key-file plumbing the command-line tools under cmd/ need: reading and
// writing key files with diagnostic errors, and loading or persisting key
// pairs.
//
// Basic usage:
//
//	kp, err := keccaktool.DeriveKeyPair([]byte("password"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	record, err := keccaktool.EncryptEC(kp.Pub, []byte("plaintext"))
//	if err != nil {
//	    log.Fatal(err)
//	}
package keccaktool
