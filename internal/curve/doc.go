// Package curve implements arithmetic on the Edwards curve E_521:
// x^2 + y^2 = 1 + d*x^2*y^2 (mod p), p = 2^521 - 1, d = -376014. Points are
// held in affine coordinates as ordinary *big.Int pairs; scalar
// multiplication uses double-and-add with no constant-time hardening, per
// the fidelity target this package is grounded on
// (_examples/original_source/src/crypto/schnorr/CurvePoint.java).
package curve
