// Package keccak implements the Keccak-p[1600,24] permutation and the
// sponge construction it underlies, together with the NIST-defined
// functions built on top of that sponge: SHA3-{224,256,384,512}, SHAKE256,
// cSHAKE256, and KMACXOF256 (FIPS 202, SP 800-185).
//
// The permutation and sponge are implemented from scratch rather than
// delegated to an existing library; bit-exact conformance with the
// published standards is the point of this package, not an incidental
// property of it.
package keccak
