// Package bigsign implements the two's-complement signed big-integer byte
// encoding used throughout the curve and signature code: parsing a byte
// slice as a signed integer (the sign bit is the high bit of the first
// byte), and rendering an integer back into a fixed-width or minimal
// two's-complement byte slice. This mirrors java.math.BigInteger's
// byte[]-constructor and toByteArray() semantics, which the original
// implementation this package is derived from relies on directly.
package bigsign
