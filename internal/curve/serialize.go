package curve

import "github.com/sprocketlabs/keccaktool/internal/bigsign"

// Bytes serializes p as two fixed-width CoordByteLen big-endian two's
// complement coordinates, x followed by y. Coordinates are always reduced
// mod p and therefore non-negative, but two's complement encoding is used
// for consistency with the rest of the toolkit's integer encoding.
func (p Point) Bytes() []byte {
	out := make([]byte, StdBlen)
	copy(out[:CoordByteLen], bigsign.ToBytes(p.X, CoordByteLen))
	copy(out[CoordByteLen:], bigsign.ToBytes(p.Y, CoordByteLen))
	return out
}

// PointFromBytes parses the encoding produced by Point.Bytes, validating
// the result against the curve equation.
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != StdBlen {
		return Point{}, ErrMalformedEncoding
	}
	x := bigsign.FromBytes(b[:CoordByteLen])
	y := bigsign.FromBytes(b[CoordByteLen:])
	return NewPoint(x, y)
}
