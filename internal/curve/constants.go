package curve

import "math/big"

// CoordByteLen is the fixed byte width of one serialized coordinate:
// ceil(521/8) bytes.
const CoordByteLen = 66

// StdBlen is the fixed byte width of a serialized point: two coordinates.
const StdBlen = 2 * CoordByteLen

var (
	// P is the Mersenne prime modulus of E_521: 2^521 - 1.
	P = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))

	// D is the curve parameter of E_521: x^2 + y^2 = 1 + d*x^2*y^2.
	D = big.NewInt(-376014)

	// R is the prime order of the subgroup generated by G:
	// 2^519 - 337554763258501705789107630418782636071904961214051226618635150085779108655765.
	R = mustComputeR("337554763258501705789107630418782636071904961214051226618635150085779108655765")
)

func mustComputeR(subtrahend string) *big.Int {
	v, ok := new(big.Int).SetString(subtrahend, 10)
	if !ok {
		panic("curve: invalid constant " + subtrahend)
	}
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 519), v)
}

// G is the base point of E_521: x = 4, with the even (lsb = 0) y root.
var G = mustBasePoint()

func mustBasePoint() Point {
	p, err := DecompressPoint(big.NewInt(4), false)
	if err != nil {
		panic("curve: failed to derive base point: " + err.Error())
	}
	return p
}
