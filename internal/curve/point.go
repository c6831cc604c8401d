package curve

import "math/big"

// Point is an affine point (x, y) on E_521. The zero Point is not valid;
// construct points via NewPoint, DecompressPoint, or PointFromBytes.
type Point struct {
	X, Y *big.Int
}

// Neutral returns the identity element (0, 1).
func Neutral() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// NewPoint constructs a point from already-reduced coordinates, validating
// it against the curve equation. The neutral element (0, 1) is accepted
// without running the general check, per the curve's documented edge case.
func NewPoint(x, y *big.Int) (Point, error) {
	x = new(big.Int).Mod(x, P)
	y = new(big.Int).Mod(y, P)

	if x.Sign() == 0 && y.Cmp(big.NewInt(1)) == 0 {
		return Point{X: x, Y: y}, nil
	}
	if !onCurve(x, y) {
		return Point{}, ErrNotOnCurve
	}
	return Point{X: x, Y: y}, nil
}

// onCurve reports whether x^2 + y^2 == 1 + d*x^2*y^2 (mod p).
func onCurve(x, y *big.Int) bool {
	x2 := new(big.Int).Mul(x, x)
	y2 := new(big.Int).Mul(y, y)

	lhs := new(big.Int).Add(x2, y2)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, D)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and q have the same reduced coordinates.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Negate returns (-x mod p, y).
func Negate(p Point) Point {
	x := new(big.Int).Neg(p.X)
	x.Mod(x, P)
	return Point{X: x, Y: new(big.Int).Set(p.Y)}
}

// Add returns p + q using the complete Edwards addition formula:
//
//	x3 = (x1*y2 + y1*x2) * (1 + d*x1*x2*y1*y2)^-1 mod p
//	y3 = (y1*y2 - x1*x2) * (1 - d*x1*x2*y1*y2)^-1 mod p
//
// The cross term x1*x2*y1*y2 is reduced mod p before being combined with d;
// skipping that reduction is a known bug in one variant of the original
// implementation this package is grounded on.
func Add(p, q Point) Point {
	xy := new(big.Int).Mul(p.X, q.X)
	xy.Mul(xy, p.Y)
	xy.Mul(xy, q.Y)
	xy.Mod(xy, P)

	dxy := new(big.Int).Mul(D, xy)

	num1 := new(big.Int).Mul(p.X, q.Y)
	t := new(big.Int).Mul(p.Y, q.X)
	num1.Add(num1, t)
	num1.Mod(num1, P)

	den1 := new(big.Int).Add(big.NewInt(1), dxy)
	den1.Mod(den1, P)
	den1.ModInverse(den1, P)

	x3 := new(big.Int).Mul(num1, den1)
	x3.Mod(x3, P)

	num2 := new(big.Int).Mul(p.Y, q.Y)
	t2 := new(big.Int).Mul(p.X, q.X)
	num2.Sub(num2, t2)
	num2.Mod(num2, P)

	den2 := new(big.Int).Sub(big.NewInt(1), dxy)
	den2.Mod(den2, P)
	den2.ModInverse(den2, P)

	y3 := new(big.Int).Mul(num2, den2)
	y3.Mod(y3, P)

	return Point{X: x3, Y: y3}
}

// ScalarMultiply returns p * k, reducing k mod the subgroup order R first
// (required both for termination and to keep the result in the
// prime-order subgroup regardless of the cofactor applied to k upstream).
// Uses double-and-add, most-significant-bit first; no constant-time
// hardening is provided.
func ScalarMultiply(p Point, k *big.Int) Point {
	kr := new(big.Int).Mod(k, R)
	res := Neutral()
	for i := kr.BitLen(); i >= 0; i-- {
		res = Add(res, res)
		if kr.Bit(i) == 1 {
			res = Add(res, p)
		}
	}
	return res
}
