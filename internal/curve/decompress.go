package curve

import "math/big"

// DecompressPoint recovers a point on E_521 from its x coordinate and the
// low bit of y, solving the curve equation for y^2 and taking a modular
// square root. p = 2^521 - 1 is congruent to 3 mod 4, so the square root
// of a quadratic residue v is v^((p+1)/4) mod p.
func DecompressPoint(x *big.Int, lsb bool) (Point, error) {
	x = new(big.Int).Mod(x, P)

	// y^2 = (1 - x^2) / (1 + 376014*x^2) mod p, i.e. (1 - x^2) / (1 - d*x^2).
	x2 := new(big.Int).Mul(x, x)
	x2.Mod(x2, P)

	num := new(big.Int).Sub(big.NewInt(1), x2)
	num.Mod(num, P)

	den := new(big.Int).Mul(D, x2)
	den.Sub(big.NewInt(1), den)
	den.Mod(den, P)

	denInv := new(big.Int).ModInverse(den, P)
	if denInv == nil {
		return Point{}, ErrNoSquareRoot
	}

	v := new(big.Int).Mul(num, denInv)
	v.Mod(v, P)

	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2)

	y := new(big.Int).Exp(v, exp, P)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, P)
	if check.Cmp(v) != 0 {
		return Point{}, ErrNoSquareRoot
	}

	if y.Bit(0) != boolToUint(lsb) {
		y.Sub(P, y)
	}

	return Point{X: x, Y: y}, nil
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	return 0
}
