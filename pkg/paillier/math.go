package paillier

import "math/big"

var one = big.NewInt(1)

// L computes (x-1)/n. The division must be exact: a remainder means x is not
// congruent to 1 modulo n, which happens only when the input was not produced
// under the matching key.
func L(x, n *big.Int) (*big.Int, error) {
	if x.Sign() <= 0 {
		return nil, ErrInvalidCiphertext
	}
	q, r := new(big.Int).QuoRem(new(big.Int).Sub(x, one), n, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrInvalidCiphertext
	}
	return q, nil
}

// lcm returns a*b / gcd(a, b).
func lcm(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	return new(big.Int).Div(new(big.Int).Mul(a, b), gcd)
}

// isUnit reports whether gcd(x, n) == 1.
func isUnit(x, n *big.Int) bool {
	return new(big.Int).GCD(nil, nil, x, n).Cmp(one) == 0
}

func clone(x *big.Int) *big.Int {
	return new(big.Int).Set(x)
}
