package paillier

import (
	"io"
	"math/big"
)

// Generator picks the public generator g for the full key variant:
//
//	g = ((α·n − 1) · (β^n mod n²)) mod n²
//
// with α and β drawn uniformly from [0, n) and redrawn until each is a unit
// modulo n. Under that constraint g^λ ≡ 1 − λ·α·n (mod n²) for any even λ that
// is a multiple of the Carmichael exponent, so L(g^λ) = −λ·α mod n is
// invertible and decryption recovers the plaintext.
//
// The construction is not the textbook (1+n)^a·b^n generator. It is kept for
// compatibility with keys produced by earlier implementations; validate it
// against reference test vectors before relying on it in a new deployment.
func Generator(random io.Reader, n, n2 *big.Int) (*big.Int, error) {
	const op = "Generator"
	alpha, err := randomUnit(random, n)
	if err != nil {
		return nil, opError(op, err)
	}
	beta, err := randomUnit(random, n)
	if err != nil {
		return nil, opError(op, err)
	}

	g := new(big.Int).Mul(alpha, n)
	g.Sub(g, one)
	g.Mul(g, new(big.Int).Exp(beta, n, n2))
	g.Mod(g, n2)
	return g, nil
}
