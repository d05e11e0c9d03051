package paillier

import (
	"context"
	"io"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/leafn/paillier/pkg/logging"
)

// GenerateRandomKeys creates a key pair whose modulus n has exactly bitLength
// bits. bitLength must be even and at least cfg.MinBitLength.
//
// With simpleVariant set the generator is g = n+1, λ = (p-1)(q-1) and
// μ = λ⁻¹ mod n. Otherwise g comes from Generator, λ = lcm(p-1, q-1) and
// μ = L(g^λ mod n²)⁻¹ mod n.
//
// Primes and moduli that miss the requested width are redrawn internally;
// the only errors are invalid parameters, entropy failures, ctx cancellation
// and ErrNoInverse.
func GenerateRandomKeys(ctx context.Context, bitLength int, simpleVariant bool, cfg *Config) (*PublicKey, *PrivateKey, error) {
	const op = "GenerateRandomKeys"
	if bitLength%2 != 0 {
		return nil, nil, errorf(op, "%w: got %d", ErrOddBitLength, bitLength)
	}
	minBits, err := cfg.minBitLength()
	if err != nil {
		return nil, nil, opError(op, err)
	}
	if bitLength < minBits {
		return nil, nil, errorf(op, "%w: got %d, minimum %d", ErrBitLengthTooSmall, bitLength, minBits)
	}

	random := &lockedReader{r: cfg.random()}
	logger := cfg.logger().With("op", op, "bits", bitLength, "simple", simpleVariant)

	p, q, n, attempts, err := generateModulus(ctx, random, bitLength)
	if err != nil {
		return nil, nil, opError(op, err)
	}

	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	n2 := new(big.Int).Mul(n, n)

	var g, lambda, mu *big.Int
	if simpleVariant {
		g = new(big.Int).Add(n, one)
		lambda = new(big.Int).Mul(pMinus1, qMinus1)
		mu = new(big.Int).ModInverse(lambda, n)
	} else {
		g, err = Generator(random, n, n2)
		if err != nil {
			return nil, nil, opError(op, err)
		}
		lambda = lcm(pMinus1, qMinus1)
		u, lerr := L(new(big.Int).Exp(g, lambda, n2), n)
		if lerr != nil {
			return nil, nil, errorf(op, "%w: L(g^lambda) is not defined", ErrNoInverse)
		}
		mu = new(big.Int).ModInverse(u, n)
	}
	if mu == nil {
		return nil, nil, errorf(op, "%w: mu", ErrNoInverse)
	}

	pk := &PublicKey{n: n, n2: n2, g: g}
	sk := &PrivateKey{lambda: lambda, mu: mu, p: p, q: q, pk: pk}

	logger.Debug(ctx, "generated key pair",
		"attempts", attempts,
		"fingerprint", pk.Fingerprint(),
		logging.Secret("p", p),
		logging.Secret("q", q),
	)
	return pk, sk, nil
}

// generateModulus draws prime pairs of bitLength/2 bits until their product has
// exactly bitLength bits and the primes differ. It reports how many pairs were
// drawn.
func generateModulus(ctx context.Context, random io.Reader, bitLength int) (p, q, n *big.Int, attempts int, err error) {
	width := bitLength / 2
	for {
		if err = ctx.Err(); err != nil {
			return nil, nil, nil, attempts, err
		}
		attempts++
		p, q, err = generatePrimePair(ctx, random, width)
		if err != nil {
			return nil, nil, nil, attempts, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n = new(big.Int).Mul(p, q)
		if n.BitLen() == bitLength {
			return p, q, n, attempts, nil
		}
	}
}

// generatePrimePair searches for p and q concurrently.
func generatePrimePair(ctx context.Context, random io.Reader, width int) (*big.Int, *big.Int, error) {
	var p, q *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = GeneratePrime(gctx, random, width)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = GeneratePrime(gctx, random, width)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
