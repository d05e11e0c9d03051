package paillier

import (
	"context"
	"io"
	"math/big"
)

// PrimalityRounds is the number of Miller-Rabin rounds run on every prime
// candidate. Each round lets a composite through with probability at most 1/4,
// so 64 rounds bound the false-positive rate by 2^-128. math/big also applies
// a Baillie-PSW test on top of the rounds.
const PrimalityRounds = 64

// GeneratePrime returns a probable prime of exactly width bits. Candidates are
// drawn uniformly with the top bit set (to fix the width) and the bottom bit
// set (to make them odd) until one passes PrimalityRounds rounds of
// Miller-Rabin. The loop checks ctx between candidates.
func GeneratePrime(ctx context.Context, random io.Reader, width int) (*big.Int, error) {
	const op = "GeneratePrime"
	if width < 2 {
		return nil, errorf(op, "%w: got %d", ErrInvalidPrimeWidth, width)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, opError(op, err)
		}
		candidate, err := randomBits(random, width)
		if err != nil {
			return nil, opError(op, err)
		}
		candidate.SetBit(candidate, width-1, 1)
		candidate.SetBit(candidate, 0, 1)
		if candidate.ProbablyPrime(PrimalityRounds) {
			return candidate, nil
		}
	}
}
