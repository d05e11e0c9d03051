package paillier

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// lockedReader serializes reads so one entropy source can feed the concurrent
// p and q searches.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// randomBits returns a uniformly random integer of at most width bits.
func randomBits(random io.Reader, width int) (*big.Int, error) {
	buf := make([]byte, (width+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	// Clear the excess high bits of the leading byte.
	if extra := len(buf)*8 - width; extra > 0 {
		buf[0] &= byte(0xff >> extra)
	}
	return new(big.Int).SetBytes(buf), nil
}

// randomUnit draws x uniformly from [0, n) until gcd(x, n) == 1.
func randomUnit(random io.Reader, n *big.Int) (*big.Int, error) {
	for {
		x, err := rand.Int(random, n)
		if err != nil {
			return nil, fmt.Errorf("read entropy: %w", err)
		}
		if isUnit(x, n) {
			return x, nil
		}
	}
}

// randomizer draws the encryption randomness r uniformly from (1, n) with
// gcd(r, n) == 1.
func randomizer(random io.Reader, n *big.Int) (*big.Int, error) {
	for {
		r, err := randomUnit(random, n)
		if err != nil {
			return nil, err
		}
		if r.Cmp(one) > 0 {
			return r, nil
		}
	}
}
