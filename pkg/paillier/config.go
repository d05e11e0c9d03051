package paillier

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/leafn/paillier/pkg/logging"
)

// DefaultMinBitLength is the smallest modulus accepted by GenerateRandomKeys
// when Config.MinBitLength is left at zero.
const DefaultMinBitLength = 512

// smallestBitLength is the floor below which no configuration is honoured. At
// 4 bits the only 2-bit prime is 3, so p and q can never differ; at 6 bits the
// pair {5, 7} always completes.
const smallestBitLength = 6

// Config tunes key generation. The zero value is ready to use.
type Config struct {
	// MinBitLength is the smallest modulus bit length GenerateRandomKeys will
	// accept. Zero selects DefaultMinBitLength, negative values are rejected
	// and values below 6 are raised to 6. Lowering it is only meant for
	// tests that need toy key sizes.
	MinBitLength int

	// Random is the entropy source. Nil selects crypto/rand.Reader. Production
	// callers must not substitute a non-cryptographic reader.
	Random io.Reader

	// Logger receives debug events. Nil discards them.
	Logger logging.Logger
}

func (c *Config) minBitLength() (int, error) {
	switch {
	case c == nil || c.MinBitLength == 0:
		return DefaultMinBitLength, nil
	case c.MinBitLength < 0:
		return 0, fmt.Errorf("%w: MinBitLength %d is negative", ErrInvalidConfig, c.MinBitLength)
	}
	return max(c.MinBitLength, smallestBitLength), nil
}

func (c *Config) random() io.Reader {
	if c == nil || c.Random == nil {
		return rand.Reader
	}
	return c.Random
}

func (c *Config) logger() logging.Logger {
	if c == nil || c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
