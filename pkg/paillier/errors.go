package paillier

import (
	"errors"
	"fmt"
)

var (
	// ErrOddBitLength indicates a modulus bit length that cannot be split into
	// two primes of equal width.
	ErrOddBitLength = errors.New("paillier: bit length must be even")

	// ErrBitLengthTooSmall indicates a modulus bit length below Config.MinBitLength.
	ErrBitLengthTooSmall = errors.New("paillier: bit length below configured minimum")

	// ErrInvalidConfig indicates a Config field with an unusable value.
	ErrInvalidConfig = errors.New("paillier: invalid config")

	// ErrInvalidPrimeWidth indicates a prime width smaller than two bits.
	ErrInvalidPrimeWidth = errors.New("paillier: prime width must be at least 2 bits")

	// ErrNoInverse indicates that mu has no modular inverse; the key cannot be built.
	ErrNoInverse = errors.New("paillier: no modular inverse")

	// ErrInvalidKey indicates parameters that do not form a consistent key.
	ErrInvalidKey = errors.New("paillier: invalid key parameters")

	// ErrDecode indicates a serialized key with a missing or malformed field.
	ErrDecode = errors.New("paillier: decode failure")

	// ErrMessageOutOfRange indicates a plaintext outside [0, n).
	ErrMessageOutOfRange = errors.New("paillier: message must be within [0, n)")

	// ErrInvalidRandomness indicates an encryption randomizer that is not a unit modulo n.
	ErrInvalidRandomness = errors.New("paillier: randomness must be a unit modulo n")

	// ErrInvalidCiphertext indicates a value that is not a ciphertext under the key.
	ErrInvalidCiphertext = errors.New("paillier: invalid ciphertext")

	// ErrNegativeScalar indicates a negative homomorphic multiplier.
	ErrNegativeScalar = errors.New("paillier: scalar must be non-negative")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("paillier.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError wraps err for op, leaving nil untouched.
func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// errorf creates a new Error whose cause is built with fmt.Errorf, so %w
// verbs keep sentinel errors reachable through errors.Is.
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
