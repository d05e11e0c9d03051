package paillier

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// PublicKey is an immutable Paillier public key (n, n², g). Values are only
// produced by GenerateRandomKeys, NewPublicKey and the decoders, so a
// *PublicKey always satisfies n2 == n*n and gcd(g, n) == 1. It is safe for
// concurrent use.
type PublicKey struct {
	n  *big.Int
	n2 *big.Int
	g  *big.Int
}

// NewPublicKey builds a public key from the modulus n and generator g.
func NewPublicKey(n, g *big.Int) (*PublicKey, error) {
	const op = "NewPublicKey"
	if n == nil {
		return nil, errorf(op, "%w: nil modulus", ErrInvalidKey)
	}
	return newPublicKey(op, n, new(big.Int).Mul(n, n), g)
}

func newPublicKey(op string, n, n2, g *big.Int) (*PublicKey, error) {
	switch {
	case n == nil || n2 == nil || g == nil:
		return nil, errorf(op, "%w: nil parameter", ErrInvalidKey)
	case n.Cmp(one) <= 0:
		return nil, errorf(op, "%w: modulus must be greater than 1", ErrInvalidKey)
	case n2.Cmp(new(big.Int).Mul(n, n)) != 0:
		return nil, errorf(op, "%w: n2 != n*n", ErrInvalidKey)
	case g.Sign() <= 0 || g.Cmp(n2) >= 0:
		return nil, errorf(op, "%w: generator outside (0, n2)", ErrInvalidKey)
	case !isUnit(g, n):
		return nil, errorf(op, "%w: generator is not a unit modulo n2", ErrInvalidKey)
	}
	return &PublicKey{n: clone(n), n2: clone(n2), g: clone(g)}, nil
}

// N returns a copy of the modulus.
func (pk *PublicKey) N() *big.Int { return clone(pk.n) }

// N2 returns a copy of n², the ciphertext modulus.
func (pk *PublicKey) N2() *big.Int { return clone(pk.n2) }

// G returns a copy of the generator.
func (pk *PublicKey) G() *big.Int { return clone(pk.g) }

// BitLen returns the bit length of the modulus.
func (pk *PublicKey) BitLen() int { return pk.n.BitLen() }

// Equal reports whether both keys carry the same (n, n2, g).
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.n.Cmp(other.n) == 0 && pk.n2.Cmp(other.n2) == 0 && pk.g.Cmp(other.g) == 0
}

// Encrypt returns c = g^m · r^n mod n² for a fresh random r in (1, n).
func (pk *PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	_, c, err := pk.encrypt("Encrypt", rand.Reader, m)
	return c, err
}

// EncryptForZKP encrypts like Encrypt and also returns the randomness r, so
// the caller can later prove knowledge of (m, r).
func (pk *PublicKey) EncryptForZKP(m *big.Int) (r, c *big.Int, err error) {
	return pk.encrypt("EncryptForZKP", rand.Reader, m)
}

func (pk *PublicKey) encrypt(op string, random io.Reader, m *big.Int) (*big.Int, *big.Int, error) {
	if err := pk.checkMessage(m); err != nil {
		return nil, nil, opError(op, err)
	}
	r, err := randomizer(random, pk.n)
	if err != nil {
		return nil, nil, opError(op, err)
	}
	return r, pk.rawEncrypt(m, r), nil
}

// EncryptWithR deterministically encrypts m with caller-supplied randomness r.
// r must lie in (0, n) and be coprime to n; anything else fails with
// ErrInvalidRandomness.
func (pk *PublicKey) EncryptWithR(m, r *big.Int) (*big.Int, error) {
	const op = "EncryptWithR"
	if err := pk.checkMessage(m); err != nil {
		return nil, opError(op, err)
	}
	if r == nil || r.Sign() <= 0 || r.Cmp(pk.n) >= 0 || !isUnit(r, pk.n) {
		return nil, opError(op, ErrInvalidRandomness)
	}
	return pk.rawEncrypt(m, r), nil
}

func (pk *PublicKey) rawEncrypt(m, r *big.Int) *big.Int {
	var gm *big.Int
	if pk.isSimple() {
		// (n+1)^m ≡ 1 + m·n (mod n²)
		gm = new(big.Int).Mul(m, pk.n)
		gm.Add(gm, one)
		gm.Mod(gm, pk.n2)
	} else {
		gm = new(big.Int).Exp(pk.g, m, pk.n2)
	}
	c := new(big.Int).Exp(r, pk.n, pk.n2)
	c.Mul(c, gm)
	return c.Mod(c, pk.n2)
}

func (pk *PublicKey) isSimple() bool {
	return new(big.Int).Sub(pk.g, pk.n).Cmp(one) == 0
}

func (pk *PublicKey) checkMessage(m *big.Int) error {
	if m == nil || m.Sign() < 0 || m.Cmp(pk.n) >= 0 {
		return ErrMessageOutOfRange
	}
	return nil
}

// VerifyCipher checks that c is a unit in (0, n²).
func (pk *PublicKey) VerifyCipher(c *big.Int) error {
	if c == nil || c.Sign() <= 0 || c.Cmp(pk.n2) >= 0 || !isUnit(c, pk.n) {
		return ErrInvalidCiphertext
	}
	return nil
}

// AddCiphers multiplies ciphertexts modulo n². The result decrypts to the sum
// of the plaintexts modulo n.
func (pk *PublicKey) AddCiphers(ciphertexts ...*big.Int) (*big.Int, error) {
	const op = "AddCiphers"
	if len(ciphertexts) == 0 {
		return nil, errorf(op, "%w: no ciphertexts", ErrInvalidCiphertext)
	}
	sum := big.NewInt(1)
	for i, c := range ciphertexts {
		if err := pk.VerifyCipher(c); err != nil {
			return nil, errorf(op, "ciphertext %d: %w", i, err)
		}
		sum.Mul(sum, c)
		sum.Mod(sum, pk.n2)
	}
	return sum, nil
}

// AddPlain returns c · g^m mod n², which decrypts to D(c) + m mod n.
func (pk *PublicKey) AddPlain(c, m *big.Int) (*big.Int, error) {
	const op = "AddPlain"
	if err := pk.VerifyCipher(c); err != nil {
		return nil, opError(op, err)
	}
	if err := pk.checkMessage(m); err != nil {
		return nil, opError(op, err)
	}
	out := new(big.Int).Exp(pk.g, m, pk.n2)
	out.Mul(out, c)
	return out.Mod(out, pk.n2), nil
}

// MulScalar returns c^k mod n², which decrypts to k · D(c) mod n.
func (pk *PublicKey) MulScalar(c, k *big.Int) (*big.Int, error) {
	const op = "MulScalar"
	if err := pk.VerifyCipher(c); err != nil {
		return nil, opError(op, err)
	}
	if k == nil || k.Sign() < 0 {
		return nil, opError(op, ErrNegativeScalar)
	}
	return new(big.Int).Exp(c, k, pk.n2), nil
}

// Fingerprint returns the hex SHA3-256 digest of the length-prefixed n, n2
// and g encodings. It identifies a key in logs without exposing it.
func (pk *PublicKey) Fingerprint() string {
	h := sha3.New256()
	var size [4]byte
	for _, v := range []*big.Int{pk.n, pk.n2, pk.g} {
		b := v.Bytes()
		binary.BigEndian.PutUint32(size[:], uint32(len(b)))
		h.Write(size[:])
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}
