package paillier

import "math/big"

// PrivateKey is an immutable Paillier private key. It shares the
// corresponding *PublicKey, which supplies n and n² to decryption. p and q are
// retained for callers that need them (CRT decryption, proofs) but Decrypt
// does not use them.
type PrivateKey struct {
	lambda *big.Int
	mu     *big.Int
	p      *big.Int
	q      *big.Int
	pk     *PublicKey
}

// NewPrivateKey assembles a private key from its parts and verifies that they
// belong together: p·q == n, λ is a multiple of lcm(p-1, q-1) and
// μ·L(g^λ mod n²) ≡ 1 (mod n).
func NewPrivateKey(lambda, mu, p, q *big.Int, pk *PublicKey) (*PrivateKey, error) {
	const op = "NewPrivateKey"
	if lambda == nil || mu == nil || p == nil || q == nil || pk == nil {
		return nil, errorf(op, "%w: nil parameter", ErrInvalidKey)
	}
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 || new(big.Int).Mul(p, q).Cmp(pk.n) != 0 {
		return nil, errorf(op, "%w: p*q != n", ErrInvalidKey)
	}
	if lambda.Sign() <= 0 || mu.Sign() <= 0 || mu.Cmp(pk.n) >= 0 {
		return nil, errorf(op, "%w: lambda or mu out of range", ErrInvalidKey)
	}
	carmichael := lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	if new(big.Int).Mod(lambda, carmichael).Sign() != 0 {
		return nil, errorf(op, "%w: lambda is not a multiple of lcm(p-1, q-1)", ErrInvalidKey)
	}
	u, err := L(new(big.Int).Exp(pk.g, lambda, pk.n2), pk.n)
	if err != nil {
		return nil, errorf(op, "%w: g^lambda is not 1 mod n", ErrInvalidKey)
	}
	check := new(big.Int).Mul(u, mu)
	if check.Mod(check, pk.n).Cmp(one) != 0 {
		return nil, errorf(op, "%w: mu is not the inverse of L(g^lambda)", ErrInvalidKey)
	}
	return &PrivateKey{
		lambda: clone(lambda),
		mu:     clone(mu),
		p:      clone(p),
		q:      clone(q),
		pk:     pk,
	}, nil
}

// PublicKey returns the public half of the key pair.
func (sk *PrivateKey) PublicKey() *PublicKey { return sk.pk }

// Lambda returns a copy of λ.
func (sk *PrivateKey) Lambda() *big.Int { return clone(sk.lambda) }

// Mu returns a copy of μ.
func (sk *PrivateKey) Mu() *big.Int { return clone(sk.mu) }

// P returns a copy of the first prime factor.
func (sk *PrivateKey) P() *big.Int { return clone(sk.p) }

// Q returns a copy of the second prime factor.
func (sk *PrivateKey) Q() *big.Int { return clone(sk.q) }

// Equal reports whether both keys carry identical fields, public key included.
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if sk == nil || other == nil {
		return sk == other
	}
	return sk.lambda.Cmp(other.lambda) == 0 &&
		sk.mu.Cmp(other.mu) == 0 &&
		sk.p.Cmp(other.p) == 0 &&
		sk.q.Cmp(other.q) == 0 &&
		sk.pk.Equal(other.pk)
}

// Decrypt computes m = L(c^λ mod n²) · μ mod n. It rejects c outside [0, n²)
// and any c for which L is not an exact division, both with
// ErrInvalidCiphertext.
func (sk *PrivateKey) Decrypt(c *big.Int) (*big.Int, error) {
	const op = "Decrypt"
	n, n2 := sk.pk.n, sk.pk.n2
	if c == nil || c.Sign() < 0 || c.Cmp(n2) >= 0 {
		return nil, errorf(op, "%w: outside [0, n2)", ErrInvalidCiphertext)
	}
	u, err := L(new(big.Int).Exp(c, sk.lambda, n2), n)
	if err != nil {
		return nil, errorf(op, "%w: not produced under this key", err)
	}
	m := u.Mul(u, sk.mu)
	return m.Mod(m, n), nil
}
