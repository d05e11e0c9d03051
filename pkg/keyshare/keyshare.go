package keyshare

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/leafn/paillier/pkg/paillier"
)

var (
	// ErrModulusTooSmall indicates a Paillier modulus that could wrap the sum of the shares.
	ErrModulusTooSmall = errors.New("keyshare: paillier modulus too small for share count")

	// ErrNoShares indicates Combine was called without shares.
	ErrNoShares = errors.New("keyshare: no shares")

	// ErrShareMismatch indicates a decrypted key that does not match the published point.
	ErrShareMismatch = errors.New("keyshare: decrypted key does not match public point")

	// ErrZeroKey indicates shares that sum to zero modulo the group order.
	ErrZeroKey = errors.New("keyshare: combined key is zero")
)

// EncryptedShare is a Paillier ciphertext of a secp256k1 scalar together with
// the scalar's public point.
type EncryptedShare struct {
	Ciphertext *big.Int
	Public     *btcec.PublicKey
	count      int
}

// Count returns how many original shares were combined into s.
func (s *EncryptedShare) Count() int {
	if s.count == 0 {
		return 1
	}
	return s.count
}

// Encrypt encrypts share under pk.
func Encrypt(pk *paillier.PublicKey, share *btcec.PrivateKey) (*EncryptedShare, error) {
	if err := checkModulus(pk, 1); err != nil {
		return nil, err
	}
	m := new(big.Int).SetBytes(share.Serialize())
	c, err := pk.Encrypt(m)
	if err != nil {
		return nil, fmt.Errorf("encrypt share: %w", err)
	}
	return &EncryptedShare{Ciphertext: c, Public: share.PubKey(), count: 1}, nil
}

// Combine adds encrypted shares under pk. The result encrypts the sum of the
// share scalars and carries the sum of their public points.
func Combine(pk *paillier.PublicKey, shares ...*EncryptedShare) (*EncryptedShare, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	total := 0
	ciphertexts := make([]*big.Int, len(shares))
	var sum btcec.JacobianPoint
	for i, s := range shares {
		total += s.Count()
		ciphertexts[i] = s.Ciphertext

		var point btcec.JacobianPoint
		s.Public.AsJacobian(&point)
		if i == 0 {
			sum = point
			continue
		}
		btcec.AddNonConst(&sum, &point, &sum)
	}
	if err := checkModulus(pk, total); err != nil {
		return nil, err
	}

	c, err := pk.AddCiphers(ciphertexts...)
	if err != nil {
		return nil, fmt.Errorf("combine shares: %w", err)
	}
	sum.ToAffine()
	return &EncryptedShare{
		Ciphertext: c,
		Public:     btcec.NewPublicKey(&sum.X, &sum.Y),
		count:      total,
	}, nil
}

// Decrypt recovers the secp256k1 private key held in s and checks it against
// s.Public.
func Decrypt(sk *paillier.PrivateKey, s *EncryptedShare) (*btcec.PrivateKey, error) {
	m, err := sk.Decrypt(s.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt share: %w", err)
	}
	m.Mod(m, btcec.S256().N)
	if m.Sign() == 0 {
		return nil, ErrZeroKey
	}

	priv, _ := btcec.PrivKeyFromBytes(m.FillBytes(make([]byte, 32)))
	if !priv.PubKey().IsEqual(s.Public) {
		priv.Zero()
		return nil, ErrShareMismatch
	}
	return priv, nil
}

func checkModulus(pk *paillier.PublicKey, count int) error {
	bound := new(big.Int).Mul(btcec.S256().N, big.NewInt(int64(count)))
	if pk.N().Cmp(bound) <= 0 {
		return fmt.Errorf("%w: need n > %d * order", ErrModulusTooSmall, count)
	}
	return nil
}
