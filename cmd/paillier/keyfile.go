package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/leafn/paillier/internal/secure"
	"github.com/leafn/paillier/pkg/paillier"
)

const publicSuffix = ".pub"

func writeKeyPair(path string, pk *paillier.PublicKey, sk *paillier.PrivateKey) error {
	priv, err := paillier.MarshalPrivateKey(sk)
	if err != nil {
		return err
	}
	defer secure.ZeroizeBytes(priv)
	pub, err := paillier.MarshalPublicKey(pk)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, priv, 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}
	if err := os.WriteFile(path+publicSuffix, pub, 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	return nil
}

// readPublicKey accepts either a public key file or a private key file.
func readPublicKey(path string) (*paillier.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	defer secure.ZeroizeBytes(data)
	if pk, err := paillier.UnmarshalPublicKey(data); err == nil {
		return pk, nil
	}
	sk, err := paillier.UnmarshalPrivateKey(data)
	if err != nil {
		return nil, err
	}
	return sk.PublicKey(), nil
}

func readPrivateKey(path string) (*paillier.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	defer secure.ZeroizeBytes(data)
	return paillier.UnmarshalPrivateKey(data)
}

func parseDecimal(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal integer", name, s)
	}
	return v, nil
}
