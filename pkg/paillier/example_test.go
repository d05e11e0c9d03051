package paillier_test

import (
	"context"
	"fmt"
	"log"
	"math/big"

	"github.com/leafn/paillier/pkg/paillier"
)

// Example encrypts two values, adds them under encryption and decrypts the sum.
func Example() {
	ctx := context.Background()
	pk, sk, err := paillier.GenerateRandomKeys(ctx, 512, true, nil)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}

	c1, err := pk.Encrypt(big.NewInt(5))
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	c2, err := pk.Encrypt(big.NewInt(7))
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}

	sum, err := pk.AddCiphers(c1, c2)
	if err != nil {
		log.Fatalf("add failed: %v", err)
	}
	m, err := sk.Decrypt(sum)
	if err != nil {
		log.Fatalf("decrypt failed: %v", err)
	}
	fmt.Println(m)
	// Output:
	// 12
}

// ExamplePublicKey_EncryptForZKP shows how the randomness returned for a proof
// reproduces the ciphertext.
func ExamplePublicKey_EncryptForZKP() {
	pk, _, err := paillier.GenerateRandomKeys(context.Background(), 512, false, nil)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}

	m := big.NewInt(42)
	r, c, err := pk.EncryptForZKP(m)
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	again, err := pk.EncryptWithR(m, r)
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	fmt.Println(c.Cmp(again) == 0)
	// Output:
	// true
}
