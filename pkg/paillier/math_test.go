package paillier

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"
)

func TestL(t *testing.T) {
	n := big.NewInt(35)
	got, err := L(big.NewInt(1+3*35), n)
	if err != nil {
		t.Fatalf("L failed: %v", err)
	}
	if got.Int64() != 3 {
		t.Fatalf("expected 3, got %s", got)
	}

	if _, err := L(big.NewInt(37), n); err != ErrInvalidCiphertext {
		t.Fatalf("expected ErrInvalidCiphertext for inexact division, got %v", err)
	}
	if _, err := L(big.NewInt(0), n); err != ErrInvalidCiphertext {
		t.Fatalf("expected ErrInvalidCiphertext for zero, got %v", err)
	}
}

func TestLCM(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{4, 6, 12},
		{7, 5, 35},
		{10, 10, 10},
		{1, 9, 9},
	}
	for _, tc := range cases {
		got := lcm(big.NewInt(tc.a), big.NewInt(tc.b))
		if got.Int64() != tc.want {
			t.Errorf("lcm(%d, %d) = %s, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRandomBitsRespectsWidth(t *testing.T) {
	// An all-ones source must be masked down to exactly width bits.
	ones := bytes.NewReader(bytes.Repeat([]byte{0xff}, 64))
	for _, width := range []int{1, 5, 8, 13} {
		v, err := randomBits(ones, width)
		if err != nil {
			t.Fatalf("randomBits(%d) failed: %v", width, err)
		}
		if v.BitLen() != width {
			t.Errorf("randomBits(%d) produced %d bits", width, v.BitLen())
		}
	}
}

func TestRandomizerRange(t *testing.T) {
	n := big.NewInt(15)
	for i := 0; i < 200; i++ {
		r, err := randomizer(rand.Reader, n)
		if err != nil {
			t.Fatalf("randomizer failed: %v", err)
		}
		if r.Cmp(one) <= 0 || r.Cmp(n) >= 0 || !isUnit(r, n) {
			t.Fatalf("randomizer returned %s, want a unit in (1, 15)", r)
		}
	}
}

// TestGeneratorOrder checks the algebraic property Generator relies on:
// g^λ ≡ 1 (mod n) and L(g^λ mod n²) is invertible modulo n.
func TestGeneratorOrder(t *testing.T) {
	p, q := big.NewInt(1000003), big.NewInt(1000033)
	n := new(big.Int).Mul(p, q)
	n2 := new(big.Int).Mul(n, n)
	lambda := lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	for i := 0; i < 50; i++ {
		g, err := Generator(rand.Reader, n, n2)
		if err != nil {
			t.Fatalf("Generator failed: %v", err)
		}
		if g.Sign() <= 0 || g.Cmp(n2) >= 0 || !isUnit(g, n) {
			t.Fatalf("generator %s is not a unit in (0, n2)", g)
		}
		u, err := L(new(big.Int).Exp(g, lambda, n2), n)
		if err != nil {
			t.Fatalf("L(g^lambda) undefined: %v", err)
		}
		if new(big.Int).ModInverse(u, n) == nil {
			t.Fatalf("L(g^lambda) = %s has no inverse mod n", u)
		}
	}
}

func TestLockedReaderPassesThrough(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3})
	r := &lockedReader{r: src}
	buf := make([]byte, 3)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("unexpected bytes %v", buf)
	}
}
