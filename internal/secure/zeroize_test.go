package secure

import "testing"

func TestZeroizeBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	ZeroizeBytes(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}

	// nil and empty slices are accepted.
	ZeroizeBytes(nil)
	ZeroizeBytes([]byte{})
}
