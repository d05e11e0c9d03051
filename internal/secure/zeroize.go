// Package secure holds helpers for handling serialized key material.
package secure

import "runtime"

// ZeroizeBytes overwrites buf with zeros. runtime.KeepAlive keeps the compiler
// from eliminating the stores (golang/go#33325). Copies made elsewhere, for
// example inside math/big, are not reached.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
