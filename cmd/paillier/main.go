// Command paillier generates Paillier keys and encrypts, decrypts and adds
// values from the command line.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
