// Package keyshare carries additive secp256k1 private-key shares under
// Paillier encryption.
//
// Each party encrypts its share under a common Paillier public key and
// publishes the ciphertext together with the share's public point. Anyone
// holding the public key can combine the ciphertexts homomorphically; the
// combined public point is the sum of the share points. Only the Paillier
// private key holder can recover the combined secp256k1 private key, and
// recovery fails if it does not match the combined point.
//
// The Paillier modulus must be large enough that the plaintext sum never wraps
// modulo n. Combine enforces n > count·order, where order is the secp256k1
// group order; a 512-bit modulus therefore accepts very many shares.
package keyshare
