// Package paillier implements the Paillier partially homomorphic public-key
// cryptosystem on top of math/big.
//
// # Key Operations
//
//   - GenerateRandomKeys(): Create a key pair with a modulus of an exact bit length
//   - GeneratePrime(): Draw a probable prime of an exact bit width
//   - PublicKey.Encrypt(): Encrypt a plaintext in [0, n)
//   - PublicKey.EncryptForZKP(): Encrypt and return the randomness r as well
//   - PublicKey.EncryptWithR(): Encrypt with caller-supplied randomness
//   - PrivateKey.Decrypt(): Recover the plaintext
//   - EncodePublicKey()/DecodePublicKey(), EncodePrivateKey()/DecodePrivateKey():
//     Convert keys to and from a field-name keyed Map
//   - MarshalPublicKey()/UnmarshalPublicKey() and the private key pair:
//     CBOR encoding of the same Map
//
// # Variants
//
// The simple variant uses g = n+1, λ = (p-1)(q-1) and μ = λ⁻¹ mod n. The full
// variant draws g with Generator, uses λ = lcm(p-1, q-1) and
// μ = L(g^λ mod n²)⁻¹ mod n, where L(x) = (x-1)/n.
//
// The full-variant generator formula differs from the textbook Paillier
// construction. It is kept for compatibility with existing keys; see
// Generator before relying on it for new deployments.
//
// # Homomorphic Properties
//
//   - Additive homomorphism: E(m1) · E(m2) mod n² = E(m1 + m2 mod n)
//   - Scalar multiplication: E(m)^k mod n² = E(k·m mod n)
//
// These are exposed via AddCiphers, AddPlain and MulScalar.
//
// # Usage Example
//
//	pk, sk, err := paillier.GenerateRandomKeys(ctx, 2048, true, nil)
//	if err != nil {
//	    return err
//	}
//
//	c1, err := pk.Encrypt(big.NewInt(3))
//	c2, err := pk.Encrypt(big.NewInt(5))
//	sum, err := pk.AddCiphers(c1, c2)
//
//	m, err := sk.Decrypt(sum)
//	// m == 8
//
// # Security Considerations
//
//   - Keys are immutable and safe for concurrent use.
//   - Prime candidates pass PrimalityRounds Miller-Rabin rounds (error ≤ 2^-128).
//   - Moduli below Config.MinBitLength (default 512) are refused; production
//     deployments should use 2048 bits or more.
//   - Encryption always draws from crypto/rand. Config.Random replaces the
//     key-generation source and must itself be cryptographically secure.
package paillier
