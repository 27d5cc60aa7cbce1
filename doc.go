// Package skinny implements SKINNY-128-384, the tweakable block cipher used by
// the SKINNY-AEAD family.
//
// SKINNY-128-384 encrypts a 128-bit block under a 384-bit tweakey. The tweakey
// is the concatenation of three 128-bit lanes TK1 || TK2 || TK3 that can be
// split freely between key material and a public tweak. The cipher runs 56
// rounds of a substitution-permutation network.
//
// # Features
//
//   - Fixed 16-byte block, 48-byte tweakey, 56 rounds
//   - Deterministic: Same (plaintext, tweakey) always produces the same ciphertext
//   - Allocation-free: All state lives on the stack
//   - Forward direction only: there is no decryption
//
// # Security
//
// SKINNY is described in "The SKINNY Family of Block Ciphers and its
// Low-Latency Variant MANTIS" (https://eprint.iacr.org/2016/660.pdf). The
// round function uses table lookups and makes no constant-time claims.
//
// This package provides the raw primitive. Authenticated encryption modes
// and key derivation are left to the caller.
//
// # Basic Usage
//
//	tweakey := make([]byte, skinny.TweakeySize)
//	// Fill with key material and tweak
//
//	var ciphertext [skinny.BlockSize]byte
//	if err := skinny.Encrypt(ciphertext[:], plaintext, tweakey); err != nil {
//	    log.Fatal(err)
//	}
//
// # Reusing a Tweakey
//
// A Cipher binds a tweakey once and encrypts any number of blocks:
//
//	c, err := skinny.NewCipher(tweakey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Encrypt(dst, src)
//
// # Thread Safety
//
// Cipher instances are never mutated after NewCipher and are safe for
// concurrent use. The package-level functions share only read-only tables.
package skinny
