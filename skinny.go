// Package skinny provides the SKINNY-128-384 tweakable block cipher.
// Based on: "The SKINNY Family of Block Ciphers and its Low-Latency Variant MANTIS"
// https://eprint.iacr.org/2016/660.pdf
package skinny

const (
	// BlockSize is the SKINNY-128 block size in bytes.
	BlockSize = 16

	// TweakeySize is the size of the TK1 || TK2 || TK3 tweakey in bytes.
	TweakeySize = 48

	// Rounds is the number of rounds of SKINNY-128-384.
	Rounds = 56
)

// Cipher is a SKINNY-128-384 instance bound to a fixed tweakey.
type Cipher struct {
	tweakey [TweakeySize]byte
}

// NewCipher creates a new cipher instance for the given 48-byte tweakey.
// The tweakey is copied; later changes to the slice do not affect the cipher.
func NewCipher(tweakey []byte) (*Cipher, error) {
	if len(tweakey) != TweakeySize {
		return nil, ErrInvalidTweakeySize
	}

	c := &Cipher{}
	copy(c.tweakey[:], tweakey)
	return c, nil
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely or not at all.
//
// Like crypto/cipher.Block, Encrypt panics if src or dst is shorter than a
// block. Use EncryptBlock for a checked variant.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("skinny: input not full block")
	}
	c.encrypt(dst, src)
}

// EncryptBlock encrypts exactly one block of src into dst, returning
// ErrNilCipher or ErrInvalidBlockSize instead of panicking.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if c == nil {
		return ErrNilCipher
	}
	if len(src) != BlockSize || len(dst) != BlockSize {
		return ErrInvalidBlockSize
	}
	c.encrypt(dst, src)
	return nil
}

func (c *Cipher) encrypt(dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])
	tk := newTweakey(&c.tweakey)
	encryptRounds(&s, &tk, Rounds)
	copy(dst[:BlockSize], s[:])
}

// Encrypt encrypts the 16-byte plaintext under the 48-byte tweakey and writes
// the 16-byte ciphertext to dst. Lengths are checked before dst is touched;
// a mismatch yields an error matching ErrInvalidLength.
func Encrypt(dst, plaintext, tweakey []byte) error {
	if len(tweakey) != TweakeySize {
		return ErrInvalidTweakeySize
	}
	if len(plaintext) != BlockSize || len(dst) != BlockSize {
		return ErrInvalidBlockSize
	}

	var k [TweakeySize]byte
	copy(k[:], tweakey)
	var s state
	copy(s[:], plaintext)

	tk := newTweakey(&k)
	encryptRounds(&s, &tk, Rounds)
	copy(dst, s[:])
	return nil
}

// EncryptBlock encrypts a single block under the given tweakey.
func EncryptBlock(plaintext *[BlockSize]byte, tweakey *[TweakeySize]byte) [BlockSize]byte {
	s := state(*plaintext)
	tk := newTweakey(tweakey)
	encryptRounds(&s, &tk, Rounds)
	return s
}

// encryptRounds runs the first n rounds of the cipher over s, advancing tk.
// Callers other than tests always pass Rounds.
func encryptRounds(s *state, tk *tweakey, n int) {
	for r := 0; r < n; r++ {
		subCells(s)
		addConstants(s, r)
		addRoundTweakey(s, tk)
		shiftRows(s)
		mixColumns(s)
	}
}
