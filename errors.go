package skinny

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is matched by every buffer size error.
	ErrInvalidLength = errors.New("skinny: invalid length")

	// ErrInvalidTweakeySize is returned when the tweakey is not 48 bytes.
	ErrInvalidTweakeySize = fmt.Errorf("%w: tweakey must be 48 bytes", ErrInvalidLength)

	// ErrInvalidBlockSize is returned when a plaintext or output buffer is not 16 bytes.
	ErrInvalidBlockSize = fmt.Errorf("%w: block must be 16 bytes", ErrInvalidLength)

	// ErrNilCipher is returned when attempting to use a nil cipher instance.
	ErrNilCipher = errors.New("skinny: cipher instance is nil")
)
