package stringops

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is the sentinel error reported when a byte sequence
// violates the strict UTF-8 grammar. Use errors.Is to test for it:
//
//	if errors.Is(err, stringops.ErrInvalidEncoding) { ... }
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// EncodingError describes where a UTF-8 validation failure occurred.
// Offset is the index of the first byte of the malformed sequence.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding at byte %d", e.Offset)
}

// Unwrap makes EncodingError match ErrInvalidEncoding under errors.Is.
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
