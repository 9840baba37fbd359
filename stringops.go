// Package stringops provides SIMD-accelerated text primitives: in-place
// ASCII case conversion, strict UTF-8 validation, and UTF-8 character
// counting.
//
// stringops reaches memory-bandwidth throughput on large buffers through:
//   - AVX2 byte-lane kernels on x86-64 (32 bytes per step)
//   - SWAR fallbacks on every platform (8-byte words, no assembly)
//   - One-decision-point dispatch with byte-identical output on all paths
//
// All operations are total over arbitrary byte buffers, run to completion
// in time proportional to the buffer length, allocate nothing, and retain
// no state between calls. Concurrent calls on distinct buffers are safe;
// callers must serialize concurrent access to the same mutable buffer.
//
// Basic usage:
//
//	buf := []byte("Hello, World!")
//	stringops.ToUpper(buf) // buf is now "HELLO, WORLD!"
//
//	if err := stringops.Validate(buf); err != nil {
//	    log.Fatal(err)
//	}
//
//	n, _ := stringops.CharCount([]byte("café")) // n == 4
//
// String values get the same operations through the Text adapter:
//
//	n, _ := stringops.Text("世界").CharCount() // n == 2
package stringops

import (
	"unsafe"

	"github.com/coregx/stringops/simd"
)

// ToUpper converts ASCII letters [a-z] in buf to uppercase, in place.
// Bytes outside [a-z], including bytes >= 0x80, are left unchanged, so the
// call is safe on invalid UTF-8 and on arbitrary binary data. It never
// fails and never allocates.
func ToUpper(buf []byte) {
	simd.ToUpper(buf)
}

// ToLower converts ASCII letters [A-Z] in buf to lowercase, in place.
// Bytes outside [A-Z], including bytes >= 0x80, are left unchanged. It
// never fails and never allocates.
func ToLower(buf []byte) {
	simd.ToLower(buf)
}

// Validate reports whether buf is strictly valid UTF-8. It returns nil for
// valid input (the empty buffer is valid) and an *EncodingError wrapping
// ErrInvalidEncoding otherwise. Rejected forms include truncated sequences,
// stray continuation bytes, overlong encodings, surrogate codepoints
// U+D800-U+DFFF, and codepoints above U+10FFFF.
func Validate(buf []byte) error {
	if invalid := simd.ValidateUTF8(buf); invalid >= 0 {
		return &EncodingError{Offset: invalid}
	}
	return nil
}

// CharCount returns the number of UTF-8 characters in buf. Each complete
// 1- to 4-byte sequence counts as one character regardless of its byte
// length; CharCount("café") is 4, not 5.
//
// On malformed input CharCount fails the same way Validate does: it
// returns an *EncodingError for the first malformed sequence, together
// with the number of complete characters decoded before that offset.
func CharCount(buf []byte) (int, error) {
	n, invalid := simd.CountUTF8(buf)
	if invalid >= 0 {
		return n, &EncodingError{Offset: invalid}
	}
	return n, nil
}

// Text adapts a read-only string to the UTF-8 operations. The validation
// and counting methods view the string's bytes without copying; the case
// conversion methods copy, since strings are immutable. No logic lives
// here beyond forwarding to the free functions.
type Text string

// bytes returns a read-only view of the string's backing bytes. Callers
// must not write through the returned slice.
func (t Text) bytes() []byte {
	return unsafe.Slice(unsafe.StringData(string(t)), len(t))
}

// Valid reports whether the text is strictly valid UTF-8, with the same
// semantics as Validate.
func (t Text) Valid() error {
	return Validate(t.bytes())
}

// CharCount returns the number of UTF-8 characters in the text, with the
// same semantics as CharCount.
func (t Text) CharCount() (int, error) {
	return CharCount(t.bytes())
}

// ToUpper returns a copy of the text with ASCII letters uppercased.
func (t Text) ToUpper() string {
	buf := []byte(t)
	simd.ToUpper(buf)
	return string(buf)
}

// ToLower returns a copy of the text with ASCII letters lowercased.
func (t Text) ToLower() string {
	buf := []byte(t)
	simd.ToLower(buf)
	return string(buf)
}
