package simd

// Strict UTF-8 validation and character counting.
//
// Both operations are a single forward scan with no backtracking. The scan
// alternates between two regimes:
//
//   - ASCII runs are skipped at lane speed with FirstNonASCII; every ASCII
//     byte is a complete one-byte sequence, so the run length is also the
//     character count for the run.
//   - Multi-byte sequences are decoded by a first-byte classification table
//     plus per-byte accept ranges. The table encodes the strict grammar:
//     stray continuation bytes, 0xC0/0xC1 and other overlong encodings,
//     surrogate codepoints U+D800-U+DFFF, and codepoints above U+10FFFF are
//     all rejected at the first byte where the violation is detectable.
//
// Only the byte classification is lane-parallel; the sequence-to-sequence
// state transition is inherently serial and stays scalar.

// First-byte information. The low three bits hold the total sequence size
// in bytes; the high nibble indexes utf8AcceptRanges for the second byte.
const (
	utf8xx = 0xF1 // invalid: size 1
	utf8as = 0xF0 // ASCII: size 1
	utf8s1 = 0x02 // accept 0, size 2
	utf8s2 = 0x13 // accept 1, size 3
	utf8s3 = 0x03 // accept 0, size 3
	utf8s4 = 0x23 // accept 2, size 3
	utf8s5 = 0x34 // accept 3, size 4
	utf8s6 = 0x04 // accept 0, size 4
	utf8s7 = 0x44 // accept 4, size 4
)

// utf8First classifies the first byte of a UTF-8 sequence.
var utf8First = [256]uint8{
	//   1      2      3      4      5      6      7      8      9      A      B      C      D      E      F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x00-0x0F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x10-0x1F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x20-0x2F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x30-0x3F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x40-0x4F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x50-0x5F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x60-0x6F
	utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, utf8as, // 0x70-0x7F
	utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, // 0x80-0x8F: continuations
	utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, // 0x90-0x9F
	utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, // 0xA0-0xAF
	utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, // 0xB0-0xBF
	utf8xx, utf8xx, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, // 0xC0-0xCF: C0/C1 overlong
	utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, utf8s1, // 0xD0-0xDF
	utf8s2, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s3, utf8s4, utf8s3, utf8s3, // 0xE0-0xEF: E0 overlong, ED surrogates
	utf8s5, utf8s6, utf8s6, utf8s6, utf8s7, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, utf8xx, // 0xF0-0xFF: F0 overlong, F4 cap, F5+ out of range
}

// acceptRange bounds the valid values of the second byte of a sequence.
// Bytes three and four, when present, always accept 0x80-0xBF.
type acceptRange struct {
	lo uint8
	hi uint8
}

var utf8AcceptRanges = [5]acceptRange{
	{0x80, 0xBF}, // 0: default continuation range
	{0xA0, 0xBF}, // 1: E0 (excludes overlong encodings)
	{0x80, 0x9F}, // 2: ED (excludes surrogates)
	{0x90, 0xBF}, // 3: F0 (excludes overlong encodings)
	{0x80, 0x8F}, // 4: F4 (excludes codepoints above U+10FFFF)
}

// ValidateUTF8 reports whether data is strictly valid UTF-8.
// It returns -1 when data is valid, otherwise the index of the first byte
// of the malformed sequence. A sequence truncated by the end of the buffer
// is malformed and reported at its first byte.
//
// Example:
//
//	simd.ValidateUTF8([]byte("café"))    // -1
//	simd.ValidateUTF8([]byte{0xC3})      // 0 (truncated sequence)
//	simd.ValidateUTF8([]byte{'a', 0x80}) // 1 (stray continuation)
func ValidateUTF8(data []byte) int {
	_, invalid := scanUTF8(data)
	return invalid
}

// CountUTF8 returns the number of UTF-8 characters in data together with
// the index of the first malformed byte, or -1 when data is valid. Each
// complete 1- to 4-byte sequence counts as exactly one character; on
// malformed input the count covers the complete characters decoded before
// the offending offset.
//
// Example:
//
//	n, invalid := simd.CountUTF8([]byte("世界")) // n == 2, invalid == -1
func CountUTF8(data []byte) (int, int) {
	return scanUTF8(data)
}

// scanUTF8 is the shared forward scan behind ValidateUTF8 and CountUTF8.
func scanUTF8(data []byte) (chars int, invalid int) {
	n := len(data)
	i := 0

	for i < n {
		if data[i] < 0x80 {
			// ASCII run: every byte is one complete character.
			run := FirstNonASCII(data[i:])
			if run < 0 {
				return chars + n - i, -1
			}
			chars += run
			i += run
			continue
		}

		info := utf8First[data[i]]
		if info == utf8xx {
			return chars, i
		}
		size := int(info & 7)
		if i+size > n {
			// Truncated sequence at end of buffer.
			return chars, i
		}

		accept := utf8AcceptRanges[info>>4]
		if c := data[i+1]; c < accept.lo || c > accept.hi {
			return chars, i
		}
		if size >= 3 {
			if c := data[i+2]; c < 0x80 || c > 0xBF {
				return chars, i
			}
		}
		if size == 4 {
			if c := data[i+3]; c < 0x80 || c > 0xBF {
				return chars, i
			}
		}

		chars++
		i += size
	}

	return chars, -1
}
