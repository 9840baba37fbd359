package simd

import (
	"encoding/binary"
)

// SWAR (SIMD Within A Register) case conversion constants.
//
// The range test works on the low 7 bits of each byte: adding (0x80 - bound)
// to a 7-bit value sets bit 7 exactly when the value reaches the bound, and
// cannot carry into the neighboring byte. Combining the two bound tests with
// the original high bit yields a mask with 0x80 in every byte belonging to
// the source letter range; shifting the mask right by two turns it into the
// 0x20 case-bit toggle.
const (
	swarLo7  = uint64(0x7F7F7F7F7F7F7F7F)
	swarHi   = uint64(0x8080808080808080)
	swarGeLC = uint64(0x1F1F1F1F1F1F1F1F) // 0x80 - 'a', per byte
	swarLtLC = uint64(0x0505050505050505) // 0x80 - ('z' + 1), per byte
	swarGeUC = uint64(0x3F3F3F3F3F3F3F3F) // 0x80 - 'A', per byte
	swarLtUC = uint64(0x2525252525252525) // 0x80 - ('Z' + 1), per byte
)

// caseToggleWord returns word with the 0x20 bit flipped in every byte whose
// value lies in the source range described by geAdd/ltAdd. Bytes >= 0x80
// never match: the final mask is ANDed with the complement of the original
// high bits.
func caseToggleWord(word, geAdd, ltAdd uint64) uint64 {
	low7 := word & swarLo7
	ge := low7 + geAdd // bit 7 set where low7 >= range start
	lt := low7 + ltAdd // bit 7 set where low7 > range end
	mask := ge &^ lt &^ word & swarHi
	return word ^ (mask >> 2)
}

// toUpperGeneric implements pure Go case conversion using the SWAR technique,
// processing 16 bytes per iteration as two uint64 words.
//
// This function is used as a fallback on all platforms:
//   - On amd64: fallback for small inputs (< 32 bytes) or when AVX2 is not available
//   - On other platforms: primary implementation
func toUpperGeneric(buf []byte) {
	bufLen := len(buf)
	idx := 0

	// Process 16-byte chunks, two 8-byte words per iteration.
	for idx+16 <= bufLen {
		w0 := binary.LittleEndian.Uint64(buf[idx:])
		w1 := binary.LittleEndian.Uint64(buf[idx+8:])
		binary.LittleEndian.PutUint64(buf[idx:], caseToggleWord(w0, swarGeLC, swarLtLC))
		binary.LittleEndian.PutUint64(buf[idx+8:], caseToggleWord(w1, swarGeLC, swarLtLC))
		idx += 16
	}

	// Single remaining word.
	if idx+8 <= bufLen {
		w := binary.LittleEndian.Uint64(buf[idx:])
		binary.LittleEndian.PutUint64(buf[idx:], caseToggleWord(w, swarGeLC, swarLtLC))
		idx += 8
	}

	toUpperScalar(buf[idx:])
}

// toLowerGeneric is the SWAR mirror of toUpperGeneric for [A-Z] sources.
func toLowerGeneric(buf []byte) {
	bufLen := len(buf)
	idx := 0

	for idx+16 <= bufLen {
		w0 := binary.LittleEndian.Uint64(buf[idx:])
		w1 := binary.LittleEndian.Uint64(buf[idx+8:])
		binary.LittleEndian.PutUint64(buf[idx:], caseToggleWord(w0, swarGeUC, swarLtUC))
		binary.LittleEndian.PutUint64(buf[idx+8:], caseToggleWord(w1, swarGeUC, swarLtUC))
		idx += 16
	}

	if idx+8 <= bufLen {
		w := binary.LittleEndian.Uint64(buf[idx:])
		binary.LittleEndian.PutUint64(buf[idx:], caseToggleWord(w, swarGeUC, swarLtUC))
		idx += 8
	}

	toLowerScalar(buf[idx:])
}

// toUpperScalar converts [a-z] to [A-Z] one byte at a time. It is the
// correctness baseline for the SWAR and AVX2 paths and handles the partial
// tail after the last full lane.
func toUpperScalar(buf []byte) {
	for i, b := range buf {
		if b >= 'a' && b <= 'z' {
			buf[i] = b ^ 0x20
		}
	}
}

// toLowerScalar converts [A-Z] to [a-z] one byte at a time.
func toLowerScalar(buf []byte) {
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b ^ 0x20
		}
	}
}
