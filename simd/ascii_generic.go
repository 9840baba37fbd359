package simd

import (
	"encoding/binary"
	"math/bits"
)

// firstNonASCIIGeneric implements pure Go non-ASCII detection using the SWAR
// technique, processing 8 bytes at a time as uint64 words.
//
// This function is used as a fallback on all platforms:
//   - On amd64: fallback for small inputs (< 32 bytes), the lane tail, or
//     when AVX2 is not available
//   - On other platforms: primary implementation
//
// Algorithm:
//  1. Read 8 bytes from data as a little-endian uint64
//  2. AND with 0x8080808080808080 to isolate the high bits
//  3. A non-zero result means some byte >= 0x80; the trailing zero count
//     of the result divided by 8 is the byte's index within the word
func firstNonASCIIGeneric(data []byte) int {
	dataLen := len(data)
	idx := 0

	for idx+8 <= dataLen {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if masked := chunk & swarHi; masked != 0 {
			return idx + bits.TrailingZeros64(masked)>>3
		}
		idx += 8
	}

	for idx < dataLen {
		if data[idx] >= 0x80 {
			return idx
		}
		idx++
	}

	return -1
}
