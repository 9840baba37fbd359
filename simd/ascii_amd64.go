//go:build amd64

package simd

// Assembly function declaration for AVX2 non-ASCII detection.
// Implemented in ascii_amd64.s using 256-bit vector operations.
//
// The kernel only examines the full 32-byte lanes of data; it returns the
// index of the first byte >= 0x80 within those lanes, or -1 when all lane
// bytes are ASCII. The partial tail is the caller's responsibility.
//
//go:noescape
func firstNonASCIIAVX2(data []byte) int

// FirstNonASCII returns the index of the first byte >= 0x80 in data, or -1
// if all bytes are ASCII.
//
// The UTF-8 validator and character counter use this to skip over ASCII
// runs at lane speed: an ASCII byte is always a complete one-byte sequence,
// so the state machine only has to run on the multi-byte stretches.
//
// Algorithm (AVX2):
//  1. Load 32 bytes into a YMM register
//  2. VPMOVMSKB extracts the high bit of each byte
//  3. If the mask is non-zero, BSF locates the first non-ASCII byte
//  4. Tail handled by the SWAR fallback
//
// Example:
//
//	data := []byte("caf\xc3\xa9")
//	pos := simd.FirstNonASCII(data)
//	// pos == 3 (first byte of the é sequence)
func FirstNonASCII(data []byte) int {
	if len(data) == 0 {
		return -1
	}

	if hasAVX2 && len(data) >= 32 {
		if pos := firstNonASCIIAVX2(data); pos >= 0 {
			return pos
		}
		tail := len(data) &^ 31
		if pos := firstNonASCIIGeneric(data[tail:]); pos >= 0 {
			return tail + pos
		}
		return -1
	}

	return firstNonASCIIGeneric(data)
}
