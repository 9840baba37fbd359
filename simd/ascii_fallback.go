//go:build !amd64

package simd

// FirstNonASCII returns the index of the first byte >= 0x80 in data, or -1
// if all bytes are ASCII.
//
// On non-AMD64 platforms, this function uses an optimized pure Go
// implementation with SWAR (SIMD Within A Register) technique, which
// processes 8 bytes at a time using uint64 bitwise operations.
//
// See firstNonASCIIGeneric for implementation details.
func FirstNonASCII(data []byte) int {
	return firstNonASCIIGeneric(data)
}
