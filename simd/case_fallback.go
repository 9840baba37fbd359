//go:build !amd64

package simd

// LaneSize returns the number of bytes the vector execution path consumes
// per step. On platforms without an assembly kernel this is the 8-byte SWAR
// word width.
func LaneSize() int {
	return 8
}

// ToUpper converts ASCII lowercase letters [a-z] in buf to uppercase,
// in place. All other bytes, including bytes >= 0x80, are left unchanged.
//
// On non-AMD64 platforms, this function uses an optimized pure Go
// implementation with SWAR (SIMD Within A Register) technique, which
// processes 8 bytes at a time using uint64 bitwise operations.
//
// See toUpperGeneric for implementation details.
func ToUpper(buf []byte) {
	toUpperGeneric(buf)
}

// ToLower converts ASCII uppercase letters [A-Z] in buf to lowercase,
// in place. All other bytes, including bytes >= 0x80, are left unchanged.
//
// See toLowerGeneric for implementation details.
func ToLower(buf []byte) {
	toLowerGeneric(buf)
}
