//go:build amd64

// Package simd provides SIMD-accelerated primitives for ASCII case
// conversion and UTF-8 scanning. The package automatically selects the best
// implementation based on available CPU features (AVX2 on x86-64) and falls
// back to optimized pure Go implementations on other platforms.
//
// All entry points produce byte-for-byte identical results regardless of
// which execution path is taken; the accelerated paths exist purely for
// throughput.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
// These are used to dispatch to the fastest available implementation.
var (
	// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
	// AVX2 was introduced in Intel Haswell (2013) and AMD Excavator (2015).
	hasAVX2 = cpu.X86.HasAVX2
)

// Assembly function declarations for AVX2 case conversion.
// These are implemented in case_amd64.s and use 256-bit vector operations.
// The kernels process the full 32-byte lanes of buf in place and leave the
// partial tail (len mod 32 bytes) untouched for the caller.
//
//go:noescape
func toUpperAVX2(buf []byte)

//go:noescape
func toLowerAVX2(buf []byte)

// LaneSize returns the number of bytes the vector execution path consumes
// per step: 32 when AVX2 is active, otherwise the 8-byte SWAR word width.
// Always a power of two. Useful for sizing benchmark buffers and for tests
// that probe lane-boundary lengths.
func LaneSize() int {
	if hasAVX2 {
		return 32
	}
	return 8
}

// ToUpper converts ASCII lowercase letters [a-z] in buf to uppercase,
// in place. All other bytes, including bytes >= 0x80, are left unchanged,
// so the function is safe on arbitrary binary data and on UTF-8 text
// (multi-byte sequences never contain bytes in the ASCII letter range).
//
// This function uses AVX2 SIMD instructions to process 32 bytes per
// iteration when available, falling back to a SWAR implementation that
// processes 8 bytes per step. The remainder after the last full lane is
// always handled by the scalar reference loop.
//
// Performance characteristics (on x86-64 with AVX2):
//   - Small inputs (< 32 bytes): SWAR/scalar, same as the portable path
//   - Large inputs (>= 4KB): 20-30 GB/s (memory bandwidth limited)
//
// Example:
//
//	buf := []byte("Hello, World!")
//	simd.ToUpper(buf)
//	// buf is now "HELLO, WORLD!"
func ToUpper(buf []byte) {
	if len(buf) == 0 {
		return
	}

	// Use AVX2 implementation if available and input is large enough to
	// amortize overhead. The kernel only touches full 32-byte lanes.
	if hasAVX2 && len(buf) >= 32 {
		toUpperAVX2(buf)
		tail := len(buf) &^ 31
		toUpperScalar(buf[tail:])
		return
	}

	toUpperGeneric(buf)
}

// ToLower converts ASCII uppercase letters [A-Z] in buf to lowercase,
// in place. All other bytes, including bytes >= 0x80, are left unchanged.
//
// See ToUpper for dispatch and performance details; the two functions are
// mirror images differing only in the source letter range.
//
// Example:
//
//	buf := []byte("Hello, World!")
//	simd.ToLower(buf)
//	// buf is now "hello, world!"
func ToLower(buf []byte) {
	if len(buf) == 0 {
		return
	}

	if hasAVX2 && len(buf) >= 32 {
		toLowerAVX2(buf)
		tail := len(buf) &^ 31
		toLowerScalar(buf[tail:])
		return
	}

	toLowerGeneric(buf)
}
