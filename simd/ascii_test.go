package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// TestFirstNonASCIIBasic tests basic functionality and edge cases
func TestFirstNonASCIIBasic(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{"empty", nil, -1},
		{"empty_slice", []byte{}, -1},
		{"single_ascii", []byte{'a'}, -1},
		{"single_zero", []byte{0x00}, -1},
		{"single_del", []byte{0x7F}, -1},
		{"single_0x80", []byte{0x80}, 0},
		{"single_0xff", []byte{0xFF}, 0},
		{"short_ascii", []byte("hello, world!"), -1},
		{"short_first", append([]byte{0xC3}, []byte("hello")...), 0},
		{"short_middle", []byte("hel\x80lo"), 3},
		{"short_last", append([]byte("hello"), 0xE2), 5},
		{"utf8_cafe", []byte("caf\xc3\xa9"), 3},

		// 8-byte boundary tests (SWAR chunk size)
		{"8_bytes_ascii", []byte("12345678"), -1},
		{"8_bytes_first", []byte("\x802345678"), 0},
		{"8_bytes_last", []byte("1234567\x80"), 7},
		{"9_bytes_ninth", []byte("12345678\x80"), 8},

		// 32-byte boundary tests (AVX2 lane size)
		{"32_bytes_ascii", bytes.Repeat([]byte{'a'}, 32), -1},
		{"32_bytes_first", append([]byte{0x80}, bytes.Repeat([]byte{'a'}, 31)...), 0},
		{"32_bytes_last", append(bytes.Repeat([]byte{'a'}, 31), 0x80), 31},
		{"33_bytes_tail", append(bytes.Repeat([]byte{'a'}, 32), 0x80), 32},
		{"64_bytes_second_lane", append(bytes.Repeat([]byte{'a'}, 40), append([]byte{0xBF}, bytes.Repeat([]byte{'b'}, 23)...)...), 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstNonASCII(tt.input)
			if got != tt.want {
				t.Errorf("FirstNonASCII(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFirstNonASCIISizes plants a non-ASCII byte at every position around
// lane boundaries and checks that both paths find it.
func TestFirstNonASCIISizes(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 1024}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			data := bytes.Repeat([]byte{'x'}, size)
			if got := FirstNonASCII(data); got != -1 {
				t.Fatalf("all-ASCII buffer of size %d: got %d, want -1", size, got)
			}
			if got := firstNonASCIIGeneric(data); got != -1 {
				t.Fatalf("generic: all-ASCII buffer of size %d: got %d, want -1", size, got)
			}

			for pos := 0; pos < size; pos++ {
				data[pos] = 0x80
				if got := FirstNonASCII(data); got != pos {
					t.Fatalf("size %d pos %d: got %d", size, pos, got)
				}
				if got := firstNonASCIIGeneric(data); got != pos {
					t.Fatalf("generic: size %d pos %d: got %d", size, pos, got)
				}
				data[pos] = 'x'
			}
		})
	}
}

func BenchmarkFirstNonASCII_1KB(b *testing.B) {
	data := bytes.Repeat([]byte{'a'}, 1024)
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FirstNonASCII(data)
	}
}

func BenchmarkFirstNonASCII_64KB(b *testing.B) {
	data := bytes.Repeat([]byte{'a'}, 64*1024)
	b.SetBytes(64 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FirstNonASCII(data)
	}
}

func BenchmarkFirstNonASCII_Generic_1KB(b *testing.B) {
	data := bytes.Repeat([]byte{'a'}, 1024)
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		firstNonASCIIGeneric(data)
	}
}
