// Command strbench measures the throughput of the stringops primitives on
// generated or file-provided buffers.
//
// Usage:
//
//	strbench -op upper -size 1MB -iters 200
//	strbench -op validate -file corpus.txt
//	strbench -op all -size 64KB -data mixed
//
// For each operation the tool reports total bytes processed, elapsed time,
// and throughput, along with the vector lane width active on this machine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/coregx/stringops"
	"github.com/coregx/stringops/internal/datasize"
	"github.com/coregx/stringops/simd"
)

var (
	opFlag    = flag.String("op", "all", "Operation to benchmark: upper, lower, validate, count, all")
	sizeFlag  = flag.String("size", "1MB", "Buffer size for generated input (e.g. 512, 64KB, 4MB)")
	itersFlag = flag.Int("iters", 100, "Iterations per operation")
	fileFlag  = flag.String("file", "", "Read input from file instead of generating it")
	dataFlag  = flag.String("data", "ascii", "Generated data shape: ascii or mixed (interleaved multi-byte UTF-8)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "strbench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	buf, err := loadInput()
	if err != nil {
		return err
	}
	if *itersFlag <= 0 {
		return errors.Errorf("invalid -iters %d", *itersFlag)
	}

	fmt.Printf("buffer: %s, iterations: %d, lane width: %d bytes\n",
		datasize.FormatSize(len(buf)), *itersFlag, simd.LaneSize())

	ops := []string{*opFlag}
	if *opFlag == "all" {
		ops = []string{"upper", "lower", "validate", "count"}
	}

	for _, op := range ops {
		if err := benchOp(op, buf); err != nil {
			return err
		}
	}
	return nil
}

func loadInput() ([]byte, error) {
	if *fileFlag != "" {
		buf, err := os.ReadFile(*fileFlag)
		if err != nil {
			return nil, errors.Wrap(err, "reading input file")
		}
		if len(buf) == 0 {
			return nil, errors.Errorf("input file %s is empty", *fileFlag)
		}
		return buf, nil
	}

	size, err := datasize.Parse(*sizeFlag)
	if err != nil {
		return nil, errors.Wrap(err, "parsing -size")
	}
	if size == 0 {
		return nil, errors.New("generated buffer size must be positive")
	}
	return generate(size, *dataFlag)
}

// generate builds a deterministic test buffer. The ascii shape cycles the
// lowercase alphabet (the original harness's fill pattern); mixed interleaves
// ASCII words with 2- and 3-byte UTF-8 sequences so the multi-byte decode
// path gets exercised.
func generate(size int, shape string) ([]byte, error) {
	switch shape {
	case "ascii":
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte('a' + i%26)
		}
		return buf, nil
	case "mixed":
		piece := []byte("Hello World café 世界 ")
		buf := make([]byte, 0, size+len(piece))
		for len(buf) < size {
			buf = append(buf, piece...)
		}
		return buf[:pieceBoundary(buf, size)], nil
	default:
		return nil, errors.Errorf("unknown -data shape %q", shape)
	}
}

// pieceBoundary backs size off to the nearest UTF-8 sequence boundary so a
// truncated multi-byte character never invalidates the generated buffer.
func pieceBoundary(buf []byte, size int) int {
	if size >= len(buf) {
		return len(buf)
	}
	for size > 0 && buf[size]&0xC0 == 0x80 {
		size--
	}
	return size
}

func benchOp(op string, buf []byte) error {
	work := append([]byte(nil), buf...)
	iters := *itersFlag

	var label string
	var fn func([]byte) error

	switch op {
	case "upper":
		label = "to_upper"
		fn = func(b []byte) error { stringops.ToUpper(b); return nil }
	case "lower":
		label = "to_lower"
		fn = func(b []byte) error { stringops.ToLower(b); return nil }
	case "validate":
		label = "utf8_validate"
		fn = stringops.Validate
	case "count":
		label = "utf8_char_count"
		fn = func(b []byte) error {
			_, err := stringops.CharCount(b)
			return err
		}
	default:
		return errors.Errorf("unknown -op %q", op)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := fn(work); err != nil {
			return errors.Wrapf(err, "%s failed", label)
		}
	}
	elapsed := time.Since(start)

	total := int64(len(work)) * int64(iters)
	rate := float64(total) / elapsed.Seconds()
	fmt.Printf("%-16s %10v  %s\n", label, elapsed.Round(time.Microsecond), datasize.FormatRate(rate))
	return nil
}
