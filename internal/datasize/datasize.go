// Package datasize provides byte-size parsing and rate formatting helpers
// for the benchmark tooling.
package datasize

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// KB is one binary kilobyte.
	KB = 1 << 10
	// MB is one binary megabyte.
	MB = 1 << 20
	// GB is one binary gigabyte.
	GB = 1 << 30
)

// Parse converts a human-readable size such as "512", "64KB" or "1MB" into
// a byte count. Suffixes are case-insensitive; a bare number means bytes.
func Parse(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	mult := 1
	switch {
	case strings.HasSuffix(upper, "GB"):
		mult, upper = GB, strings.TrimSuffix(upper, "GB")
	case strings.HasSuffix(upper, "MB"):
		mult, upper = MB, strings.TrimSuffix(upper, "MB")
	case strings.HasSuffix(upper, "KB"):
		mult, upper = KB, strings.TrimSuffix(upper, "KB")
	case strings.HasSuffix(upper, "B"):
		upper = strings.TrimSuffix(upper, "B")
	}

	n, err := strconv.Atoi(strings.TrimSpace(upper))
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return n * mult, nil
}

// FormatRate renders a bytes-per-second throughput with an appropriate
// binary unit, e.g. "12.34 GB/s".
func FormatRate(bytesPerSec float64) string {
	switch {
	case bytesPerSec >= GB:
		return fmt.Sprintf("%.2f GB/s", bytesPerSec/GB)
	case bytesPerSec >= MB:
		return fmt.Sprintf("%.2f MB/s", bytesPerSec/MB)
	case bytesPerSec >= KB:
		return fmt.Sprintf("%.2f KB/s", bytesPerSec/KB)
	default:
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
}

// FormatSize renders a byte count with an appropriate binary unit.
func FormatSize(n int) string {
	switch {
	case n >= GB && n%GB == 0:
		return fmt.Sprintf("%dGB", n/GB)
	case n >= MB && n%MB == 0:
		return fmt.Sprintf("%dMB", n/MB)
	case n >= KB && n%KB == 0:
		return fmt.Sprintf("%dKB", n/KB)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
