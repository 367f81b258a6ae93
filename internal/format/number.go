// Package format renders numbers and dates for on-card display.
package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

type magnitude struct {
	limit  float64
	suffix string
}

// Checked from largest to smallest; the first limit reached wins.
var magnitudes = []magnitude{
	{1_000_000_000, "b"},
	{1_000_000, "m"},
	{1_000, "k"},
}

// Grouped renders n with comma thousands separators, e.g. 1234567 -> "1,234,567".
func Grouped(n int) string {
	return humanize.Comma(int64(n))
}

// Compact abbreviates magnitudes of 1000 and above with one decimal and a k/m/b
// suffix: 12345 -> "12.3k", 1200000 -> "1.2m". Smaller values are rounded
// half-to-even to a plain integer, so 999.5 becomes 1000 and renders "1.0k".
// NaN and infinities render as "0".
//
// The decimal is produced by strconv's 'f' formatting of the scaled value, which
// rounds the exact binary value half-to-even, so 1050 may render as "1.1k" or
// "1.0k" depending on representation but always the same way for the same input.
func Compact(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}

	if math.Abs(n) < magnitudes[len(magnitudes)-1].limit {
		n = math.RoundToEven(n)
		if n == 0 {
			n = 0 // drop the sign of -0
		}
	}

	abs := math.Abs(n)
	for _, m := range magnitudes {
		if abs >= m.limit {
			return strconv.FormatFloat(n/m.limit, 'f', 1, 64) + m.suffix
		}
	}

	return strconv.FormatFloat(n, 'f', 0, 64)
}

// CompactInt is Compact for integer counters.
func CompactInt(n int) string {
	return Compact(float64(n))
}

// Counter clamps a malformed counter (negative, NaN or infinite) to zero.
func Counter(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Fixed2 renders v with exactly two decimals, the precision used for all geometry.
func Fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Num renders v with the shortest exact representation: 1080 -> "1080", 15.5 -> "15.5".
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
