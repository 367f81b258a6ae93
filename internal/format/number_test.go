package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vukan322/streakcard/internal/format"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{12.4, "12"},
		{2.5, "2"},
		{998.5, "998"},
		{999.5, "1.0k"},
		{-0.4, "0"},
		{-12.6, "-13"},
		{1000, "1.0k"},
		{12345, "12.3k"},
		{1_200_000, "1.2m"},
		{1_500_000, "1.5m"},
		{2_500_000_000, "2.5b"},
		{-4200, "-4.2k"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
		{math.Inf(-1), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Compact(tt.in), "Compact(%v)", tt.in)
	}
}

func TestCompactInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", format.CompactInt(42))
	assert.Equal(t, "3.0k", format.CompactInt(3000))
}

func TestGrouped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", format.Grouped(0))
	assert.Equal(t, "999", format.Grouped(999))
	assert.Equal(t, "1,000", format.Grouped(1000))
	assert.Equal(t, "1,234,567", format.Grouped(1234567))
}

func TestCounter(t *testing.T) {
	t.Parallel()

	assert.Zero(t, format.Counter(-3))
	assert.Zero(t, format.Counter(math.NaN()))
	assert.Zero(t, format.Counter(math.Inf(1)))
	assert.InDelta(t, 12.0, format.Counter(12), 0)
}

func TestFixed2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.00", format.Fixed2(12))
	assert.Equal(t, "0.33", format.Fixed2(1.0/3))
}

func TestDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", format.Date(""))
	assert.Equal(t, "2024-05-01", format.Date("2024-05-01"))
}

func TestNum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1080", format.Num(1080))
	assert.Equal(t, "15.5", format.Num(15.5))
	assert.Equal(t, "-90", format.Num(-90))
}
