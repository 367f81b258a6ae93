package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/streakcard/internal/core"
)

func series(counts ...int) []core.DailyCount {
	days := make([]core.DailyCount, len(counts))
	for i, c := range counts {
		days[i] = core.DailyCount{Date: fmt.Sprintf("2024-01-%02d", i+1), Count: c}
	}
	return days
}

func TestComputeMetrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		days []core.DailyCount
		want core.Metrics
	}{
		{
			name: "empty",
			days: nil,
			want: core.Metrics{},
		},
		{
			name: "all zero",
			days: series(0, 0, 0),
			want: core.Metrics{},
		},
		{
			name: "single active day",
			days: series(7),
			want: core.Metrics{Total: 7, CurrentStreak: 1, LongestStreak: 1, LastActive: "2024-01-01"},
		},
		{
			name: "broken then trailing run",
			days: series(1, 0, 1, 1, 1),
			want: core.Metrics{Total: 4, CurrentStreak: 3, LongestStreak: 3, LastActive: "2024-01-05"},
		},
		{
			name: "ends on a zero",
			days: series(2, 3, 4, 0),
			want: core.Metrics{Total: 9, CurrentStreak: 0, LongestStreak: 3, LastActive: "2024-01-03"},
		},
		{
			name: "longest earlier than current",
			days: series(1, 1, 1, 1, 0, 5, 5),
			want: core.Metrics{Total: 14, CurrentStreak: 2, LongestStreak: 4, LastActive: "2024-01-07"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := core.ComputeMetrics(tt.days)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.CurrentStreak, got.LongestStreak)
			assert.Equal(t, got, core.ComputeMetrics(tt.days))
		})
	}
}

func TestComputeMetrics_HasActivity(t *testing.T) {
	t.Parallel()

	assert.False(t, core.ComputeMetrics(series(0, 0)).HasActivity())
	assert.True(t, core.ComputeMetrics(series(0, 1, 0)).HasActivity())
}

func TestWindow_FixedLength(t *testing.T) {
	t.Parallel()

	const size = 30

	for _, n := range []int{0, 1, size - 1, size, size + 1, 365} {
		counts := make([]int, n)
		for i := range counts {
			counts[i] = i + 1
		}

		got := core.Window(series(counts...), size)
		require.Len(t, got, size, "input length %d", n)

		if n > 0 {
			assert.Equal(t, n, got[size-1], "last value is the newest count")
		}
	}
}

func TestWindow_LeftPadsShortInput(t *testing.T) {
	t.Parallel()

	got := core.Window(series(4, 5, 6), 5)
	assert.Equal(t, []int{0, 0, 4, 5, 6}, got)
}

func TestWindow_KeepsTrailingValues(t *testing.T) {
	t.Parallel()

	got := core.Window(series(1, 2, 3, 4, 5), 3)
	assert.Equal(t, []int{3, 4, 5}, got)
}

func TestWindow_NonPositiveSize(t *testing.T) {
	t.Parallel()

	assert.Empty(t, core.Window(series(1, 2), 0))
	assert.Empty(t, core.Window(series(1, 2), -3))
}
