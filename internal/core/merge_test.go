package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/streakcard/internal/core"
)

func TestNormalizeDays(t *testing.T) {
	t.Parallel()

	got := core.NormalizeDays([]core.DailyCount{
		{Date: "2024-03-02", Count: 1},
		{Date: "2024-03-01", Count: 2},
		{Date: "2024-03-02", Count: 3},
		{Date: "2024-03-03", Count: -4},
		{Date: "", Count: 9},
	})

	assert.Equal(t, []core.DailyCount{
		{Date: "2024-03-01", Count: 2},
		{Date: "2024-03-02", Count: 4},
		{Date: "2024-03-03", Count: 0},
	}, got)

	assert.Nil(t, core.NormalizeDays(nil))
}

func TestFillGaps(t *testing.T) {
	t.Parallel()

	got := core.FillGaps([]core.DailyCount{
		{Date: "2024-02-28", Count: 1},
		{Date: "2024-03-02", Count: 2},
	})

	assert.Equal(t, []core.DailyCount{
		{Date: "2024-02-28", Count: 1},
		{Date: "2024-02-29", Count: 0},
		{Date: "2024-03-01", Count: 0},
		{Date: "2024-03-02", Count: 2},
	}, got)
}

func TestExtendTo(t *testing.T) {
	t.Parallel()

	until := time.Date(2024, 1, 3, 15, 4, 0, 0, time.UTC)
	got := core.ExtendTo([]core.DailyCount{{Date: "2024-01-01", Count: 3}}, until)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-03", got[2].Date)
	assert.Zero(t, got[2].Count)

	assert.Empty(t, core.ExtendTo(nil, until))
}

func TestMergeStats(t *testing.T) {
	t.Parallel()

	primary := core.DevStats{
		Identity: core.Identity{Name: "Ada", Username: "ada", Handles: []string{"github: ada"}},
		Counters: core.Counters{Stars: 10, Commits: 100, PullRequests: 3, Issues: 1, ContributedRepos: 2},
		Days: []core.DailyCount{
			{Date: "2024-01-01", Count: 1},
			{Date: "2024-01-02", Count: 0},
			{Date: "2024-01-03", Count: 2},
		},
	}
	secondary := core.DevStats{
		Identity: core.Identity{Handles: []string{"gitlab: ada"}},
		Counters: core.Counters{Stars: 1, Commits: 5},
		Days: []core.DailyCount{
			{Date: "2024-01-02", Count: 4},
			{Date: "2024-01-05", Count: 1},
		},
	}

	merged := core.MergeStats(primary, secondary)

	assert.Equal(t, "Ada", merged.Identity.Name)
	assert.Equal(t, []string{"github: ada", "gitlab: ada"}, merged.Identity.Handles)
	assert.Equal(t, core.Counters{Stars: 11, Commits: 105, PullRequests: 3, Issues: 1, ContributedRepos: 2}, merged.Counters)
	assert.Equal(t, []core.DailyCount{
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 4},
		{Date: "2024-01-03", Count: 2},
		{Date: "2024-01-04", Count: 0},
		{Date: "2024-01-05", Count: 1},
	}, merged.Days)

	assert.Equal(t, []string{"github: ada"}, primary.Identity.Handles, "inputs are not mutated")

	m := core.ComputeMetrics(merged.Days)
	assert.Equal(t, 3, m.LongestStreak)
	assert.Equal(t, 1, m.CurrentStreak)
}
