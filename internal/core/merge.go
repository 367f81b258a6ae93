package core

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

func MergeStats(primary, secondary DevStats) DevStats {
	merged := primary

	merged.Identity.Handles = append(append([]string(nil), primary.Identity.Handles...), secondary.Identity.Handles...)

	merged.Counters.Stars += secondary.Counters.Stars
	merged.Counters.Commits += secondary.Counters.Commits
	merged.Counters.PullRequests += secondary.Counters.PullRequests
	merged.Counters.Issues += secondary.Counters.Issues
	merged.Counters.ContributedRepos += secondary.Counters.ContributedRepos

	all := make([]DailyCount, 0, len(primary.Days)+len(secondary.Days))
	all = append(all, primary.Days...)
	all = append(all, secondary.Days...)
	merged.Days = FillGaps(NormalizeDays(all))

	return merged
}

// NormalizeDays sorts by date, sums duplicate dates and clamps negative counts to zero.
// Dates are compared as strings, which is chronological for YYYY-MM-DD.
func NormalizeDays(days []DailyCount) []DailyCount {
	if len(days) == 0 {
		return nil
	}

	byDate := make(map[string]int, len(days))
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		c := d.Count
		if c < 0 {
			c = 0
		}
		byDate[d.Date] += c
	}

	out := make([]DailyCount, 0, len(byDate))
	for date, count := range byDate {
		out = append(out, DailyCount{Date: date, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}

// FillGaps inserts zero-count days for calendar dates missing between the first
// and last element. Input must already be normalized; entries whose date does not
// parse are kept in place and break no run.
func FillGaps(days []DailyCount) []DailyCount {
	if len(days) < 2 {
		return days
	}

	out := make([]DailyCount, 0, len(days))
	out = append(out, days[0])

	for _, d := range days[1:] {
		prev, perr := time.Parse(DateLayout, out[len(out)-1].Date)
		cur, cerr := time.Parse(DateLayout, d.Date)
		if perr == nil && cerr == nil {
			for gap := prev.AddDate(0, 0, 1); gap.Before(cur); gap = gap.AddDate(0, 0, 1) {
				out = append(out, DailyCount{Date: gap.Format(DateLayout)})
			}
		}
		out = append(out, d)
	}

	return out
}

// ExtendTo appends zero-count days after the last element up to and including until.
// Sources that only report active days need this so a current streak ends on a gap.
func ExtendTo(days []DailyCount, until time.Time) []DailyCount {
	if len(days) == 0 {
		return days
	}

	last, err := time.Parse(DateLayout, days[len(days)-1].Date)
	if err != nil {
		return days
	}

	end := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)
	for d := last.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DailyCount{Date: d.Format(DateLayout)})
	}

	return days
}
