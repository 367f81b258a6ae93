package core

// ComputeMetrics derives totals and streaks from a date-ascending series.
// Empty and all-zero input yield zero streaks and no last-active date.
func ComputeMetrics(days []DailyCount) Metrics {
	var m Metrics

	run := 0
	for _, d := range days {
		m.Total += d.Count
		if d.Count > 0 {
			run++
		} else {
			run = 0
		}
		if run > m.LongestStreak {
			m.LongestStreak = run
		}
	}

	for i := len(days) - 1; i >= 0 && days[i].Count > 0; i-- {
		m.CurrentStreak++
	}

	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count > 0 {
			m.LastActive = days[i].Date
			break
		}
	}

	return m
}

// Window returns exactly size values: the trailing min(size, len(days)) counts,
// left-padded with zeros. A non-positive size yields an empty slice.
func Window(days []DailyCount, size int) []int {
	if size <= 0 {
		return []int{}
	}

	out := make([]int, size)

	start := len(days) - size
	offset := 0
	if start < 0 {
		offset = -start
		start = 0
	}

	for i, d := range days[start:] {
		out[offset+i] = d.Count
	}

	return out
}
