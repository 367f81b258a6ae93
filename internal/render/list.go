package render

import (
	"github.com/vukan322/streakcard/internal/core"
	"github.com/vukan322/streakcard/internal/format"
	"github.com/vukan322/streakcard/internal/theme"
)

type Icon string

const (
	IconStar   Icon = "star"
	IconCommit Icon = "commit"
	IconPR     Icon = "pr"
	IconIssue  Icon = "issue"
	IconList   Icon = "list"
)

// 24x24 viewBox glyphs. Only the star is filled; the rest are stroked.
var iconPaths = map[Icon]string{
	IconStar:   "M12 2.2l2.9 6 6.6.9-4.8 4.6 1.2 6.5L12 17.7 6.1 20.2l1.2-6.5-4.8-4.6 6.6-.9L12 2.2z",
	IconCommit: "M9 12a3 3 0 1 0 6 0 3 3 0 0 0-6 0Zm-7 0h4m8 0h8",
	IconPR:     "M6 4v16m0-13a2 2 0 1 0 0-4 2 2 0 0 0 0 4Zm0 14a2 2 0 1 0 0-4 2 2 0 0 0 0 4Zm6-14h6a2 2 0 0 1 2 2v7m0 0a2 2 0 1 0 0 4 2 2 0 0 0 0-4Z",
	IconIssue:  "M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20Zm0 6v6m0 4h.01",
	IconList:   "M4 6h16M4 10h16M4 14h16M4 18h16",
}

// IconPath returns the glyph for icon; unknown icons fall back to the list glyph.
func IconPath(icon Icon) string {
	if p, ok := iconPaths[icon]; ok {
		return p
	}
	return iconPaths[IconList]
}

type listRow struct {
	Y      float64
	Icon   string
	Filled bool
	Label  string
	Value  string
}

func listRows(c core.Counters, l theme.Layout) []listRow {
	entries := []struct {
		icon  Icon
		label string
		value int
	}{
		{IconStar, "Total Stars:", c.Stars},
		{IconCommit, "Total Commits:", c.Commits},
		{IconPR, "Total PRs:", c.PullRequests},
		{IconIssue, "Total Issues:", c.Issues},
		{IconList, "Contributed to:", c.ContributedRepos},
	}

	rows := make([]listRow, len(entries))
	for i, e := range entries {
		rows[i] = listRow{
			Y:      float64(i) * l.ListRowH,
			Icon:   IconPath(e.icon),
			Filled: e.icon == IconStar,
			Label:  e.label,
			Value:  format.Compact(format.Counter(float64(e.value))),
		}
	}
	return rows
}
