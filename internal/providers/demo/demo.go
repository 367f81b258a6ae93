package demo

import (
	"context"
	"time"

	"github.com/vukan322/streakcard/internal/core"
)

// Days is the length of the generated history.
const Days = 90

// Provider serves a fixed, offline activity history ending today.
type Provider struct {
	now func() time.Time
}

func New() *Provider {
	return &Provider{now: time.Now}
}

func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

func (p *Provider) Name() string {
	return "demo"
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.DevStats, error) {
	if err := ctx.Err(); err != nil {
		return core.DevStats{}, err
	}

	today := p.now().UTC()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(Days - 1))

	days := make([]core.DailyCount, Days)
	for i := range days {
		days[i] = core.DailyCount{
			Date:  start.AddDate(0, 0, i).Format(core.DateLayout),
			Count: demoCount(i),
		}
	}

	return core.DevStats{
		Identity: core.Identity{
			Name:     "Demo Developer",
			Username: handle,
			Handles:  []string{"demo: " + handle},
		},
		Counters: core.Counters{
			Stars:            1280,
			Commits:          742,
			PullRequests:     96,
			Issues:           41,
			ContributedRepos: 17,
		},
		Days: days,
	}, nil
}

// demoCount yields a weekly rhythm with a rest day every ninth day, except in
// the final two weeks which are unbroken.
func demoCount(i int) int {
	if i < Days-14 && i%9 == 4 {
		return 0
	}
	return 1 + (i*7+3)%6
}
