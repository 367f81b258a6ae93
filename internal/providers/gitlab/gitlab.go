package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vukan322/streakcard/internal/core"
)

const defaultBaseURL = "https://gitlab.com"

var errNotFound = errors.New("not found")

type Provider struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *slog.Logger
	now     func() time.Time
}

func New(token string) *Provider {
	return &Provider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// WithBaseURL points the provider at a self-hosted instance. The REST API is
// expected under /api/v4 of the same host.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// WithClock overrides the day the calendar is padded up to.
func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

func (p *Provider) Name() string {
	return "gitlab"
}

type gitlabUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type gitlabProject struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
	StarCount         int    `json:"star_count"`
}

// Fetch reads the public contribution calendar of handle. The calendar only
// lists active days, so the result is gap-filled up to today.
func (p *Provider) Fetch(ctx context.Context, handle string) (core.DevStats, error) {
	user, err := p.fetchUser(ctx, handle)
	if err != nil {
		return core.DevStats{}, fmt.Errorf("gitlab: fetch user: %w", err)
	}

	days, err := p.fetchCalendar(ctx, user.Username)
	if err != nil {
		return core.DevStats{}, fmt.Errorf("gitlab: fetch calendar: %w", err)
	}

	stars := 0
	projects, err := p.fetchProjects(ctx, user.ID)
	if err != nil {
		p.logger.Warn("gitlab: star count unavailable", "user", user.Username, "err", err)
	}
	for _, pr := range projects {
		stars += pr.StarCount
	}

	return core.DevStats{
		Identity: core.Identity{
			Name:     pickName(user),
			Username: user.Username,
			Handles:  []string{"gitlab: " + user.Username},
		},
		Counters: core.Counters{
			Stars: stars,
		},
		Days: core.ExtendTo(core.FillGaps(days), p.now()),
	}, nil
}

func (p *Provider) fetchUser(ctx context.Context, handle string) (*gitlabUser, error) {
	endpoint := fmt.Sprintf("%s/api/v4/users?username=%s", p.baseURL, url.QueryEscape(handle))

	var users []gitlabUser
	if err := p.getJSON(ctx, endpoint, &users); err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("user %q not found", handle)
	}

	return &users[0], nil
}

func (p *Provider) fetchCalendar(ctx context.Context, username string) ([]core.DailyCount, error) {
	endpoint := fmt.Sprintf("%s/users/%s/calendar.json", p.baseURL, url.PathEscape(username))

	var calendar map[string]int
	if err := p.getJSON(ctx, endpoint, &calendar); err != nil {
		return nil, err
	}

	days := make([]core.DailyCount, 0, len(calendar))
	for date, count := range calendar {
		if _, err := time.Parse(core.DateLayout, date); err != nil {
			p.logger.Debug("gitlab: skipping calendar entry", "date", date)
			continue
		}
		days = append(days, core.DailyCount{Date: date, Count: count})
	}

	return core.NormalizeDays(days), nil
}

func (p *Provider) fetchProjects(ctx context.Context, userID int) ([]gitlabProject, error) {
	var all []gitlabProject

	for page := 1; ; page++ {
		endpoint := fmt.Sprintf(
			"%s/api/v4/users/%d/projects?per_page=100&page=%d&simple=true",
			p.baseURL,
			userID,
			page,
		)

		var pageProjects []gitlabProject
		if err := p.getJSON(ctx, endpoint, &pageProjects); err != nil {
			return all, err
		}

		if len(pageProjects) == 0 {
			return all, nil
		}

		all = append(all, pageProjects...)
	}
}

func (p *Provider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	p.applyAuth(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", endpoint, errNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (p *Provider) applyAuth(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if p.token == "" {
		return
	}
	req.Header.Set("PRIVATE-TOKEN", p.token)
}

func pickName(u *gitlabUser) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
