package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vukan322/streakcard/internal/core"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "streakcard/0.1"
	reposPageSize    = 100
)

var ErrMissingToken = errors.New("github: a token is required for the GraphQL API")

// GraphQLError carries the messages of a GraphQL "errors" response.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

type Provider struct {
	client  *http.Client
	baseURL string
	token   string
}

func New(token string) *Provider {
	return &Provider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
	}
}

// WithBaseURL points the provider at another API root, e.g. GitHub Enterprise
// or a test server.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *Provider) Name() string {
	return "github"
}

const contributionsQuery = `
query($login: String!) {
  user(login: $login) {
    login
    name
    contributionsCollection {
      totalCommitContributions
      totalIssueContributions
      totalPullRequestContributions
      totalRepositoriesWithContributedCommits
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

const starsQuery = `
query($login: String!, $first: Int!, $cursor: String) {
  user(login: $login) {
    repositories(first: $first, after: $cursor, ownerAffiliations: OWNER, isFork: false) {
      nodes { stargazerCount }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

type contributionsData struct {
	User *struct {
		Login                   string `json:"login"`
		Name                    string `json:"name"`
		ContributionsCollection struct {
			TotalCommitContributions                int `json:"totalCommitContributions"`
			TotalIssueContributions                 int `json:"totalIssueContributions"`
			TotalPullRequestContributions           int `json:"totalPullRequestContributions"`
			TotalRepositoriesWithContributedCommits int `json:"totalRepositoriesWithContributedCommits"`
			ContributionCalendar                    struct {
				Weeks []struct {
					ContributionDays []struct {
						Date              string `json:"date"`
						ContributionCount int    `json:"contributionCount"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

type starsData struct {
	User *struct {
		Repositories struct {
			Nodes []struct {
				StargazerCount int `json:"stargazerCount"`
			} `json:"nodes"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"repositories"`
	} `json:"user"`
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.DevStats, error) {
	if p.token == "" {
		return core.DevStats{}, ErrMissingToken
	}

	var data contributionsData
	if err := p.graphql(ctx, contributionsQuery, map[string]any{"login": handle}, &data); err != nil {
		return core.DevStats{}, fmt.Errorf("github: fetch contributions: %w", err)
	}
	if data.User == nil {
		return core.DevStats{}, fmt.Errorf("github: user %q not found", handle)
	}

	stars, err := p.sumStars(ctx, handle)
	if err != nil {
		return core.DevStats{}, fmt.Errorf("github: fetch stars: %w", err)
	}

	cc := data.User.ContributionsCollection

	var days []core.DailyCount
	for _, w := range cc.ContributionCalendar.Weeks {
		for _, d := range w.ContributionDays {
			days = append(days, core.DailyCount{Date: d.Date, Count: d.ContributionCount})
		}
	}

	return core.DevStats{
		Identity: core.Identity{
			Name:     pickName(data.User.Name, data.User.Login),
			Username: data.User.Login,
			Handles:  []string{"github: " + data.User.Login},
		},
		Counters: core.Counters{
			Stars:            stars,
			Commits:          cc.TotalCommitContributions,
			PullRequests:     cc.TotalPullRequestContributions,
			Issues:           cc.TotalIssueContributions,
			ContributedRepos: cc.TotalRepositoriesWithContributedCommits,
		},
		Days: core.NormalizeDays(days),
	}, nil
}

func (p *Provider) sumStars(ctx context.Context, handle string) (int, error) {
	var (
		total  int
		cursor *string
	)

	for {
		var data starsData
		vars := map[string]any{"login": handle, "first": reposPageSize, "cursor": cursor}
		if err := p.graphql(ctx, starsQuery, vars, &data); err != nil {
			return 0, err
		}
		if data.User == nil {
			return 0, fmt.Errorf("user %q not found", handle)
		}

		repos := data.User.Repositories
		for _, r := range repos.Nodes {
			total += r.StargazerCount
		}

		if !repos.PageInfo.HasNextPage || repos.PageInfo.EndCursor == "" {
			return total, nil
		}
		next := repos.PageInfo.EndCursor
		cursor = &next
	}
}

func (p *Provider) graphql(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := p.baseURL + "/graphql"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	p.applyHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		gqlErr := &GraphQLError{}
		for _, e := range envelope.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return gqlErr
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (p *Provider) applyHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Authorization", "Bearer "+p.token)
}

func pickName(name, login string) string {
	if name != "" {
		return name
	}
	return login
}
