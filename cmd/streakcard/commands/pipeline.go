package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vukan322/streakcard/internal/config"
	"github.com/vukan322/streakcard/internal/core"
	"github.com/vukan322/streakcard/internal/providers"
	"github.com/vukan322/streakcard/internal/providers/demo"
	"github.com/vukan322/streakcard/internal/providers/github"
	"github.com/vukan322/streakcard/internal/providers/gitlab"
	"github.com/vukan322/streakcard/internal/render"
	"github.com/vukan322/streakcard/internal/theme"
)

const (
	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// pipeline fetches, merges and renders cards for one configuration.
type pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	themes    *theme.Registry
	themeKey  string
	primary   providers.Provider
	secondary providers.Provider
}

type card struct {
	User    string
	Path    string
	Metrics core.Metrics
}

func newPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline, error) {
	themes, key, err := loadThemes(cfg, logger)
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		cfg:      cfg,
		logger:   logger,
		themes:   themes,
		themeKey: key,
	}

	switch cfg.Card.Source {
	case config.SourceDemo:
		p.primary = demo.New()
	default:
		gh := github.New(cfg.GitHub.Token)
		if cfg.GitHub.BaseURL != "" {
			gh.WithBaseURL(cfg.GitHub.BaseURL)
		}
		p.primary = gh
	}

	if cfg.GitLab.User != "" {
		gl := gitlab.New(cfg.GitLab.Token).WithLogger(logger)
		if cfg.GitLab.BaseURL != "" {
			gl.WithBaseURL(cfg.GitLab.BaseURL)
		}
		p.secondary = gl
	} else {
		logger.Debug("gitlab user not set, skipping gitlab provider")
	}

	return p, nil
}

// loadThemes returns the builtin registry plus the configured theme file, and
// the key to resolve. A theme file without an explicit theme key selects itself.
func loadThemes(cfg *config.Config, logger *slog.Logger) (*theme.Registry, string, error) {
	themes := theme.Builtin()
	key := cfg.Card.Theme

	if cfg.Card.ThemeFile != "" {
		th, err := themes.LoadFile(cfg.Card.ThemeFile)
		if err != nil {
			return nil, "", err
		}
		logger.Debug("loaded theme file", "path", cfg.Card.ThemeFile, "theme", th.Name)
		if key == "" {
			key = th.Name
		}
	}

	if _, ok := themes.Lookup(key); !ok && key != "" {
		logger.Warn("unknown theme, using fallback", "theme", key, "fallback", themes.Fallback().Name)
	}

	return themes, key, nil
}

// fetch collects stats for user from the primary provider and, when merge is
// set, folds in the secondary provider. A secondary failure is only logged.
func (p *pipeline) fetch(ctx context.Context, user string, merge bool) (core.DevStats, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Fetch.Timeout)
	defer cancel()

	stats, err := p.primary.Fetch(ctx, user)
	if err != nil {
		return core.DevStats{}, fmt.Errorf("provider %s failed: %w", p.primary.Name(), err)
	}
	p.logger.Debug("fetched activity", "provider", p.primary.Name(), "user", user, "days", len(stats.Days))

	if !merge || p.secondary == nil {
		return stats, nil
	}

	extra, err := p.secondary.Fetch(ctx, p.cfg.GitLab.User)
	if err != nil {
		p.logger.Warn("secondary provider failed", "provider", p.secondary.Name(), "err", err)
		return stats, nil
	}
	p.logger.Debug("fetched activity", "provider", p.secondary.Name(), "user", p.cfg.GitLab.User, "days", len(extra.Days))

	return core.MergeStats(stats, extra), nil
}

func (p *pipeline) render(ctx context.Context, user, path string, merge bool) (card, error) {
	stats, err := p.fetch(ctx, user, merge)
	if err != nil {
		return card{}, err
	}

	th := p.themes.Resolve(p.themeKey)

	svg, err := render.RenderSVG(stats, th, p.cfg.Card.Window)
	if err != nil {
		return card{}, fmt.Errorf("failed to render SVG: %w", err)
	}

	if err := writeCard(path, svg); err != nil {
		return card{}, err
	}
	p.logger.Info("card written", "user", user, "theme", th.Name, "output", path)

	m := core.ComputeMetrics(stats.Days)
	if !m.HasActivity() {
		p.logger.Warn("no contributions in history", "user", user, "days", len(stats.Days))
	}

	return card{
		User:    user,
		Path:    path,
		Metrics: m,
	}, nil
}

func writeCard(path string, svg []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, svg, outputFilePerm); err != nil {
		return fmt.Errorf("failed to write SVG to %s: %w", path, err)
	}

	return nil
}
