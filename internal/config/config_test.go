package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/streakcard/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "streakcard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultOutput, cfg.Card.Output)
	assert.Equal(t, config.DefaultWindow, cfg.Card.Window)
	assert.Equal(t, config.SourceGitHub, cfg.Card.Source)
	assert.Equal(t, config.DefaultTimeout, cfg.Fetch.Timeout)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, config.DefaultConcurrency, cfg.Batch.Concurrency)
	assert.Empty(t, cfg.GitLab.User)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `card:
  user: octo
  theme: midnight
  output: out/octo.svg
  window: 14
  source: DEMO
gitlab:
  user: tanuki
  base_url: https://git.example.com
fetch:
  timeout: 45s
logging:
  level: debug
  format: json
batch:
  concurrency: 2
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "octo", cfg.Card.User)
	assert.Equal(t, "midnight", cfg.Card.Theme)
	assert.Equal(t, "out/octo.svg", cfg.Card.Output)
	assert.Equal(t, 14, cfg.Card.Window)
	assert.Equal(t, config.SourceDemo, cfg.Card.Source)
	assert.Equal(t, "tanuki", cfg.GitLab.User)
	assert.Equal(t, "https://git.example.com", cfg.GitLab.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
	require.NoError(t, cfg.RequireUser())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STREAKCARD_CARD_WINDOW", "7")
	t.Setenv("STREAKCARD_CARD_THEME", "forest")

	cfg, err := config.Load(writeConfig(t, "card:\n  window: 14\n  theme: sunset\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Card.Window)
	assert.Equal(t, "forest", cfg.Card.Theme)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("GH_TOKEN", "legacy-token")
	t.Setenv("CARD_USERNAME", "octo")
	t.Setenv("CARD_OUTPUT", "legacy.svg")

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "legacy-token", cfg.GitHub.Token)
	assert.Equal(t, "octo", cfg.Card.User)
	assert.Equal(t, "legacy.svg", cfg.Card.Output)
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("GH_TOKEN", "legacy-token")
	t.Setenv("STREAKCARD_GITHUB_TOKEN", "new-token")

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "new-token", cfg.GitHub.Token)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"zero window", "card:\n  window: 0\n", config.ErrInvalidWindow},
		{"negative window", "card:\n  window: -3\n", config.ErrInvalidWindow},
		{"unknown source", "card:\n  source: bitbucket\n", config.ErrUnknownSource},
		{"zero timeout", "fetch:\n  timeout: 0s\n", config.ErrInvalidTimeout},
		{"zero concurrency", "batch:\n  concurrency: 0\n", config.ErrInvalidConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRead_LeavesValidationToCaller(t *testing.T) {
	t.Parallel()

	cfg, err := config.Read(writeConfig(t, "card:\n  window: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Card.Window)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidWindow)

	cfg.Card.Window = 14
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	require.ErrorIs(t, cfg.RequireUser(), config.ErrMissingUser)

	cfg.Card.User = "   "
	require.ErrorIs(t, cfg.RequireUser(), config.ErrMissingUser)

	cfg.Card.User = "octo"
	require.NoError(t, cfg.RequireUser())
}
