// Package config loads streakcard settings from a YAML file, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrMissingUser        = errors.New("card user is required")
	ErrInvalidWindow      = errors.New("card window must be positive")
	ErrUnknownSource      = errors.New("unknown activity source")
	ErrInvalidTimeout     = errors.New("fetch timeout must be positive")
	ErrInvalidConcurrency = errors.New("batch concurrency must be positive")
)

// Activity sources.
const (
	SourceGitHub = "github"
	SourceDemo   = "demo"
)

// Default configuration values.
const (
	DefaultOutput      = "card.svg"
	DefaultWindow      = 30
	DefaultSource      = SourceGitHub
	DefaultTimeout     = 20 * time.Second
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultConcurrency = 4
	envPrefix          = "STREAKCARD"
)

type Config struct {
	Card    CardConfig    `mapstructure:"card"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	GitLab  GitLabConfig  `mapstructure:"gitlab"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`
	Batch   BatchConfig   `mapstructure:"batch"`
}

type CardConfig struct {
	User      string `mapstructure:"user"`
	Theme     string `mapstructure:"theme"`
	ThemeFile string `mapstructure:"theme_file"`
	Output    string `mapstructure:"output"`
	Source    string `mapstructure:"source"`
	Window    int    `mapstructure:"window"`
}

type GitHubConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

// GitLabConfig enables merging a GitLab calendar when User is set.
type GitLabConfig struct {
	User    string `mapstructure:"user"`
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// legacyEnv maps keys to the environment names used by older card generators.
var legacyEnv = map[string]string{
	"github.token": "GH_TOKEN",
	"card.user":    "CARD_USERNAME",
	"card.theme":   "CARD_THEME",
	"card.output":  "CARD_OUTPUT",
}

// Load reads configuration with Read and validates it.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// Read loads configuration without validating it, so callers can apply
// overrides first. An empty configPath searches for streakcard.yaml in the
// working directory and ./config; a missing file there is not an error.
func Read(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("streakcard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, legacy := range legacyEnv {
		err := v.BindEnv(key, envName(key), legacy)
		if err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	cfg.Card.Source = strings.ToLower(strings.TrimSpace(cfg.Card.Source))

	return &cfg, nil
}

// Validate checks settings shared by every command. The card user is checked
// separately by RequireUser since batch runs take users from arguments.
func (c *Config) Validate() error {
	if c.Card.Window <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, c.Card.Window)
	}

	switch c.Card.Source {
	case SourceGitHub, SourceDemo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Card.Source)
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Fetch.Timeout)
	}

	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Batch.Concurrency)
	}

	return nil
}

func (c *Config) RequireUser() error {
	if strings.TrimSpace(c.Card.User) == "" {
		return ErrMissingUser
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("card.user", "")
	v.SetDefault("card.theme", "")
	v.SetDefault("card.theme_file", "")
	v.SetDefault("card.output", DefaultOutput)
	v.SetDefault("card.source", DefaultSource)
	v.SetDefault("card.window", DefaultWindow)

	v.SetDefault("github.token", "")
	v.SetDefault("github.base_url", "")

	v.SetDefault("gitlab.user", "")
	v.SetDefault("gitlab.token", "")
	v.SetDefault("gitlab.base_url", "")

	v.SetDefault("fetch.timeout", DefaultTimeout)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("batch.concurrency", DefaultConcurrency)
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
