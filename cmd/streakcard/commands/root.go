// Package commands implements the streakcard command tree.
package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vukan322/streakcard/internal/config"
	"github.com/vukan322/streakcard/internal/logging"
)

const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
	flagUser       = "user"
	flagTheme      = "theme"
	flagThemeFile  = "theme-file"
	flagOutput     = "out"
	flagOutDir     = "out-dir"
	flagWindow     = "window"
	flagSource     = "source"
	flagConcurrent = "concurrency"
)

// NewRootCommand builds the streakcard command with all subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "streakcard",
		Short: "Render a contribution streak card as a self-contained SVG",
		Long: `streakcard fetches daily contribution counts and renders a themed SVG card
with total contributions, current and longest streak, a recent activity chart
and a short counter list.

Settings come from streakcard.yaml, STREAKCARD_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String(flagConfig, "", "config file (default ./streakcard.yaml)")
	root.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, warn, error")
	root.PersistentFlags().String(flagLogFormat, "", "log format: text or json")

	root.AddCommand(newRenderCommand())
	root.AddCommand(newBatchCommand())
	root.AddCommand(newThemesCommand())
	root.AddCommand(newVersionCommand(version))

	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "streakcard %s\n", version)
		},
	}
}

// loadConfig reads configuration, applies any flags the user set explicitly and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Read(path)
	if err != nil {
		return nil, err
	}

	overrideString(cmd, flagLogLevel, &cfg.Logging.Level)
	overrideString(cmd, flagLogFormat, &cfg.Logging.Format)
	overrideString(cmd, flagUser, &cfg.Card.User)
	overrideString(cmd, flagTheme, &cfg.Card.Theme)
	overrideString(cmd, flagThemeFile, &cfg.Card.ThemeFile)
	overrideString(cmd, flagOutput, &cfg.Card.Output)
	overrideString(cmd, flagSource, &cfg.Card.Source)
	overrideInt(cmd, flagWindow, &cfg.Card.Window)
	overrideInt(cmd, flagConcurrent, &cfg.Batch.Concurrency)
	cfg.Card.Source = strings.ToLower(strings.TrimSpace(cfg.Card.Source))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	if v, err := cmd.Flags().GetInt(name); err == nil {
		*dst = v
	}
}
