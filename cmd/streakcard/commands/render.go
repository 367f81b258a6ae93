package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch activity for one user and write the card",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}

	cmd.Flags().StringP(flagUser, "u", "", "user handle on the activity source")
	cmd.Flags().StringP(flagTheme, "t", "", "theme name (unknown names use the default theme)")
	cmd.Flags().String(flagThemeFile, "", "YAML theme file to register before resolving the theme")
	cmd.Flags().StringP(flagOutput, "o", "", "output SVG path")
	cmd.Flags().IntP(flagWindow, "w", 0, "number of days shown in the chart")
	cmd.Flags().String(flagSource, "", "activity source: github or demo")

	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.RequireUser(); err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	c, err := p.render(cmd.Context(), cfg.Card.User, cfg.Card.Output, true)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
		"streakcard: wrote %s for %q (total %d, current streak %d, longest %d)\n",
		c.Path, c.User, c.Metrics.Total, c.Metrics.CurrentStreak, c.Metrics.LongestStreak)

	return nil
}
