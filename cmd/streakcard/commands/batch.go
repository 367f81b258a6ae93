package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultOutDir = "cards"

var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <user>...",
		Short: "Render cards for several users in parallel",
		Long: `Render one card per user into --out-dir as <user>.svg.

The GitLab merge is skipped since gitlab.user names a single account.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().String(flagOutDir, defaultOutDir, "directory for the rendered cards")
	cmd.Flags().StringP(flagTheme, "t", "", "theme name (unknown names use the default theme)")
	cmd.Flags().String(flagThemeFile, "", "YAML theme file to register before resolving the theme")
	cmd.Flags().IntP(flagWindow, "w", 0, "number of days shown in the chart")
	cmd.Flags().String(flagSource, "", "activity source: github or demo")
	cmd.Flags().Int(flagConcurrent, 0, "maximum number of users fetched at once")

	return cmd
}

func runBatch(cmd *cobra.Command, users []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
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

	outDir, err := cmd.Flags().GetString(flagOutDir)
	if err != nil {
		return err
	}

	cards := make([]card, len(users))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Batch.Concurrency)

	for i, user := range users {
		g.Go(func() error {
			path := filepath.Join(outDir, cardFileName(user))

			c, err := p.render(ctx, user, path, false)
			if err != nil {
				return fmt.Errorf("user %s: %w", user, err)
			}

			cards[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"User", "Total", "Current", "Longest", "Last active", "File"})
	for _, c := range cards {
		tbl.AppendRow(table.Row{c.User, c.Metrics.Total, c.Metrics.CurrentStreak, c.Metrics.LongestStreak, c.Metrics.LastActive, c.Path})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d cards", len(cards))})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tbl.Render())
	color.New(color.FgGreen).Fprintf(out, "streakcard: wrote %d cards to %s\n", len(cards), outDir)

	return nil
}

func cardFileName(user string) string {
	return fileNameReplacer.Replace(strings.TrimSpace(user)) + ".svg"
}
