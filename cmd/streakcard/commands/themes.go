package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newThemesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE:  runThemes,
	}

	cmd.Flags().String(flagThemeFile, "", "YAML theme file to include in the listing")

	return cmd
}

func runThemes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	themes, _, err := loadThemes(cfg, logger)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Name", "Chart", "Accent", "Divider", "Description"})
	for i, name := range themes.Names() {
		th, _ := themes.Lookup(name)
		label := th.Name
		if i == 0 {
			label += " *"
		}
		tbl.AppendRow(table.Row{label, th.Layout.ChartVariant, th.Layout.AccentShape, th.Layout.DividerStyle, th.Description})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d themes", len(themes.Names())), "", "", "", "* fallback"})

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}
