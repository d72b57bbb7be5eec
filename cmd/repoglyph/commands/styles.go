package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

// NewStylesCommand creates the styles command.
func NewStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the style catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"#", "Key", "Name", "Tones", "Speed", "Border"})

			for i, profile := range signature.Catalog() {
				tw.AppendRow(table.Row{
					i,
					profile.Key,
					profile.Name,
					profile.PaletteCount,
					fmt.Sprintf("%.2fx", profile.SpeedScale),
					profile.Border,
				})
			}

			tw.Render()

			return nil
		},
	}
}
