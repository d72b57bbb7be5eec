package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/pkg/palette"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

// InspectCommand holds the configuration for the inspect command.
type InspectCommand struct {
	sources sourceFlags
}

// NewInspectCommand creates and configures the inspect command.
func NewInspectCommand() *cobra.Command {
	ic := &InspectCommand{}

	cobraCmd := &cobra.Command{
		Use:   "inspect [descriptor.json]",
		Short: "Print the derived visualization signature without rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ic.run(cmd, args)
		},
	}

	ic.sources.register(cobraCmd)

	return cobraCmd
}

func (ic *InspectCommand) run(cmd *cobra.Command, args []string) error {
	src, err := ic.sources.provider(args, 0)
	if err != nil {
		return err
	}

	repo, err := src.Describe(cmd.Context())
	if err != nil {
		return fmt.Errorf("describe repository: %w", err)
	}

	sig := signature.Derive(repo)
	pal := palette.Generate(sig)

	color.New(color.FgCyan, color.Bold).Fprintf(os.Stdout, "%s\n\n", repo.Name)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendRows([]table.Row{
		{"Style", fmt.Sprintf("%s (%s)", sig.Profile.Name, sig.StyleID)},
		{"Seed", sig.Seed},
		{"Primary hue", fmt.Sprintf("%.0f°", sig.PrimaryHue)},
		{"Secondary hue", fmt.Sprintf("%.0f°", sig.SecondaryHue)},
		{"Tertiary hue", fmt.Sprintf("%.0f°", sig.TertiaryHue)},
		{"Complexity", fmt.Sprintf("%.2f", sig.Complexity)},
		{"Energy", fmt.Sprintf("%.2f", sig.Energy)},
		{"Animation speed", fmt.Sprintf("%.4f", sig.AnimationSpeed)},
		{"Commits", humanize.Comma(int64(len(repo.Commits)))},
		{"Contributors", humanize.Comma(int64(len(repo.Contributors)))},
		{"Dominant language", orNone(repo.DominantLanguage())},
	})
	tw.Render()

	fmt.Fprintf(os.Stdout, "\nPalette (%d tones):\n", len(pal.Tones))

	for i, tone := range pal.Tones {
		r, g, b := tone.RGB()
		swatch := color.New(color.FgWhite)
		swatch.Fprintf(os.Stdout, "  %2d  #%02x%02x%02x  hue %.0f° sat %.0f%% light %.0f%%\n",
			i, r, g, b, tone.Hue, tone.Saturation, tone.Lightness)
	}

	if len(repo.Languages) > 0 {
		fmt.Fprintf(os.Stdout, "\nLanguages:\n")

		for _, lang := range repo.Languages {
			fmt.Fprintf(os.Stdout, "  %-16s %s\n", lang.Name, humanize.Bytes(uint64(lang.Bytes)))
		}
	}

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}

	return s
}
