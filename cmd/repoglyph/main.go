// Package main provides the entry point for the repoglyph CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/cmd/repoglyph/commands"
	"github.com/Sumatoshi-tech/repoglyph/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "repoglyph",
		Short: "Repoglyph - deterministic generative repository visualizations",
		Long: `Repoglyph turns a repository's history into a reproducible animated
abstract image. The same repository always renders the same image.

Commands:
  view      Open a window and animate the visualization
  inspect   Print the derived signature without rendering
  styles    List the style catalog
  report    Write an HTML statistics page for a repository`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().String("config", "", "config file path")

	// Add commands.
	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewStylesCommand())
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "repoglyph %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
