// Package commands implements CLI command handlers for repoglyph.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/internal/provider"
)

// Sentinel errors for source selection.
var (
	ErrNoSource = errors.New(
		"no repository source. Pass a descriptor JSON file, or use --git, --dir or --name",
	)
	ErrMultipleSources = errors.New("exactly one repository source must be given")
)

// sourceFlags holds the mutually exclusive repository source flags shared by
// every command that needs a descriptor.
type sourceFlags struct {
	gitPath  string
	dirPath  string
	synthKey string
}

func (sf *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.gitPath, "git", "", "path to a local git repository")
	cmd.Flags().StringVar(&sf.dirPath, "dir", "", "path to a plain source directory")
	cmd.Flags().StringVar(&sf.synthKey, "name", "", "synthesize a repository from a name")
}

// provider resolves the flags and positional args into a descriptor
// provider. args may carry one positional descriptor JSON path.
func (sf *sourceFlags) provider(args []string, commitLimit int) (provider.Provider, error) {
	sources := 0

	for _, set := range []bool{sf.gitPath != "", sf.dirPath != "", sf.synthKey != "", len(args) > 0} {
		if set {
			sources++
		}
	}

	switch {
	case sources == 0:
		return nil, ErrNoSource
	case sources > 1:
		return nil, ErrMultipleSources
	case sf.gitPath != "":
		return provider.NewGitRepo(sf.gitPath, commitLimit), nil
	case sf.dirPath != "":
		return provider.NewLocalDir(sf.dirPath), nil
	case sf.synthKey != "":
		return provider.NewSynthetic(sf.synthKey), nil
	default:
		return provider.NewJSONFile(args[0]), nil
	}
}
