package provider

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
)

// LocalDir builds a descriptor from a plain source directory with no git
// history. Languages come from an enry pass over the files; commits and
// contributors are synthesized deterministically from the directory name, so
// the same tree renders the same image every time.
type LocalDir struct {
	path string
}

// NewLocalDir returns a provider for the directory at path.
func NewLocalDir(path string) *LocalDir {
	return &LocalDir{path: path}
}

// Describe scans the directory and assembles the descriptor.
func (p *LocalDir) Describe(ctx context.Context) (*descriptor.Repository, error) {
	abs, err := filepath.Abs(p.path)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." {
		return nil, ErrEmptyName
	}

	languages, err := scanLanguages(ctx, abs)
	if err != nil {
		return nil, err
	}

	base, err := NewSynthetic(name).Describe(ctx)
	if err != nil {
		return nil, err
	}

	if len(languages) > 0 {
		base.Languages = languages
	}

	return base, nil
}

// scanLanguages walks the tree summing file sizes per detected language.
// Hidden and vendored paths are skipped.
func scanLanguages(ctx context.Context, root string) ([]descriptor.Language, error) {
	totals := map[string]int64{}

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if entry.IsDir() {
			if rel != "." && (strings.HasPrefix(entry.Name(), ".") || enry.IsVendor(rel+"/")) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") || enry.IsVendor(rel) {
			return nil
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil // File vanished mid-walk; skip it.
		}

		lang := detectFileLanguage(path, entry.Name(), info.Size())
		if lang == "" {
			return nil
		}

		totals[lang] += info.Size()

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan directory: %w", walkErr)
	}

	return sortedLanguages(totals), nil
}

func detectFileLanguage(path, name string, size int64) string {
	lang := enry.GetLanguage(name, nil)
	if lang != "" {
		return lang
	}

	if size > maxDetectionBlobSize {
		return ""
	}

	contents, err := os.ReadFile(path)
	if err != nil || len(contents) == 0 {
		return ""
	}

	return enry.GetLanguage(name, contents)
}
