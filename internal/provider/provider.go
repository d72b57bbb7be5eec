// Package provider builds repository descriptors from concrete sources: a
// JSON descriptor file, a local git repository, a plain source directory, or
// a synthetic generator that derives everything from the repository name.
// Providers are the only layer that touches the outside world; the engine
// consumes the descriptor they return and never performs I/O itself.
package provider

import (
	"context"
	"errors"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
)

// ErrEmptyName is returned when a source yields no repository name.
var ErrEmptyName = errors.New("repository name must not be empty")

// ErrSchemaViolation is returned when a descriptor file fails schema validation.
var ErrSchemaViolation = errors.New("descriptor does not match schema")

// ErrNoCommits is returned when a git repository has no reachable commits.
var ErrNoCommits = errors.New("repository has no commits")

// Provider turns an external source into a repository descriptor.
type Provider interface {
	Describe(ctx context.Context) (*descriptor.Repository, error)
}
