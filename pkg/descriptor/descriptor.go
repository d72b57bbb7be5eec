// Package descriptor defines the repository metadata shape consumed by the
// visualization engine. A descriptor is immutable input: the engine never
// mutates it, and every structure derived from it is a pure function of it.
package descriptor

import "time"

// DefaultChangeTotal is assumed when a commit carries no change statistics.
const DefaultChangeTotal = 10

// Repository describes one repository to visualize.
//
// Languages and Contributors are ordered slices rather than maps: the first
// language entry is the dominant language and drives hue derivation, so the
// ordering supplied by the provider is significant.
type Repository struct {
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"created_at,omitzero"`
	Languages    []Language    `json:"languages"`
	Contributors []Contributor `json:"contributors"`
	Commits      []Commit      `json:"commits"`
}

// Language is one entry of the repository language breakdown.
type Language struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// Contributor is one author with an aggregate contribution count.
type Contributor struct {
	Name          string `json:"name"`
	Contributions int    `json:"contributions"`
}

// Commit is a single commit record. Stats is optional; ChangeTotal
// substitutes DefaultChangeTotal when it is absent.
type Commit struct {
	ID          string       `json:"id"`
	AuthorName  string       `json:"author_name"`
	AuthorEmail string       `json:"author_email"`
	Timestamp   time.Time    `json:"timestamp,omitzero"`
	Message     string       `json:"message"`
	Stats       *ChangeStats `json:"stats,omitempty"`
}

// ChangeStats holds per-commit diff statistics.
type ChangeStats struct {
	Total     int `json:"total"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// ChangeTotal returns the total changed lines, defaulting when unknown.
func (c *Commit) ChangeTotal() int {
	if c.Stats == nil {
		return DefaultChangeTotal
	}

	return c.Stats.Total
}

// DominantLanguage returns the first language name, or "" when none exist.
func (r *Repository) DominantLanguage() string {
	if len(r.Languages) == 0 {
		return ""
	}

	return r.Languages[0].Name
}
