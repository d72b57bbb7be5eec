package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
	"github.com/Sumatoshi-tech/repoglyph/pkg/prng"
)

// Synthetic generation bounds. The epoch anchors the commit window so the
// same name yields the same timestamps on every run.
const (
	syntheticEpoch       = 1700000000 // 2023-11-14T22:13:20Z
	syntheticMinCommits  = 40
	syntheticSpanCommits = 160
	syntheticMinAuthors  = 3
	syntheticSpanAuthors = 8
	syntheticMinLangs    = 1
	syntheticSpanLangs   = 4
	syntheticDaySeconds  = 86400
	syntheticMaxChange   = 400
)

// syntheticLanguages is the pool synthetic descriptors draw from.
var syntheticLanguages = []string{
	"Go", "Rust", "Python", "TypeScript", "JavaScript",
	"C", "C++", "Java", "Ruby", "Haskell",
}

// Synthetic derives a full repository descriptor from a name alone. Every
// field is a pure function of the name, so the resulting visualization is
// reproducible without any repository on disk.
type Synthetic struct {
	name string
}

// NewSynthetic returns a provider generating a descriptor for name.
func NewSynthetic(name string) *Synthetic {
	return &Synthetic{name: name}
}

// Describe generates the descriptor.
func (p *Synthetic) Describe(_ context.Context) (*descriptor.Repository, error) {
	if p.name == "" {
		return nil, ErrEmptyName
	}

	rng := prng.New(int64(hashutil.StringHash(p.name)))

	contributors := syntheticContributors(rng)
	languages := syntheticLanguageSplit(rng)
	commits := syntheticCommits(rng, contributors)

	return &descriptor.Repository{
		Name:         p.name,
		CreatedAt:    commits[0].Timestamp,
		Languages:    languages,
		Contributors: contributors,
		Commits:      commits,
	}, nil
}

func syntheticContributors(rng *prng.Source) []descriptor.Contributor {
	count := syntheticMinAuthors + rng.IntN(syntheticSpanAuthors)
	contributors := make([]descriptor.Contributor, count)

	for i := range contributors {
		contributors[i] = descriptor.Contributor{
			Name:          fmt.Sprintf("dev-%02d", i+1),
			Contributions: 1 + rng.IntN(200),
		}
	}

	return contributors
}

func syntheticLanguageSplit(rng *prng.Source) []descriptor.Language {
	count := syntheticMinLangs + rng.IntN(syntheticSpanLangs)
	offset := rng.IntN(len(syntheticLanguages))

	languages := make([]descriptor.Language, count)
	share := int64(1 << 20)

	for i := range languages {
		languages[i] = descriptor.Language{
			Name:  syntheticLanguages[(offset+i)%len(syntheticLanguages)],
			Bytes: share,
		}
		share /= 2
	}

	return languages
}

func syntheticCommits(rng *prng.Source, contributors []descriptor.Contributor) []descriptor.Commit {
	count := syntheticMinCommits + rng.IntN(syntheticSpanCommits)
	commits := make([]descriptor.Commit, count)

	when := int64(syntheticEpoch)

	for i := range commits {
		author := contributors[rng.IntN(len(contributors))]
		total := 1 + rng.IntN(syntheticMaxChange)
		additions := rng.IntN(total + 1)

		commits[i] = descriptor.Commit{
			ID:          fmt.Sprintf("%08x", uint32(i)*2654435761+uint32(total)),
			AuthorName:  author.Name,
			AuthorEmail: author.Name + "@example.com",
			Timestamp:   time.Unix(when, 0).UTC(),
			Message:     syntheticMessage(rng, i),
			Stats: &descriptor.ChangeStats{
				Total:     total,
				Additions: additions,
				Deletions: total - additions,
			},
		}

		when += int64(1+rng.IntN(3)) * syntheticDaySeconds
	}

	return commits
}

func syntheticMessage(rng *prng.Source, index int) string {
	verbs := []string{"add", "fix", "refactor", "remove", "tune", "document"}
	nouns := []string{"parser", "cache", "renderer", "scheduler", "config", "index"}

	return fmt.Sprintf("%s %s (%d)", verbs[rng.IntN(len(verbs))], nouns[rng.IntN(len(nouns))], index+1)
}
