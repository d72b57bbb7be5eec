package particle_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/particle"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	testWidth  = 800
	testHeight = 600
)

func repoWithCommits(n int) *descriptor.Repository {
	base := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	commits := make([]descriptor.Commit, n)
	for i := range commits {
		commits[i] = descriptor.Commit{
			ID:         fmt.Sprintf("c%05d", i),
			AuthorName: fmt.Sprintf("dev-%d", i%4),
			Timestamp:  base.Add(time.Duration(i) * 24 * time.Hour),
			Message:    fmt.Sprintf("commit number %d", i),
			Stats:      &descriptor.ChangeStats{Total: 20 + i%80, Additions: 15, Deletions: 5},
		}
	}

	return &descriptor.Repository{
		Name:      "acme/widgets",
		Languages: []descriptor.Language{{Name: "Go", Bytes: 4000}},
		Commits:   commits,
	}
}

func TestMap_Deterministic(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(40)
	sig := signature.Derive(d)

	a := particle.Map(d, sig, testWidth, testHeight)
	b := particle.Map(d, sig, testWidth, testHeight)
	require.Equal(t, len(a), len(b))

	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}

func TestMap_CapDropsOldest(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(200)
	sig := signature.Derive(d)

	ps := particle.Map(d, sig, testWidth, testHeight)
	require.Len(t, ps, particle.Cap)

	// The survivors are the newest 150 commits, still in oldest-first order.
	assert.Equal(t, "c00050", ps[0].Commit.ID)
	assert.Equal(t, "c00199", ps[len(ps)-1].Commit.ID)
}

func TestMap_FieldRanges(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(60)
	sig := signature.Derive(d)

	for _, p := range particle.Map(d, sig, testWidth, testHeight) {
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.LessOrEqual(t, p.Size, 15.0)
		assert.GreaterOrEqual(t, p.Alpha, 0.5)
		assert.Less(t, p.Alpha, 1.0)
		assert.GreaterOrEqual(t, p.Hue, 0.0)
		assert.Less(t, p.Hue, 360.0)
		assert.GreaterOrEqual(t, p.Phase, 0.0)
		assert.Equal(t, p.X, p.OriginX)
		assert.Equal(t, p.Y, p.OriginY)
	}
}

// Changing one commit's message moves only that particle's x jitter.
func TestMap_MessageChangeIsLocal(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(30)
	sig := signature.Derive(d)
	before := particle.Map(d, sig, testWidth, testHeight)

	d2 := repoWithCommits(30)
	d2.Commits[11].Message = "a message of quite a different length entirely"
	after := particle.Map(d2, signature.Derive(d2), testWidth, testHeight)

	require.Equal(t, len(before), len(after))

	for i := range before {
		if i == 11 {
			assert.NotEqual(t, before[i].X, after[i].X, "changed commit must move")

			continue
		}

		assert.Equal(t, before[i].X, after[i].X, "commit %d must not move", i)
		assert.Equal(t, before[i].Y, after[i].Y)
	}
}

func TestMap_InvalidTimestampsFallBack(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(10)
	for i := range d.Commits {
		d.Commits[i].Timestamp = time.Time{}
	}

	sig := signature.Derive(d)
	ps := particle.Map(d, sig, testWidth, testHeight)
	require.Len(t, ps, 10)

	// The fallback window spreads particles across the x axis.
	assert.Less(t, ps[0].X, ps[len(ps)-1].X)
}

func TestMap_SingleCommitWidensWindow(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(1)
	sig := signature.Derive(d)

	ps := particle.Map(d, sig, testWidth, testHeight)
	require.Len(t, ps, 1)
	assert.InDelta(t, 0.5*testWidth, ps[0].X, 25, "single commit sits mid-window plus jitter")
}

func TestMap_EmptyCommits(t *testing.T) {
	t.Parallel()

	d := &descriptor.Repository{Name: "empty/repo"}
	sig := signature.Derive(d)

	assert.Empty(t, particle.Map(d, sig, testWidth, testHeight))
}

func TestMap_MissingStatsDefault(t *testing.T) {
	t.Parallel()

	d := repoWithCommits(3)
	for i := range d.Commits {
		d.Commits[i].Stats = nil
	}

	sig := signature.Derive(d)
	ps := particle.Map(d, sig, testWidth, testHeight)

	// ln(10+1)*3 ≈ 7.19 for the default change total.
	for _, p := range ps {
		assert.InDelta(t, 7.19, p.Size, 0.01)
	}
}
