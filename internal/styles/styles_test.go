package styles_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/internal/styles"
	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/palette"
	"github.com/Sumatoshi-tech/repoglyph/pkg/particle"
	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	surfW = 160
	surfH = 120
)

func testRepo(commits int) *descriptor.Repository {
	base := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	cs := make([]descriptor.Commit, commits)
	for i := range cs {
		cs[i] = descriptor.Commit{
			ID:         fmt.Sprintf("sha-%03d", i),
			AuthorName: fmt.Sprintf("dev-%d", i%3),
			Timestamp:  base.Add(time.Duration(i) * 48 * time.Hour),
			Message:    fmt.Sprintf("work item %d", i),
			Stats:      &descriptor.ChangeStats{Total: 10 + i},
		}
	}

	return &descriptor.Repository{
		Name:         "styles/fixture",
		Languages:    []descriptor.Language{{Name: "Go", Bytes: 10000}},
		Contributors: []descriptor.Contributor{{Name: "dev-0"}, {Name: "dev-1"}, {Name: "dev-2"}},
		Commits:      cs,
	}
}

func envForStyle(t *testing.T, key string, commits int) *styles.Env {
	t.Helper()

	d := testRepo(commits)
	sig := signature.Derive(d)

	// Force the style under test; profile lookup must succeed for every
	// registered key.
	profile, ok := signature.ProfileByKey(key)
	require.True(t, ok, "style %s missing from catalog", key)
	sig.StyleID = key
	sig.Profile = profile

	pal := palette.Generate(sig)
	surface := raster.New(surfW, surfH)
	particles := particle.Map(d, sig, surfW, surfH)

	return styles.NewEnv(sig, pal, particles, surface)
}

// Every catalog entry must have a registered implementation.
func TestRegistry_CoversCatalog(t *testing.T) {
	t.Parallel()

	keys := styles.Keys()
	require.Len(t, keys, signature.ProfileCount())

	for _, p := range signature.Catalog() {
		_, ok := signature.ProfileByKey(p.Key)
		require.True(t, ok)
		assert.Contains(t, keys, p.Key)
	}
}

func TestNew_UnknownKeyFallsBack(t *testing.T) {
	t.Parallel()

	env := envForStyle(t, signature.StyleConstellation, 20)
	st := styles.New("definitely-not-a-style", env)
	require.NotNil(t, st)

	// Must render without panicking.
	st.Advance(0.1)
}

// Two independently built environments must produce identical frames: this
// is the frame-level determinism contract every style carries.
func TestStyles_FrameDeterminism(t *testing.T) {
	t.Parallel()

	for _, key := range styles.Keys() {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			envA := envForStyle(t, key, 40)
			envB := envForStyle(t, key, 40)

			styleA := styles.New(key, envA)
			styleB := styles.New(key, envB)

			for frame := range 10 {
				tt := float64(frame) * 0.013
				styleA.Advance(tt)
				styleB.Advance(tt)
			}

			assert.Equal(t, envA.Surface.Pix, envB.Surface.Pix)
		})
	}
}

// With zero particles every style degrades to static geometry; none may
// panic or write NaN-driven garbage.
func TestStyles_ZeroParticles(t *testing.T) {
	t.Parallel()

	for _, key := range styles.Keys() {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			env := envForStyle(t, key, 0)
			require.Empty(t, env.Particles)

			st := styles.New(key, env)
			for frame := range 5 {
				st.Advance(float64(frame) * 0.02)
			}
		})
	}
}

// Styles draw something: after a few frames the surface must differ from
// its initial state for a populated run.
func TestStyles_ProduceOutput(t *testing.T) {
	t.Parallel()

	for _, key := range styles.Keys() {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			env := envForStyle(t, key, 40)
			before := env.Surface.Clone()

			st := styles.New(key, env)
			for frame := range 5 {
				st.Advance(float64(frame) * 0.02)
			}

			assert.NotEqual(t, before.Pix, env.Surface.Pix, "style %s drew nothing", key)
		})
	}
}
