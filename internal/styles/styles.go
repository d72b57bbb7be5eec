// Package styles implements the fifteen rendering algorithms of the
// visualization engine. Every style conforms to the same two-phase
// contract: a factory builds the style's auxiliary state from the run
// environment, and Advance mutates particles and draws one frame against
// the shared raster surface.
package styles

import (
	"sort"

	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
	"github.com/Sumatoshi-tech/repoglyph/pkg/noise"
	"github.com/Sumatoshi-tech/repoglyph/pkg/palette"
	"github.com/Sumatoshi-tech/repoglyph/pkg/particle"
	"github.com/Sumatoshi-tech/repoglyph/pkg/prng"
	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

// Env is everything a style sees for one visualization run. It is rebuilt
// whenever the signature or surface size changes; styles must not retain
// state across environments.
type Env struct {
	Sig       *signature.Signature
	Palette   palette.Palette
	Particles []*particle.Particle
	Surface   *raster.Surface
	Noise     *noise.Field

	// Rand is the style's private generator, seeded from the signature and
	// style key. Factories consume it during initialization; Advance must
	// not touch it, or frame output would depend on frame history length.
	Rand *prng.Source
}

// NewEnv assembles a run environment. The noise field and the style PRNG
// are both derived from the signature seed, so two environments built from
// the same signature are interchangeable.
func NewEnv(sig *signature.Signature, pal palette.Palette, particles []*particle.Particle, surface *raster.Surface) *Env {
	styleHash := hashutil.StringHash(sig.StyleID)

	return &Env{
		Sig:       sig,
		Palette:   pal,
		Particles: particles,
		Surface:   surface,
		Noise:     noise.New(int64(sig.Seed)),
		Rand:      prng.New(int64(sig.Seed) + int64(styleHash)),
	}
}

// Style is one live rendering algorithm. Advance draws a single frame at
// elapsed time t, mutating particle state as it goes. Implementations never
// fail: with zero particles they draw only their static geometry.
type Style interface {
	Advance(t float64)
}

// Factory builds a style's state for a fresh environment.
type Factory func(env *Env) Style

var registry = map[string]Factory{}

// Register adds a style factory under its catalog key. Called from init
// functions of the style files; duplicate keys panic at startup.
func Register(key string, f Factory) {
	if _, dup := registry[key]; dup {
		panic("styles: duplicate registration for " + key)
	}

	registry[key] = f
}

// Keys returns the registered style keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// New instantiates the style registered under key. An unrecognized key
// falls back to the constellation style rather than failing.
func New(key string, env *Env) Style {
	f, ok := registry[key]
	if !ok {
		f = registry[signature.StyleConstellation]
	}

	return f(env)
}
