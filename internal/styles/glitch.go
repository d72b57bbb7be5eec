package styles

import (
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	glitchMinSlices = 20
	glitchSliceSpan = 20
	glitchShiftMax  = 40
	glitchGateMod   = 7
	glitchTickRate  = 8
)

type glitchSlice struct {
	tone  int
	shade float64
}

// glitch paints horizontal color bands that tear sideways on a hash-gated
// cadence, with chromatic fringes on the displaced slices.
type glitch struct {
	env    *Env
	slices []glitchSlice
}

func newGlitch(env *Env) Style {
	g := &glitch{env: env}

	count := glitchMinSlices + int(env.Sig.Seed%glitchSliceSpan)
	g.slices = make([]glitchSlice, count)
	for i := range g.slices {
		g.slices[i] = glitchSlice{
			tone:  env.Rand.IntN(env.Sig.Profile.PaletteCount),
			shade: 0.4 + env.Rand.Float64()*0.9,
		}
	}

	return g
}

func (g *glitch) Advance(t float64) {
	s := g.env.Surface
	sliceH := max(1, s.H/len(g.slices))
	tick := int(t * glitchTickRate)

	for i, sl := range g.slices {
		y := i * sliceH

		shift := 0
		torn := cellHash(i, 0, tick)%glitchGateMod == 0
		if torn {
			shift = int(cellHash(i, 1, tick)%(glitchShiftMax*2)) - glitchShiftMax
		}

		r, gg, b := g.env.Palette.Tone(sl.tone).Shade(sl.shade)
		s.FillRect(shift, y, s.W, sliceH-1, r, gg, b, 0.55)

		if torn {
			// Chromatic fringes on the tear.
			fr, fg, fb := g.env.toneRGB(g.env.Sig.SecondaryHue)
			s.FillRect(shift-6, y, 4, sliceH-1, fr, fg, fb, 0.3)

			tr, tg, tb := g.env.toneRGB(g.env.Sig.TertiaryHue)
			s.FillRect(shift+s.W+2, y, 4, sliceH-1, tr, tg, tb, 0.3)
		}
	}

	// Commits read as bright interference ticks over the bands.
	for _, p := range g.env.Particles {
		p.PrevX, p.PrevY = p.X, p.Y
		p.X = p.OriginX
		p.Y = p.OriginY

		r, gg, b := g.env.toneRGB(p.Hue)
		s.FillRect(int(p.X), int(p.Y)-3, 2, 7, r, gg, b, p.Alpha*0.8)
	}
}

func init() {
	Register(signature.StyleGlitch, newGlitch)
}
