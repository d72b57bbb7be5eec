package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	terrainBaseLayers = 4
	terrainNoiseScale = 0.006
	terrainScroll     = 0.3
	terrainLightDrift = 0.5
)

type terrainLayer struct {
	base float64
	amp  float64
	tone int
}

// terrain redraws layered noise ridgelines every frame, scrolling slowly,
// with particles as drifting lights above the horizon.
type terrain struct {
	env    *Env
	layers []terrainLayer
}

func newTerrain(env *Env) Style {
	tr := &terrain{env: env}

	count := terrainBaseLayers + int(env.Sig.Complexity/5)
	h := float64(env.Surface.H)

	tr.layers = make([]terrainLayer, count)
	for i := range tr.layers {
		frac := float64(i+1) / float64(count)
		tr.layers[i] = terrainLayer{
			base: h * (0.35 + 0.55*frac),
			amp:  h * (0.05 + env.Rand.Float64()*0.12),
			tone: i,
		}
	}

	return tr
}

func (tr *terrain) Advance(t float64) {
	s := tr.env.Surface

	// Back-to-front: nearer layers paint over farther ones.
	for li, layer := range tr.layers {
		frac := float64(li+1) / float64(len(tr.layers))
		r, g, b := tr.env.Palette.Tone(layer.tone).Shade(1.2 - 0.8*frac)

		for x := range s.W {
			nx := float64(x)*terrainNoiseScale + float64(li)*10
			ridge := layer.base + tr.env.Noise.At(nx+t*terrainScroll, float64(li)*3.7)*layer.amp

			y0 := int(ridge)
			if y0 < 0 {
				y0 = 0
			}

			s.FillRect(x, y0, 1, s.H-y0, r, g, b, 0.85)
		}
	}

	// Drifting lights above the ridges.
	for _, p := range tr.env.Particles {
		p.PrevX, p.PrevY = p.X, p.Y
		p.X = wrapCoord(p.OriginX+t*terrainLightDrift*p.Size*4, float64(s.W))
		p.Y = p.OriginY*0.4 + 10

		r, g, b := tr.env.toneRGB(p.Hue)
		glow := 0.4 + 0.3*math.Sin(t*2+p.Phase)
		s.FillCircle(p.X, p.Y, p.Size*0.4, r, g, b, p.Alpha*glow)
	}
}

func init() {
	Register(signature.StyleTerrain, newTerrain)
}
