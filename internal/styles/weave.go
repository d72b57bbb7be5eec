package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	weaveSpacing   = 16
	weaveAmplitude = 3.0
	weaveWaveSpeed = 1.6
	weaveSegment   = 8
)

type weaveThread struct {
	tone  int
	phase float64
}

// weave draws an over/under woven grid of undulating threads; particles
// ride their author's horizontal thread as bright shuttles.
type weave struct {
	env        *Env
	horizontal []weaveThread
	vertical   []weaveThread
}

func newWeave(env *Env) Style {
	w := &weave{env: env}

	rows := max(1, env.Surface.H/weaveSpacing)
	cols := max(1, env.Surface.W/weaveSpacing)

	w.horizontal = make([]weaveThread, rows)
	for i := range w.horizontal {
		w.horizontal[i] = weaveThread{tone: env.Rand.IntN(env.Sig.Profile.PaletteCount), phase: env.Rand.Float64() * 2 * math.Pi}
	}

	w.vertical = make([]weaveThread, cols)
	for i := range w.vertical {
		w.vertical[i] = weaveThread{tone: env.Rand.IntN(env.Sig.Profile.PaletteCount), phase: env.Rand.Float64() * 2 * math.Pi}
	}

	return w
}

func (w *weave) Advance(t float64) {
	s := w.env.Surface

	// Horizontal threads, skipping alternate segments for the under-pass.
	for i, th := range w.horizontal {
		y := float64(i*weaveSpacing + weaveSpacing/2)
		r, g, b := w.env.Palette.Tone(th.tone).RGB()

		for x := 0; x < s.W; x += weaveSegment {
			if (x/weaveSegment+i)%2 == 0 {
				continue
			}

			off := math.Sin(t*weaveWaveSpeed+th.phase+float64(x)*0.02) * weaveAmplitude
			s.FillRect(x, int(y+off), weaveSegment-1, 2, r, g, b, 0.75)
		}
	}

	for j, tv := range w.vertical {
		x := float64(j*weaveSpacing + weaveSpacing/2)
		r, g, b := w.env.Palette.Tone(tv.tone).RGB()

		for y := 0; y < s.H; y += weaveSegment {
			if (y/weaveSegment+j)%2 == 1 {
				continue
			}

			off := math.Sin(t*weaveWaveSpeed*0.8+tv.phase+float64(y)*0.02) * weaveAmplitude
			s.FillRect(int(x+off), y, 2, weaveSegment-1, r, g, b, 0.75)
		}
	}

	// Shuttles: particles slide along their author band's thread.
	for _, p := range w.env.Particles {
		row := int(p.OriginY) / weaveSpacing
		if row >= len(w.horizontal) {
			row = len(w.horizontal) - 1
		}

		if row < 0 {
			row = 0
		}

		p.PrevX, p.PrevY = p.X, p.Y
		p.X = wrapCoord(p.OriginX+t*30*(0.5+p.Size*0.05), float64(s.W))
		p.Y = float64(row*weaveSpacing + weaveSpacing/2)

		r, g, b := w.env.toneRGB(p.Hue)
		s.FillCircle(p.X, p.Y, 2.2, r, g, b, p.Alpha)
	}
}

func init() {
	Register(signature.StyleWeave, newWeave)
}
