package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	sigilMaxCols    = 6
	sigilMaxRows    = 4
	sigilLattice    = 3
	sigilMinStrokes = 4
	sigilStrokeSpan = 4
	sigilPulse      = 1.4
)

type sigilStroke struct {
	x0, y0, x1, y1 float64 // lattice coordinates in [0, 1]
}

type sigil struct {
	strokes []sigilStroke
	hue     float64
	phase   float64
}

// sigils arranges procedurally generated rune shapes in a grid, one per
// commit up to the grid capacity, each drawn as strokes on a 3x3 lattice.
type sigils struct {
	env   *Env
	runes []sigil
	cols  int
	rows  int
}

func newSigils(env *Env) Style {
	sg := &sigils{env: env}

	count := len(env.Particles)
	if count == 0 {
		count = 8 // static geometry even with no commits
	}

	sg.cols = min(sigilMaxCols, int(math.Ceil(math.Sqrt(float64(count)))))
	sg.rows = min(sigilMaxRows, (count+sg.cols-1)/sg.cols)
	capacity := sg.cols * sg.rows

	sg.runes = make([]sigil, min(count, capacity))
	for i := range sg.runes {
		strokes := sigilMinStrokes + env.Rand.IntN(sigilStrokeSpan)

		r := sigil{strokes: make([]sigilStroke, strokes)}
		px := env.Rand.Float64()
		py := env.Rand.Float64()

		for k := range r.strokes {
			nx := float64(env.Rand.IntN(sigilLattice)) / (sigilLattice - 1)
			ny := float64(env.Rand.IntN(sigilLattice)) / (sigilLattice - 1)
			r.strokes[k] = sigilStroke{x0: px, y0: py, x1: nx, y1: ny}
			px, py = nx, ny
		}

		if i < len(env.Particles) {
			r.hue = env.Particles[i].Hue
			r.phase = env.Particles[i].Phase
		} else {
			r.hue = env.Sig.PrimaryHue
			r.phase = float64(i)
		}

		sg.runes[i] = r
	}

	return sg
}

func (sg *sigils) Advance(t float64) {
	s := sg.env.Surface

	cellW := float64(s.W) / float64(sg.cols)
	cellH := float64(s.H) / float64(sg.rows)
	inset := math.Min(cellW, cellH) * 0.28

	for i, rn := range sg.runes {
		cx := float64(i%sg.cols)*cellW + cellW/2
		cy := float64(i/sg.cols)*cellH + cellH/2

		pulse := 0.55 + 0.35*math.Sin(t*sigilPulse+rn.phase)

		// One rune flares brighter on a slow deterministic rotation.
		if int(t*0.5)%max(1, len(sg.runes)) == i {
			pulse = 1
		}

		r, g, b := sg.env.toneRGB(rn.hue)
		for _, st := range rn.strokes {
			x0 := cx + (st.x0-0.5)*2*inset
			y0 := cy + (st.y0-0.5)*2*inset
			x1 := cx + (st.x1-0.5)*2*inset
			y1 := cy + (st.y1-0.5)*2*inset
			s.Line(x0, y0, x1, y1, r, g, b, pulse)
		}

		s.FillCircle(cx, cy-inset*1.25, 1.5, r, g, b, pulse*0.6)
	}
}

func init() {
	Register(signature.StyleSigils, newSigils)
}
