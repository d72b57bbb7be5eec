package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	rainCellW     = 10
	rainCellH     = 14
	rainGlyphPad  = 2
	rainTrailMin  = 6
	rainTrailSpan = 14
	rainSpeedMin  = 2.5
	rainSpeedSpan = 4.5
)

type rainColumn struct {
	offset float64
	speed  float64
	trail  int
	hue    float64
}

// rain renders the falling-glyph treatment: fixed columns of flickering
// cells with a bright head, one column population scaled by density.
type rain struct {
	env     *Env
	columns []rainColumn
}

func newRain(env *Env) Style {
	r := &rain{env: env}

	cols := max(1, env.Surface.W/rainCellW)
	r.columns = make([]rainColumn, cols)

	for i := range r.columns {
		hue := env.Sig.PrimaryHue
		if len(env.Particles) > 0 {
			hue = env.Particles[i%len(env.Particles)].Hue
		}

		r.columns[i] = rainColumn{
			offset: env.Rand.Float64(),
			speed:  rainSpeedMin + env.Rand.Float64()*rainSpeedSpan,
			trail:  rainTrailMin + env.Rand.IntN(rainTrailSpan),
			hue:    hue,
		}
	}

	return r
}

func (r *rain) Advance(t float64) {
	s := r.env.Surface
	rows := s.H/rainCellH + 1

	for ci := range r.columns {
		col := &r.columns[ci]

		headRow := math.Mod(col.offset+t*col.speed, float64(rows+col.trail))
		x := ci * rainCellW

		for k := 0; k <= col.trail; k++ {
			row := int(headRow) - k
			if row < 0 || row >= rows {
				continue
			}

			fade := 1 - float64(k)/float64(col.trail+1)

			// Flicker individual glyph cells without touching the init PRNG.
			flick := float64(cellHash(ci, row, int(t*6))%100) / 100

			var cr, cg, cb byte
			a := fade * (0.35 + 0.4*flick)
			if k == 0 {
				cr, cg, cb = 230, 255, 230
				a = 0.9
			} else {
				cr, cg, cb = r.env.toneRGB(col.hue)
			}

			r.drawGlyph(x, row*rainCellH, ci, row, int(t*3), cr, cg, cb, a)
		}
	}
}

// drawGlyph stipples a 3x5 pseudo-glyph inside the cell from a coordinate
// hash, evoking characters without a font dependency.
func (r *rain) drawGlyph(x, y, ci, row, tick int, cr, cg, cb byte, a float64) {
	bits := cellHash(ci, row, tick)

	for gy := range 5 {
		for gx := range 3 {
			if bits>>(gy*3+gx)&1 == 0 {
				continue
			}

			px := x + rainGlyphPad + gx*2
			py := y + rainGlyphPad + gy*2
			r.env.Surface.FillRect(px, py, 2, 2, cr, cg, cb, a)
		}
	}
}

func init() {
	Register(signature.StyleRain, newRain)
}
