package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/particle"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	mosaicTargetCells = 2200
	mosaicMinCell     = 10
	mosaicGap         = 1
	mosaicDrift       = 0.4
)

// mosaic tints a grid of cells by the nearest living particle, a coarse
// Voronoi diagram that shifts as particles drift.
type mosaic struct {
	env  *Env
	cell int
	cols int
	rows int
}

func newMosaic(env *Env) Style {
	m := &mosaic{env: env}

	// Pick a cell size that keeps the grid small enough for the
	// per-frame nearest-particle scan.
	area := env.Surface.W * env.Surface.H
	m.cell = mosaicMinCell
	for area/(m.cell*m.cell) > mosaicTargetCells {
		m.cell++
	}

	m.cols = max(1, env.Surface.W/m.cell)
	m.rows = max(1, env.Surface.H/m.cell)

	return m
}

func (m *mosaic) Advance(t float64) {
	s := m.env.Surface
	ps := m.env.Particles

	for _, p := range ps {
		p.PrevX, p.PrevY = p.X, p.Y
		p.X = p.OriginX + math.Sin(t*mosaicDrift+p.Phase)*float64(m.cell)*2
		p.Y = p.OriginY + math.Cos(t*mosaicDrift*0.8+p.Phase)*float64(m.cell)*2
	}

	for cy := range m.rows {
		for cx := range m.cols {
			px := float64(cx*m.cell) + float64(m.cell)/2
			py := float64(cy*m.cell) + float64(m.cell)/2

			nearest, dist := m.nearestParticle(px, py)
			if nearest == nil {
				// No particles: leave the backdrop showing through.
				continue
			}

			r, g, b := m.env.toneRGB(nearest.Hue)

			maxDist := float64(s.W + s.H)
			a := clampF(1.2-dist/(maxDist*0.25), 0.1, 0.95) * nearest.Alpha
			s.FillRect(cx*m.cell, cy*m.cell, m.cell-mosaicGap, m.cell-mosaicGap, r, g, b, a)
		}
	}
}

// nearestParticle is deliberately brute-force: the population is capped and
// the grid bounded, so the scan stays cheap and exactly reproducible.
func (m *mosaic) nearestParticle(x, y float64) (*particle.Particle, float64) {
	var nearest *particle.Particle

	best := math.MaxFloat64
	for _, p := range m.env.Particles {
		dx := p.X - x
		dy := p.Y - y

		d := dx*dx + dy*dy
		if d < best {
			best = d
			nearest = p
		}
	}

	return nearest, math.Sqrt(best)
}

func init() {
	Register(signature.StyleMosaic, newMosaic)
}
