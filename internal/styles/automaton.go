package styles

import (
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	automatonTargetCells = 2500
	automatonMinCell     = 8
	automatonSeedDensity = 0.2
	automatonAgeCap      = 12
	automatonCadence     = 5
)

// automaton runs Conway's life on a toroidal grid seeded partly at random
// and partly by particle positions, advancing every fifth frame and tinting
// cells by age.
type automaton struct {
	env   *Env
	cols  int
	rows  int
	cell  int
	cells []int // 0 = dead, otherwise age in generations
	ticks int
}

func newAutomaton(env *Env) Style {
	a := &automaton{env: env, cell: automatonMinCell}

	area := env.Surface.W * env.Surface.H
	for area/(a.cell*a.cell) > automatonTargetCells {
		a.cell++
	}

	a.cols = max(1, env.Surface.W/a.cell)
	a.rows = max(1, env.Surface.H/a.cell)
	a.cells = make([]int, a.cols*a.rows)

	for i := range a.cells {
		if env.Rand.Float64() < automatonSeedDensity {
			a.cells[i] = 1
		}
	}

	// Commits stamp extra live cells so the colony reflects the history.
	for _, p := range env.Particles {
		cx := int(p.OriginX) / a.cell
		cy := int(p.OriginY) / a.cell
		if cx >= 0 && cx < a.cols && cy >= 0 && cy < a.rows {
			a.cells[cy*a.cols+cx] = 1
		}
	}

	return a
}

func (a *automaton) Advance(t float64) {
	a.ticks++
	if a.ticks%automatonCadence == 0 {
		a.cells = lifeStep(a.cells, a.cols, a.rows, automatonAgeCap)
	}

	s := a.env.Surface
	for cy := range a.rows {
		for cx := range a.cols {
			age := a.cells[cy*a.cols+cx]
			if age == 0 {
				continue
			}

			ageFrac := float64(age) / automatonAgeCap
			r, g, b := a.env.Palette.Tone(age).Shade(1.3 - 0.6*ageFrac)
			s.FillRect(cx*a.cell, cy*a.cell, a.cell-1, a.cell-1, r, g, b, 0.5+0.4*ageFrac)
		}
	}
}

// lifeStep applies one generation of the standard Conway rule (survive on
// 2 or 3 neighbors, birth on exactly 3) over an 8-neighbor toroidal
// neighborhood. Surviving cells age up to ageCap; newborn cells start at 1.
func lifeStep(cells []int, cols, rows, ageCap int) []int {
	next := make([]int, len(cells))

	for y := range rows {
		for x := range cols {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}

					nx := (x + dx + cols) % cols
					ny := (y + dy + rows) % rows
					if cells[ny*cols+nx] > 0 {
						neighbors++
					}
				}
			}

			idx := y*cols + x
			alive := cells[idx] > 0

			switch {
			case alive && (neighbors == 2 || neighbors == 3):
				next[idx] = min(cells[idx]+1, ageCap)
			case !alive && neighbors == 3:
				next[idx] = 1
			}
		}
	}

	return next
}

func init() {
	Register(signature.StyleAutomaton, newAutomaton)
}
