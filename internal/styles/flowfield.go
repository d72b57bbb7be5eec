package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	flowNoiseScale = 0.004
	flowTimeScale  = 0.12
	flowAngleTurns = 2
	flowSpeedBase  = 0.9
	flowTrailAlpha = 0.35
)

// flowField advects particles along a coherent noise field, leaving ink-like
// trails as the field slowly evolves with time.
type flowField struct {
	env   *Env
	speed []float64
}

func newFlowField(env *Env) Style {
	f := &flowField{env: env}

	f.speed = make([]float64, len(env.Particles))
	for i, p := range env.Particles {
		f.speed[i] = flowSpeedBase + p.Size*0.12
	}

	return f
}

func (f *flowField) Advance(t float64) {
	s := f.env.Surface
	w := float64(s.W)
	h := float64(s.H)

	for i, p := range f.env.Particles {
		angle := f.env.Noise.At(p.X*flowNoiseScale, p.Y*flowNoiseScale+t*flowTimeScale) * math.Pi * flowAngleTurns

		p.PrevX, p.PrevY = p.X, p.Y
		p.X += math.Cos(angle) * f.speed[i]
		p.Y += math.Sin(angle) * f.speed[i]

		// Wrap at the edges; skip the trail segment on the frame a particle
		// jumps across, or it would streak the whole surface.
		wrapped := false
		if p.X < 0 || p.X >= w {
			p.X = wrapCoord(p.X, w)
			wrapped = true
		}

		if p.Y < 0 || p.Y >= h {
			p.Y = wrapCoord(p.Y, h)
			wrapped = true
		}

		r, g, b := f.env.toneRGB(p.Hue)
		if wrapped {
			s.BlendPixel(int(p.X), int(p.Y), r, g, b, p.Alpha*flowTrailAlpha)

			continue
		}

		s.Line(p.PrevX, p.PrevY, p.X, p.Y, r, g, b, p.Alpha*flowTrailAlpha)
	}
}

func init() {
	Register(signature.StyleFlowField, newFlowField)
}
