package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	radarRings     = 4
	radarSweepRate = 0.9
	radarBeamArc   = 0.25
	radarDecay     = 0.985
	radarRingAlpha = 0.10
)

// radar sweeps a beam around the surface center; particles flare into blips
// as the beam passes over their bearing, then decay until the next pass.
type radar struct {
	env     *Env
	blips   []float64
	bearing []float64
	dist    []float64
	maxR    float64
}

func newRadar(env *Env) Style {
	r := &radar{env: env}

	cx := float64(env.Surface.W) / 2
	cy := float64(env.Surface.H) / 2
	r.maxR = math.Min(cx, cy) * 0.92

	r.blips = make([]float64, len(env.Particles))
	r.bearing = make([]float64, len(env.Particles))
	r.dist = make([]float64, len(env.Particles))

	for i, p := range env.Particles {
		dx := p.OriginX - cx
		dy := p.OriginY - cy
		r.bearing[i] = math.Atan2(dy, dx)
		r.dist[i] = clampF(math.Sqrt(dx*dx+dy*dy), 8, r.maxR)
	}

	return r
}

func (r *radar) Advance(t float64) {
	s := r.env.Surface
	cx := float64(s.W) / 2
	cy := float64(s.H) / 2

	ringR, ringG, ringB := r.env.toneRGB(r.env.Sig.PrimaryHue)
	for k := 1; k <= radarRings; k++ {
		rad := r.maxR * float64(k) / radarRings
		steps := int(2 * math.Pi * rad / 3)

		for i := range steps {
			a := float64(i) / float64(steps) * 2 * math.Pi
			s.BlendPixel(int(cx+math.Cos(a)*rad), int(cy+math.Sin(a)*rad), ringR, ringG, ringB, radarRingAlpha)
		}
	}

	sweep := math.Mod(t*radarSweepRate, 2*math.Pi)

	beamR, beamG, beamB := r.env.toneRGB(r.env.Sig.TertiaryHue)
	for k := range 6 {
		trail := sweep - float64(k)*0.03
		s.Line(cx, cy, cx+math.Cos(trail)*r.maxR, cy+math.Sin(trail)*r.maxR, beamR, beamG, beamB, 0.25*(1-float64(k)/6))
	}

	for i, p := range r.env.Particles {
		// Flare when the beam bearing matches the particle's.
		delta := math.Abs(math.Mod(sweep-r.bearing[i]+3*math.Pi, 2*math.Pi) - math.Pi)
		if delta < radarBeamArc {
			r.blips[i] = 1
		} else {
			r.blips[i] *= radarDecay
		}

		p.PrevX, p.PrevY = p.X, p.Y
		p.X = cx + math.Cos(r.bearing[i])*r.dist[i]
		p.Y = cy + math.Sin(r.bearing[i])*r.dist[i]

		if r.blips[i] < 0.02 {
			continue
		}

		pr, pg, pb := r.env.toneRGB(p.Hue)
		s.FillCircle(p.X, p.Y, p.Size*0.4+1, pr, pg, pb, r.blips[i]*p.Alpha)
	}
}

func init() {
	Register(signature.StyleRadar, newRadar)
}
