package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	orbitMinCenters = 1
	orbitSpanExtra  = 3
	orbitTrailAlpha = 0.5
	orbitCoreAlpha  = 0.3
)

type orbitCenter struct {
	x, y float64
	hue  float64
}

// orbit assigns every particle to one of a few attractor bodies and
// advances it along a circular path at a per-particle angular speed.
type orbit struct {
	env     *Env
	centers []orbitCenter
	assign  []int
	radius  []float64
	angle0  []float64
	speed   []float64
}

func newOrbit(env *Env) Style {
	o := &orbit{env: env}

	w := float64(env.Surface.W)
	h := float64(env.Surface.H)

	count := orbitMinCenters + int(env.Sig.Seed%orbitSpanExtra)
	o.centers = make([]orbitCenter, count)
	for i := range o.centers {
		angle := env.Rand.Float64() * 2 * math.Pi
		dist := env.Rand.Float64() * math.Min(w, h) * 0.25
		o.centers[i] = orbitCenter{
			x:   w/2 + math.Cos(angle)*dist,
			y:   h/2 + math.Sin(angle)*dist,
			hue: env.Sig.PrimaryHue + float64(i)*40,
		}
	}

	o.assign = make([]int, len(env.Particles))
	o.radius = make([]float64, len(env.Particles))
	o.angle0 = make([]float64, len(env.Particles))
	o.speed = make([]float64, len(env.Particles))

	for i, p := range env.Particles {
		c := o.centers[i%count]
		dx := p.OriginX - c.x
		dy := p.OriginY - c.y

		o.assign[i] = i % count
		o.radius[i] = clampF(math.Sqrt(dx*dx+dy*dy), 12, math.Min(w, h)*0.48)
		o.angle0[i] = math.Atan2(dy, dx)
		o.speed[i] = (0.3 + p.Size*0.08) * signOf(p.Phase)
	}

	return o
}

func signOf(phase float64) float64 {
	if math.Sin(phase) < 0 {
		return -1
	}

	return 1
}

func (o *orbit) Advance(t float64) {
	s := o.env.Surface

	for i, c := range o.centers {
		r, g, b := o.env.toneRGB(c.hue)
		s.FillCircle(c.x, c.y, 5+1.5*math.Sin(t*1.3+float64(i)), r, g, b, orbitCoreAlpha)
	}

	for i, p := range o.env.Particles {
		c := o.centers[o.assign[i]]
		a := o.angle0[i] + t*o.speed[i]

		p.PrevX, p.PrevY = p.X, p.Y
		p.X = c.x + math.Cos(a)*o.radius[i]
		p.Y = c.y + math.Sin(a)*o.radius[i]

		r, g, b := o.env.toneRGB(p.Hue)
		s.Line(p.PrevX, p.PrevY, p.X, p.Y, r, g, b, p.Alpha*orbitTrailAlpha)
		s.FillCircle(p.X, p.Y, p.Size*0.4, r, g, b, p.Alpha)
	}
}

func init() {
	Register(signature.StyleOrbit, newOrbit)
}
