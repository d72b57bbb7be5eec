package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	nebulaClouds      = 9
	nebulaCloudAlpha  = 0.04
	nebulaSpiralTurns = 2.5
	nebulaBreath      = 0.12
)

type nebulaCloud struct {
	angle  float64
	radius float64
	size   float64
	drift  float64
	hue    float64
}

// nebula spins particles along a spiral arm around the surface center while
// translucent gas clouds rotate behind them.
type nebula struct {
	env    *Env
	clouds []nebulaCloud
	angles []float64
	radii  []float64
}

func newNebula(env *Env) Style {
	n := &nebula{env: env}

	maxR := math.Min(float64(env.Surface.W), float64(env.Surface.H)) * 0.45

	count := int(nebulaClouds * env.Sig.Profile.Density)
	n.clouds = make([]nebulaCloud, count)
	for i := range n.clouds {
		n.clouds[i] = nebulaCloud{
			angle:  env.Rand.Float64() * 2 * math.Pi,
			radius: env.Rand.Float64() * maxR * 0.8,
			size:   maxR * (0.15 + env.Rand.Float64()*0.25),
			drift:  0.05 + env.Rand.Float64()*0.15,
			hue:    env.Sig.PrimaryHue + env.Rand.Float64()*60 - 30,
		}
	}

	// Spiral placement: commit order becomes arm position.
	n.angles = make([]float64, len(env.Particles))
	n.radii = make([]float64, len(env.Particles))
	for i := range env.Particles {
		frac := float64(i) / math.Max(1, float64(len(env.Particles)-1))
		n.angles[i] = frac * nebulaSpiralTurns * 2 * math.Pi
		n.radii[i] = maxR * (0.1 + 0.9*frac)
	}

	return n
}

func (n *nebula) Advance(t float64) {
	s := n.env.Surface
	cx := float64(s.W) / 2
	cy := float64(s.H) / 2

	for i := range n.clouds {
		c := &n.clouds[i]
		a := c.angle + t*c.drift
		r, g, b := n.env.toneRGB(c.hue)
		s.FillCircle(cx+math.Cos(a)*c.radius, cy+math.Sin(a)*c.radius, c.size, r, g, b, nebulaCloudAlpha)
	}

	for i, p := range n.env.Particles {
		breath := 1 + nebulaBreath*math.Sin(t*1.5+p.Phase)
		a := n.angles[i] + t*0.4

		p.PrevX, p.PrevY = p.X, p.Y
		p.X = cx + math.Cos(a)*n.radii[i]*breath
		p.Y = cy + math.Sin(a)*n.radii[i]*breath

		r, g, b := n.env.toneRGB(p.Hue)
		s.FillCircle(p.X, p.Y, p.Size*0.45, r, g, b, p.Alpha*0.8)
	}

	// Bright core.
	cr, cg, cb := n.env.toneRGB(n.env.Sig.TertiaryHue)
	s.FillCircle(cx, cy, 4+2*math.Sin(t*2), cr, cg, cb, 0.25)
}

func init() {
	Register(signature.StyleNebula, newNebula)
}
