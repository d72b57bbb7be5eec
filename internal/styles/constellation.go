package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	constellationStars    = 110
	constellationLinkDist = 90
	constellationDrift    = 0.15
	constellationTwinkle  = 3.0
)

type star struct {
	x, y   float64
	size   float64
	punch  float64
	flick  float64
}

// constellation renders commits as stars on a night field and links nearby
// commits into a graph, the classic "repository as a sky chart" treatment.
type constellation struct {
	env   *Env
	stars []star
}

func newConstellation(env *Env) Style {
	c := &constellation{env: env}

	count := int(constellationStars * env.Sig.Profile.Density)
	w := float64(env.Surface.W)
	h := float64(env.Surface.H)

	c.stars = make([]star, count)
	for i := range c.stars {
		c.stars[i] = star{
			x:     env.Rand.Float64() * w,
			y:     env.Rand.Float64() * h,
			size:  0.5 + env.Rand.Float64()*1.3,
			punch: 0.15 + env.Rand.Float64()*0.4,
			flick: env.Rand.Float64() * 2 * math.Pi,
		}
	}

	return c
}

func (c *constellation) Advance(t float64) {
	s := c.env.Surface

	for i := range c.stars {
		st := &c.stars[i]
		a := st.punch * (0.6 + 0.4*math.Sin(t*constellationTwinkle+st.flick))
		r, g, b := c.env.Palette.Tone(i).Shade(1.5)
		s.FillCircle(st.x, st.y, st.size, r, g, b, a)
	}

	ps := c.env.Particles
	for i, p := range ps {
		p.PrevX, p.PrevY = p.X, p.Y
		p.X = p.OriginX + math.Sin(t+p.Phase)*constellationDrift*10
		p.Y = p.OriginY + math.Cos(t*0.7+p.Phase)*constellationDrift*8

		for j := i + 1; j < len(ps); j++ {
			q := ps[j]
			dx := p.X - q.X
			dy := p.Y - q.Y

			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > constellationLinkDist {
				continue
			}

			lr, lg, lb := c.env.toneRGB(c.env.Sig.TertiaryHue)
			s.Line(p.X, p.Y, q.X, q.Y, lr, lg, lb, 0.18*(1-dist/constellationLinkDist))
		}
	}

	for _, p := range ps {
		r, g, b := c.env.toneRGB(p.Hue)
		s.FillCircle(p.X, p.Y, p.Size*0.5, r, g, b, p.Alpha)
		s.FillCircle(p.X, p.Y, p.Size*0.22, 255, 255, 255, p.Alpha*0.5)
	}
}

func init() {
	Register(signature.StyleConstellation, newConstellation)
}
