package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	collageAlpha     = 0.10
	collageSizeScale = 5.5
	collageDrift     = 4.0
)

type collageShape struct {
	circle bool
	size   float64
	vx, vy float64
}

// collage layers slow-drifting translucent shapes, one per commit, whose
// overlaps build up painterly color fields under a very low fade rate.
type collage struct {
	env    *Env
	shapes []collageShape
}

func newCollage(env *Env) Style {
	c := &collage{env: env}

	c.shapes = make([]collageShape, len(env.Particles))
	for i, p := range env.Particles {
		c.shapes[i] = collageShape{
			circle: env.Rand.Float64() < 0.5,
			size:   p.Size * collageSizeScale * (0.6 + env.Rand.Float64()*0.8),
			vx:     env.Rand.Range(-1, 1) * collageDrift,
			vy:     env.Rand.Range(-1, 1) * collageDrift,
		}
	}

	return c
}

func (c *collage) Advance(t float64) {
	s := c.env.Surface
	w := float64(s.W)
	h := float64(s.H)

	for i, p := range c.env.Particles {
		sh := c.shapes[i]

		p.PrevX, p.PrevY = p.X, p.Y
		p.X = wrapCoord(p.OriginX+t*sh.vx+math.Sin(t*0.3+p.Phase)*6, w)
		p.Y = wrapCoord(p.OriginY+t*sh.vy+math.Cos(t*0.25+p.Phase)*6, h)

		r, g, b := c.env.toneRGB(p.Hue)
		a := collageAlpha * p.Alpha

		if sh.circle {
			s.FillCircle(p.X, p.Y, sh.size/2, r, g, b, a)

			continue
		}

		s.FillRect(int(p.X-sh.size/2), int(p.Y-sh.size/2), int(sh.size), int(sh.size), r, g, b, a)
	}
}

func init() {
	Register(signature.StyleCollage, newCollage)
}
