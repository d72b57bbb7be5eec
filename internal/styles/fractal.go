package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	fractalMaxDepth   = 7
	fractalLenDecay   = 0.72
	fractalSwayScale  = 0.35
	fractalLeafPulse  = 2.2
	fractalBaseSpread = 0.5
)

// fractalBranch is one edge of the tree. Positions are recomputed every
// frame from the angle chain, so the whole tree sways coherently.
type fractalBranch struct {
	parent int // index into branches; -1 for the trunk
	angle  float64
	length float64
	depth  int
}

type fractalLeaf struct {
	branch int
	hue    float64
	phase  float64
	size   float64
}

// fractal grows a recursive branch tree from the bottom of the surface.
// Branching factor and angular spread derive from the signature; the noise
// field perturbs branch angles over time.
type fractal struct {
	env      *Env
	branches []fractalBranch
	leaves   []fractalLeaf
	xs, ys   []float64 // per-frame endpoint scratch
}

func newFractal(env *Env) Style {
	f := &fractal{env: env}

	depth := 4 + int(env.Sig.Complexity/5)
	if depth > fractalMaxDepth {
		depth = fractalMaxDepth
	}

	trunkLen := float64(env.Surface.H) * 0.28
	f.branches = append(f.branches, fractalBranch{parent: -1, angle: -math.Pi / 2, length: trunkLen, depth: 0})
	f.grow(0, depth)

	f.xs = make([]float64, len(f.branches))
	f.ys = make([]float64, len(f.branches))

	// Particles become leaves on deterministic branch assignments.
	for i, p := range env.Particles {
		f.leaves = append(f.leaves, fractalLeaf{
			branch: i % len(f.branches),
			hue:    p.Hue,
			phase:  p.Phase,
			size:   p.Size * 0.35,
		})
	}

	return f
}

// grow recursively attaches children to branch i until maxDepth.
func (f *fractal) grow(i, maxDepth int) {
	b := f.branches[i]
	if b.depth >= maxDepth {
		return
	}

	children := 2
	if f.env.Rand.Float64() < 0.3 {
		children = 3
	}

	spread := fractalBaseSpread + f.env.Rand.Float64()*0.5
	for c := range children {
		frac := 0.5
		if children > 1 {
			frac = float64(c) / float64(children-1)
		}

		child := fractalBranch{
			parent: i,
			angle:  b.angle + (frac-0.5)*2*spread,
			length: b.length * (fractalLenDecay + f.env.Rand.Float64()*0.1),
			depth:  b.depth + 1,
		}

		f.branches = append(f.branches, child)
		f.grow(len(f.branches)-1, maxDepth)
	}
}

func (f *fractal) Advance(t float64) {
	s := f.env.Surface
	rootX := float64(s.W) / 2
	rootY := float64(s.H) - 2

	for i, b := range f.branches {
		px, py := rootX, rootY
		if b.parent >= 0 {
			px, py = f.xs[b.parent], f.ys[b.parent]
		}

		sway := f.env.Noise.At(float64(i)*0.13, t*0.5) * fractalSwayScale * float64(b.depth) / fractalMaxDepth
		angle := b.angle + sway

		f.xs[i] = px + math.Cos(angle)*b.length
		f.ys[i] = py + math.Sin(angle)*b.length

		depthFrac := float64(b.depth) / fractalMaxDepth
		r, g, b8 := f.env.Palette.Tone(b.depth).Shade(0.6 + depthFrac*0.7)
		s.Line(px, py, f.xs[i], f.ys[i], r, g, b8, 0.35+0.3*(1-depthFrac))
	}

	for _, leaf := range f.leaves {
		pulse := 0.5 + 0.5*math.Sin(t*fractalLeafPulse+leaf.phase)
		r, g, b := f.env.toneRGB(leaf.hue)
		s.FillCircle(f.xs[leaf.branch], f.ys[leaf.branch], leaf.size, r, g, b, 0.3+0.4*pulse)
	}
}

func init() {
	Register(signature.StyleFractal, newFractal)
}
