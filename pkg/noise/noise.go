// Package noise implements a seeded 2D gradient noise field (the classic
// improved-Perlin construction). The permutation table is shuffled with the
// deterministic LCG from pkg/prng, so a fixed seed always yields the exact
// same scalar field. Styles sample it for organic, frame-coherent motion.
package noise

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/prng"
)

const tableSize = 256

// Field is an immutable 2D noise field. Safe for concurrent reads.
type Field struct {
	perm [tableSize * 2]int
}

// New builds a Field whose permutation table is Fisher-Yates-shuffled by a
// generator seeded with seed.
func New(seed int64) *Field {
	var p [tableSize]int
	for i := range p {
		p[i] = i
	}

	rng := prng.New(seed)
	for i := tableSize - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	f := &Field{}
	for i := range f.perm {
		f.perm[i] = p[i%tableSize]
	}

	return f
}

// At evaluates the field at (x, y). Output is approximately in [-1, 1].
func (f *Field) At(x, y float64) float64 {
	xi := int(math.Floor(x)) & (tableSize - 1)
	yi := int(math.Floor(y)) & (tableSize - 1)
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := f.perm[f.perm[xi]+yi]
	ab := f.perm[f.perm[xi]+yi+1]
	ba := f.perm[f.perm[xi+1]+yi]
	bb := f.perm[f.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)

	return lerp(x1, x2, v)
}

// fade is the quintic interpolant t^3(t(6t-15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad selects one of the improved-Perlin gradient directions (the 3D set
// with z = 0) and returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := x
	if h >= 8 {
		u = y
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}

	if h&1 != 0 {
		u = -u
	}

	if h&2 != 0 {
		v = -v
	}

	return u + v
}
