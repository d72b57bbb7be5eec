package styles

import "math"

// toneRGB snaps a raw hue to the nearest palette tone and returns its RGB.
func (e *Env) toneRGB(hue float64) (r, g, b byte) {
	return e.Palette.Nearest(hue).RGB()
}

// cellHash mixes integer coordinates and a tick into a small deterministic
// value, used by styles that need per-cell flicker without consuming the
// init PRNG during Advance.
func cellHash(x, y, tick int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(tick)*2246822519
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16

	return h
}

func wrapCoord(v, limit float64) float64 {
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}

	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
