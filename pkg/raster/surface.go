// Package raster implements the software RGBA surface every style draws to.
// Pix uses the byte layout expected by ebiten's WritePixels, so the host can
// hand the buffer to the GPU without conversion. All primitives clip to the
// surface bounds and blend with straight (non-premultiplied) alpha over an
// opaque destination.
package raster

import "math"

const bytesPerPixel = 4

// Surface is a W×H RGBA pixel buffer.
type Surface struct {
	W, H int
	Pix  []byte
}

// New allocates an opaque black surface.
func New(w, h int) *Surface {
	s := &Surface{W: w, H: h, Pix: make([]byte, w*h*bytesPerPixel)}
	for i := 3; i < len(s.Pix); i += bytesPerPixel {
		s.Pix[i] = 0xFF
	}

	return s
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	c := &Surface{W: s.W, H: s.H, Pix: make([]byte, len(s.Pix))}
	copy(c.Pix, s.Pix)

	return c
}

// In reports whether (x, y) is inside the surface.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Fill sets every pixel to the given opaque color.
func (s *Surface) Fill(r, g, b byte) {
	for i := 0; i < len(s.Pix); i += bytesPerPixel {
		s.Pix[i] = r
		s.Pix[i+1] = g
		s.Pix[i+2] = b
		s.Pix[i+3] = 0xFF
	}
}

// BlendPixel blends the color over the pixel at (x, y) with alpha a in [0, 1].
func (s *Surface) BlendPixel(x, y int, r, g, b byte, a float64) {
	if !s.In(x, y) || a <= 0 {
		return
	}

	if a > 1 {
		a = 1
	}

	i := (y*s.W + x) * bytesPerPixel
	s.Pix[i] = blendByte(s.Pix[i], r, a)
	s.Pix[i+1] = blendByte(s.Pix[i+1], g, a)
	s.Pix[i+2] = blendByte(s.Pix[i+2], b, a)
	s.Pix[i+3] = 0xFF
}

// FadeToward moves every pixel a fraction t toward the corresponding pixel
// of other. The two surfaces must share dimensions; mismatches are ignored.
// The render loop uses this to composite the backdrop at the style fade
// opacity, producing motion trails.
func (s *Surface) FadeToward(other *Surface, t float64) {
	if other == nil || len(other.Pix) != len(s.Pix) || t <= 0 {
		return
	}

	if t >= 1 {
		copy(s.Pix, other.Pix)

		return
	}

	for i := range s.Pix {
		s.Pix[i] = blendByte(s.Pix[i], other.Pix[i], t)
	}
}

// Resize reallocates the pixel buffer. Existing contents are discarded;
// per-pixel state cannot survive a dimension change.
func (s *Surface) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}

	s.W, s.H = w, h
	s.Pix = make([]byte, w*h*bytesPerPixel)
	for i := 3; i < len(s.Pix); i += bytesPerPixel {
		s.Pix[i] = 0xFF
	}
}

func blendByte(dst, src byte, a float64) byte {
	return byte(float64(dst)*(1-a) + float64(src)*a + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func floor(v float64) int {
	return int(math.Floor(v))
}
