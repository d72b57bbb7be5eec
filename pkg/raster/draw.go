package raster

import "math"

// FillRect blends an axis-aligned rectangle. Coordinates may extend past the
// surface; the visible part is drawn.
func (s *Surface) FillRect(x, y, w, h int, r, g, b byte, a float64) {
	if w <= 0 || h <= 0 || a <= 0 {
		return
	}

	x0 := clampInt(x, 0, s.W)
	y0 := clampInt(y, 0, s.H)
	x1 := clampInt(x+w, 0, s.W)
	y1 := clampInt(y+h, 0, s.H)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.BlendPixel(px, py, r, g, b, a)
		}
	}
}

// FillCircle blends a filled circle centered at (cx, cy).
func (s *Surface) FillCircle(cx, cy, radius float64, r, g, b byte, a float64) {
	if radius <= 0 || a <= 0 {
		return
	}

	x0 := clampInt(floor(cx-radius), 0, s.W-1)
	x1 := clampInt(floor(cx+radius)+1, 0, s.W)
	y0 := clampInt(floor(cy-radius), 0, s.H-1)
	y1 := clampInt(floor(cy+radius)+1, 0, s.H)
	rr := radius * radius

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				s.BlendPixel(px, py, r, g, b, a)
			}
		}
	}
}

// Line blends a line from (x0, y0) to (x1, y1) using DDA stepping.
func (s *Surface) Line(x0, y0, x1, y1 float64, r, g, b byte, a float64) {
	dx := x1 - x0
	dy := y1 - y0

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		s.BlendPixel(floor(x0), floor(y0), r, g, b, a)

		return
	}

	sx := dx / steps
	sy := dy / steps
	x, y := x0, y0

	for i := 0.0; i <= steps; i++ {
		s.BlendPixel(floor(x), floor(y), r, g, b, a)
		x += sx
		y += sy
	}
}

// VerticalGradient fills the whole surface with a top-to-bottom blend
// between two colors.
func (s *Surface) VerticalGradient(r0, g0, b0, r1, g1, b1 byte) {
	for y := range s.H {
		t := 0.0
		if s.H > 1 {
			t = float64(y) / float64(s.H-1)
		}

		r := blendByte(r0, r1, t)
		g := blendByte(g0, g1, t)
		b := blendByte(b0, b1, t)

		for x := range s.W {
			i := (y*s.W + x) * bytesPerPixel
			s.Pix[i] = r
			s.Pix[i+1] = g
			s.Pix[i+2] = b
			s.Pix[i+3] = 0xFF
		}
	}
}

// RadialGradient fills the whole surface with a blend from an inner color at
// (cx, cy) to an outer color at the given radius and beyond.
func (s *Surface) RadialGradient(cx, cy, radius float64, r0, g0, b0, r1, g1, b1 byte) {
	if radius <= 0 {
		s.Fill(r1, g1, b1)

		return
	}

	for y := range s.H {
		for x := range s.W {
			dx := float64(x) - cx
			dy := float64(y) - cy

			t := math.Sqrt(dx*dx+dy*dy) / radius
			if t > 1 {
				t = 1
			}

			i := (y*s.W + x) * bytesPerPixel
			s.Pix[i] = blendByte(r0, r1, t)
			s.Pix[i+1] = blendByte(g0, g1, t)
			s.Pix[i+2] = blendByte(b0, b1, t)
			s.Pix[i+3] = 0xFF
		}
	}
}

// StrokeRect blends a 1px rectangle outline, used for the decorative frame
// border.
func (s *Surface) StrokeRect(x, y, w, h int, r, g, b byte, a float64) {
	if w <= 0 || h <= 0 {
		return
	}

	s.FillRect(x, y, w, 1, r, g, b, a)
	s.FillRect(x, y+h-1, w, 1, r, g, b, a)
	s.FillRect(x, y, 1, h, r, g, b, a)
	s.FillRect(x+w-1, y, 1, h, r, g, b, a)
}
