package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
)

func pixelAt(s *raster.Surface, x, y int) (r, g, b, a byte) {
	i := (y*s.W + x) * 4

	return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
}

func TestNew_OpaqueBlack(t *testing.T) {
	t.Parallel()

	s := raster.New(4, 3)
	require.Len(t, s.Pix, 4*3*4)

	r, g, b, a := pixelAt(s, 2, 1)
	assert.Equal(t, byte(0), r)
	assert.Equal(t, byte(0), g)
	assert.Equal(t, byte(0), b)
	assert.Equal(t, byte(0xFF), a)
}

func TestBlendPixel_ClipsAndBlends(t *testing.T) {
	t.Parallel()

	s := raster.New(2, 2)

	// Out-of-bounds writes are silently dropped.
	s.BlendPixel(-1, 0, 255, 255, 255, 1)
	s.BlendPixel(0, 5, 255, 255, 255, 1)

	s.BlendPixel(1, 1, 200, 100, 50, 0.5)
	r, g, b, _ := pixelAt(s, 1, 1)
	assert.Equal(t, byte(100), r)
	assert.Equal(t, byte(50), g)
	assert.Equal(t, byte(25), b)
}

func TestFadeToward_FullAndPartial(t *testing.T) {
	t.Parallel()

	src := raster.New(2, 2)
	src.Fill(10, 20, 30)

	dst := raster.New(2, 2)
	dst.Fill(210, 220, 230)

	dst.FadeToward(src, 1)
	r, g, b, _ := pixelAt(dst, 0, 0)
	assert.Equal(t, byte(10), r)
	assert.Equal(t, byte(20), g)
	assert.Equal(t, byte(30), b)

	dst.Fill(100, 100, 100)
	dst.FadeToward(src, 0.5)
	r, _, _, _ = pixelAt(dst, 1, 1)
	assert.Equal(t, byte(55), r)
}

func TestFadeToward_SizeMismatchIgnored(t *testing.T) {
	t.Parallel()

	s := raster.New(3, 3)
	s.Fill(9, 9, 9)
	s.FadeToward(raster.New(2, 2), 1)

	r, _, _, _ := pixelAt(s, 0, 0)
	assert.Equal(t, byte(9), r)
}

func TestFillRect_Clipping(t *testing.T) {
	t.Parallel()

	s := raster.New(4, 4)
	s.FillRect(-2, -2, 4, 4, 255, 0, 0, 1)

	r, _, _, _ := pixelAt(s, 1, 1)
	assert.Equal(t, byte(255), r)

	r, _, _, _ = pixelAt(s, 2, 2)
	assert.Equal(t, byte(0), r)
}

func TestFillCircle_CoversCenter(t *testing.T) {
	t.Parallel()

	s := raster.New(9, 9)
	s.FillCircle(4.5, 4.5, 3, 0, 255, 0, 1)

	_, g, _, _ := pixelAt(s, 4, 4)
	assert.Equal(t, byte(255), g)

	// Corners stay untouched.
	_, g, _, _ = pixelAt(s, 0, 0)
	assert.Equal(t, byte(0), g)
}

func TestLine_Endpoints(t *testing.T) {
	t.Parallel()

	s := raster.New(10, 10)
	s.Line(0, 0, 9, 9, 0, 0, 255, 1)

	_, _, b, _ := pixelAt(s, 0, 0)
	assert.Equal(t, byte(255), b)

	_, _, b, _ = pixelAt(s, 9, 9)
	assert.Equal(t, byte(255), b)

	_, _, b, _ = pixelAt(s, 5, 5)
	assert.Equal(t, byte(255), b)
}

func TestResize_GuardsAndReallocates(t *testing.T) {
	t.Parallel()

	s := raster.New(2, 2)
	s.Resize(0, 5)
	assert.Equal(t, 2, s.W)

	s.Resize(6, 3)
	assert.Equal(t, 6, s.W)
	assert.Equal(t, 3, s.H)
	assert.Len(t, s.Pix, 6*3*4)
}
