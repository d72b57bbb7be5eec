package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/palette"
	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

func testSignature(t *testing.T) *signature.Signature {
	t.Helper()

	return signature.Derive(&descriptor.Repository{
		Name:      "acme/widgets",
		Languages: []descriptor.Language{{Name: "JavaScript", Bytes: 8000}},
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	sig := testSignature(t)

	a := palette.Generate(sig)
	b := palette.Generate(sig)
	assert.Equal(t, a, b)
}

func TestGenerate_CountAndRanges(t *testing.T) {
	t.Parallel()

	sig := testSignature(t)
	p := palette.Generate(sig)

	require.Len(t, p.Tones, sig.Profile.PaletteCount)

	for _, tone := range p.Tones {
		assert.GreaterOrEqual(t, tone.Hue, 0.0)
		assert.Less(t, tone.Hue, 360.0)
		assert.GreaterOrEqual(t, tone.Saturation, 55.0)
		assert.LessOrEqual(t, tone.Saturation, 90.0)
		assert.GreaterOrEqual(t, tone.Lightness, 40.0)
		assert.LessOrEqual(t, tone.Lightness, 70.0)
	}
}

func TestNearest_ExactHit(t *testing.T) {
	t.Parallel()

	p := palette.Palette{Tones: []palette.Tone{
		{Hue: 10, Saturation: 60, Lightness: 50},
		{Hue: 200, Saturation: 60, Lightness: 50},
		{Hue: 350, Saturation: 60, Lightness: 50},
	}}

	for _, tone := range p.Tones {
		assert.Equal(t, tone, p.Nearest(tone.Hue))
	}
}

func TestNearest_CircularDistance(t *testing.T) {
	t.Parallel()

	p := palette.Palette{Tones: []palette.Tone{
		{Hue: 10},
		{Hue: 200},
	}}

	// 355 is 15 degrees from 10 across the wrap and 155 from 200.
	assert.Equal(t, p.Tones[0], p.Nearest(355))
}

// A hue exactly between two tones may resolve to either, but repeated calls
// must agree.
func TestNearest_TieStable(t *testing.T) {
	t.Parallel()

	p := palette.Palette{Tones: []palette.Tone{{Hue: 0}, {Hue: 180}}}

	first := p.Nearest(90)
	for range 50 {
		assert.Equal(t, first, p.Nearest(90))
	}
}

func TestNearest_EmptyPalette(t *testing.T) {
	t.Parallel()

	var p palette.Palette
	tone := p.Nearest(123)
	assert.InDelta(t, 123, tone.Hue, 1e-9)
}

func TestRenderBackdrop_AllTagsAndFallback(t *testing.T) {
	t.Parallel()

	sig := testSignature(t)

	tags := []string{
		signature.BackdropFlat,
		signature.BackdropRadialNight,
		signature.BackdropRadialCore,
		signature.BackdropLinearDusk,
		signature.BackdropLinearMoss,
		signature.BackdropLinearHorizon,
		"mystery-tag",
	}

	for _, tag := range tags {
		s := *sig
		s.Profile.Backdrop = tag

		surf := raster.New(16, 16)
		palette.RenderBackdrop(surf, &s)

		// Every pixel stays opaque.
		for i := 3; i < len(surf.Pix); i += 4 {
			require.Equal(t, byte(0xFF), surf.Pix[i], "tag %s", tag)
		}
	}
}

func TestRenderBackdrop_Deterministic(t *testing.T) {
	t.Parallel()

	sig := testSignature(t)

	a := raster.New(32, 32)
	b := raster.New(32, 32)
	palette.RenderBackdrop(a, sig)
	palette.RenderBackdrop(b, sig)

	assert.Equal(t, a.Pix, b.Pix)
}

func TestTone_RGBStable(t *testing.T) {
	t.Parallel()

	tone := palette.Tone{Hue: 276, Saturation: 70, Lightness: 55}

	r1, g1, b1 := tone.RGB()
	r2, g2, b2 := tone.RGB()
	assert.Equal(t, [3]byte{r1, g1, b1}, [3]byte{r2, g2, b2})
}
