package palette

import (
	"github.com/Sumatoshi-tech/repoglyph/pkg/prng"
	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	backdropDarkLight  = 8
	backdropCoreLight  = 26
	backdropDuskLight  = 16
	backdropFloorLight = 5

	grainCell    = 2
	grainOpacity = 0.05
)

// RenderBackdrop paints the profile's backdrop treatment onto dst. An
// unrecognized tag falls back to a flat fill of a darkened primary hue.
// When the profile requests grain, a seeded noise tile is composited at low
// opacity on top.
func RenderBackdrop(dst *raster.Surface, sig *signature.Signature) {
	primary := Tone{Hue: sig.PrimaryHue, Saturation: 45, Lightness: backdropDarkLight}
	secondary := Tone{Hue: sig.SecondaryHue, Saturation: 40, Lightness: backdropDuskLight}
	tertiary := Tone{Hue: sig.TertiaryHue, Saturation: 50, Lightness: backdropCoreLight}

	switch sig.Profile.Backdrop {
	case signature.BackdropRadialNight:
		r0, g0, b0 := Tone{Hue: sig.PrimaryHue, Saturation: 40, Lightness: 14}.RGB()
		r1, g1, b1 := Tone{Hue: sig.PrimaryHue, Saturation: 55, Lightness: 3}.RGB()
		dst.RadialGradient(float64(dst.W)/2, float64(dst.H)/2, radiusFor(dst), r0, g0, b0, r1, g1, b1)
	case signature.BackdropRadialCore:
		r0, g0, b0 := tertiary.RGB()
		r1, g1, b1 := Tone{Hue: sig.PrimaryHue, Saturation: 50, Lightness: backdropFloorLight}.RGB()
		dst.RadialGradient(float64(dst.W)/2, float64(dst.H)/2, radiusFor(dst)*0.8, r0, g0, b0, r1, g1, b1)
	case signature.BackdropLinearDusk:
		r0, g0, b0 := secondary.RGB()
		r1, g1, b1 := primary.RGB()
		dst.VerticalGradient(r0, g0, b0, r1, g1, b1)
	case signature.BackdropLinearMoss:
		r0, g0, b0 := Tone{Hue: sig.TertiaryHue, Saturation: 35, Lightness: 12}.RGB()
		r1, g1, b1 := Tone{Hue: sig.PrimaryHue, Saturation: 45, Lightness: 4}.RGB()
		dst.VerticalGradient(r0, g0, b0, r1, g1, b1)
	case signature.BackdropLinearHorizon:
		r0, g0, b0 := Tone{Hue: sig.SecondaryHue, Saturation: 45, Lightness: 22}.RGB()
		r1, g1, b1 := Tone{Hue: sig.PrimaryHue, Saturation: 50, Lightness: 6}.RGB()
		dst.VerticalGradient(r0, g0, b0, r1, g1, b1)
	default:
		r, g, b := primary.RGB()
		dst.Fill(r, g, b)
	}

	if sig.Profile.Grain {
		compositeGrain(dst, sig)
	}
}

func radiusFor(s *raster.Surface) float64 {
	w := float64(s.W)
	h := float64(s.H)
	if w > h {
		return w * 0.75
	}

	return h * 0.75
}

// compositeGrain stipples a seeded tone/alpha noise tile over the backdrop.
func compositeGrain(dst *raster.Surface, sig *signature.Signature) {
	rng := prng.New(int64(sig.Seed) + 101)
	tone := Tone{Hue: sig.TertiaryHue, Saturation: 30, Lightness: 60}
	r, g, b := tone.RGB()

	for y := 0; y < dst.H; y += grainCell {
		for x := 0; x < dst.W; x += grainCell {
			a := rng.Float64() * grainOpacity
			dst.FillRect(x, y, grainCell, grainCell, r, g, b, a)
		}
	}
}
