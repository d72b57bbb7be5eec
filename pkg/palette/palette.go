// Package palette derives the ordered color ramp and backdrop treatment for
// a visualization run. Every style draws through the palette: raw particle
// hues are snapped to the nearest tone so the whole frame commits to one
// perceptual harmony.
package palette

import (
	"math"

	"github.com/crazy3lf/colorconv"

	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
	"github.com/Sumatoshi-tech/repoglyph/pkg/prng"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	hueDegrees = 360

	defaultToneCount = 5

	spreadBase = 30
	spreadSpan = 60

	jitterSpan = 30
	jitterHalf = 15

	saturationLo = 55
	saturationHi = 90
	lightnessLo  = 40
	lightnessHi  = 70
)

// Tone is one palette entry. Saturation and Lightness are percentages.
type Tone struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// RGB converts the tone to 8-bit channels.
func (t Tone) RGB() (r, g, b byte) {
	h := math.Mod(math.Mod(t.Hue, hueDegrees)+hueDegrees, hueDegrees)
	s := clamp01(t.Saturation / 100)
	l := clamp01(t.Lightness / 100)

	r, g, b, err := colorconv.HSLToRGB(h, s, l)
	if err != nil {
		return 0, 0, 0
	}

	return r, g, b
}

// Shade returns the tone's RGB with lightness scaled by f.
func (t Tone) Shade(f float64) (r, g, b byte) {
	shaded := Tone{Hue: t.Hue, Saturation: t.Saturation, Lightness: clamp(t.Lightness*f, 0, 100)}

	return shaded.RGB()
}

// Palette is the ordered tone ramp of one run.
type Palette struct {
	Tones []Tone
}

// Generate derives the palette from the signature. Seeding folds the style
// key into the repository seed, so the same repository gets distinct but
// reproducible ramps per style.
func Generate(sig *signature.Signature) Palette {
	rng := prng.New(int64(sig.Seed ^ hashutil.StringHash(sig.StyleID)))

	count := sig.Profile.PaletteCount
	if count <= 0 {
		count = defaultToneCount
	}

	spread := float64(spreadBase + sig.Seed%spreadSpan)
	tones := make([]Tone, count)

	for i := range tones {
		var offset float64
		if len(sig.Profile.PaletteOffsets) > 0 {
			offset = sig.Profile.PaletteOffsets[i%len(sig.Profile.PaletteOffsets)]
		} else {
			offset = float64(i)*spread + rng.Float64()*jitterSpan - jitterHalf
		}

		tones[i] = Tone{
			Hue:        math.Mod(sig.PrimaryHue+offset+hueDegrees, hueDegrees),
			Saturation: rng.Range(saturationLo, saturationHi),
			Lightness:  rng.Range(lightnessLo, lightnessHi),
		}
	}

	return Palette{Tones: tones}
}

// Nearest returns the tone whose hue is closest to hue by circular distance.
// Ties resolve to the earlier tone, so repeated calls are stable.
func (p Palette) Nearest(hue float64) Tone {
	if len(p.Tones) == 0 {
		return Tone{Hue: hue, Saturation: 70, Lightness: 55}
	}

	best := 0
	bestDist := hueDistance(hue, p.Tones[0].Hue)

	for i := 1; i < len(p.Tones); i++ {
		if d := hueDistance(hue, p.Tones[i].Hue); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return p.Tones[best]
}

// Tone returns the i-th tone, wrapping around the ramp.
func (p Palette) Tone(i int) Tone {
	if len(p.Tones) == 0 {
		return Tone{Saturation: 70, Lightness: 55}
	}

	i %= len(p.Tones)
	if i < 0 {
		i += len(p.Tones)
	}

	return p.Tones[i]
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), hueDegrees)
	if d > hueDegrees/2 {
		d = hueDegrees - d
	}

	return d
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
