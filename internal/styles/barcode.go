package styles

import (
	"math"

	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	barcodeScanSpeed = 0.12
	barcodeScanWidth = 60.0
	barcodePulse     = 1.8
)

// barcode renders one vertical bar per commit, positioned by commit time,
// with a light sweep scanning across the code.
type barcode struct {
	env *Env
}

func newBarcode(env *Env) Style {
	return &barcode{env: env}
}

func (bc *barcode) Advance(t float64) {
	s := bc.env.Surface
	w := float64(s.W)
	scanX := math.Mod(t*barcodeScanSpeed, 1) * w

	for _, p := range bc.env.Particles {
		p.PrevX, p.PrevY = p.X, p.Y
		p.X = p.OriginX
		p.Y = p.OriginY

		barW := max(1, int(p.Size*0.5))
		pulse := 0.5 + 0.2*math.Sin(t*barcodePulse+p.Phase)

		// Bars near the sweep flare up.
		dist := math.Abs(p.X - scanX)
		if dist < barcodeScanWidth {
			pulse += 0.4 * (1 - dist/barcodeScanWidth)
		}

		r, g, b := bc.env.toneRGB(p.Hue)
		s.FillRect(int(p.X), 0, barW, s.H, r, g, b, p.Alpha*pulse)
	}

	// The sweep itself.
	r, g, b := bc.env.toneRGB(bc.env.Sig.TertiaryHue)
	s.FillRect(int(scanX), 0, 2, s.H, r, g, b, 0.35)
}

func init() {
	Register(signature.StyleBarcode, newBarcode)
}
