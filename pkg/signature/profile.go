package signature

// Profile is a named parameter bundle selecting a style variant's look.
// Profiles are immutable catalog entries; the engine looks them up by index
// and never mutates them.
type Profile struct {
	// Key identifies the style algorithm implementing this profile.
	Key string

	// Name is a human-readable label for catalog listings.
	Name string

	// HueShift rotates the base hue derived from the dominant language.
	HueShift float64

	// SecondaryOffset and TertiaryOffset position the companion hues
	// relative to the primary hue.
	SecondaryOffset float64
	TertiaryOffset  float64

	// SpeedScale multiplies the global animation speed.
	SpeedScale float64

	// PaletteCount is the number of tones in the run's palette.
	PaletteCount int

	// PaletteOffsets, when non-nil, fixes the hue offsets of palette tones
	// instead of the seeded spread formula.
	PaletteOffsets []float64

	// Fade is the per-frame backdrop compositing opacity. 1 means a full
	// redraw every frame; small values leave motion trails.
	Fade float64

	// Backdrop names the gradient treatment behind the style.
	Backdrop string

	// Grain requests a low-opacity procedural grain tile on the backdrop.
	Grain bool

	// Density scales style-specific population knobs (stars, threads,
	// grid resolution).
	Density float64

	// Border draws a decorative frame around the finished composition.
	Border bool
}

// Backdrop tags understood by the palette package. Unrecognized tags fall
// back to a flat fill.
const (
	BackdropFlat          = "flat"
	BackdropRadialNight   = "radial-night"
	BackdropRadialCore    = "radial-core"
	BackdropLinearDusk    = "linear-dusk"
	BackdropLinearMoss    = "linear-moss"
	BackdropLinearHorizon = "linear-horizon"
)

// Style keys, in catalog order.
const (
	StyleConstellation = "constellation"
	StyleFlowField     = "flowfield"
	StyleNebula        = "nebula"
	StyleRain          = "rain"
	StyleMosaic        = "mosaic"
	StyleFractal       = "fractal"
	StyleAutomaton     = "automaton"
	StyleTerrain       = "terrain"
	StyleOrbit         = "orbit"
	StyleSigils        = "sigils"
	StyleWeave         = "weave"
	StyleGlitch        = "glitch"
	StyleBarcode       = "barcode"
	StyleCollage       = "collage"
	StyleRadar         = "radar"
)

// catalog is the fixed, ordered set of style profiles. Order matters: the
// style index formula selects by position, so inserting or reordering
// entries changes every repository's visualization.
var catalog = []Profile{
	{Key: StyleConstellation, Name: "Constellation Graph", HueShift: 210, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 1.0, PaletteCount: 5, Fade: 0.12, Backdrop: BackdropRadialNight, Density: 1, Border: true},
	{Key: StyleFlowField, Name: "Flow Field", HueShift: 90, SecondaryOffset: 150, TertiaryOffset: 60, SpeedScale: 1.2, PaletteCount: 6, Fade: 0.06, Backdrop: BackdropLinearDusk, Grain: true, Density: 1},
	{Key: StyleNebula, Name: "Spiral Nebula", HueShift: 280, SecondaryOffset: 180, TertiaryOffset: 40, SpeedScale: 0.8, PaletteCount: 5, Fade: 0.05, Backdrop: BackdropRadialCore, Density: 1, Border: true},
	{Key: StyleRain, Name: "Glyph Rain", HueShift: 120, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 1.5, PaletteCount: 4, Fade: 0.18, Backdrop: BackdropFlat, Density: 1},
	{Key: StyleMosaic, Name: "Voronoi Mosaic", HueShift: 30, SecondaryOffset: 210, TertiaryOffset: 90, SpeedScale: 0.7, PaletteCount: 8, PaletteOffsets: []float64{0, 25, 50, 95, 140, 185, 230, 275}, Fade: 1, Backdrop: BackdropFlat, Grain: true, Density: 1},
	{Key: StyleFractal, Name: "Fractal Growth", HueShift: 140, SecondaryOffset: 180, TertiaryOffset: 60, SpeedScale: 0.9, PaletteCount: 5, Fade: 0.10, Backdrop: BackdropLinearMoss, Density: 1},
	{Key: StyleAutomaton, Name: "Cellular Automaton", HueShift: 200, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 1.1, PaletteCount: 5, Fade: 0.25, Backdrop: BackdropFlat, Density: 1},
	{Key: StyleTerrain, Name: "Layered Terrain", HueShift: 25, SecondaryOffset: 160, TertiaryOffset: 80, SpeedScale: 0.6, PaletteCount: 6, Fade: 1, Backdrop: BackdropLinearHorizon, Density: 1},
	{Key: StyleOrbit, Name: "Multi-Body Orbit", HueShift: 330, SecondaryOffset: 180, TertiaryOffset: 120, SpeedScale: 1.0, PaletteCount: 5, Fade: 0.08, Backdrop: BackdropRadialNight, Density: 1, Border: true},
	{Key: StyleSigils, Name: "Procedural Sigils", HueShift: 45, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 0.5, PaletteCount: 4, Fade: 0.15, Backdrop: BackdropFlat, Grain: true, Density: 1, Border: true},
	{Key: StyleWeave, Name: "Woven Grid", HueShift: 15, SecondaryOffset: 90, TertiaryOffset: 45, SpeedScale: 0.8, PaletteCount: 6, Fade: 0.20, Backdrop: BackdropLinearDusk, Density: 1},
	{Key: StyleGlitch, Name: "Glitch Slices", HueShift: 305, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 1.4, PaletteCount: 5, Fade: 0.30, Backdrop: BackdropFlat, Density: 1},
	{Key: StyleBarcode, Name: "Barcode", HueShift: 60, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 0.9, PaletteCount: 5, PaletteOffsets: []float64{0, 40, 80, 180, 220}, Fade: 0.35, Backdrop: BackdropFlat, Density: 1},
	{Key: StyleCollage, Name: "Collage", HueShift: 350, SecondaryOffset: 140, TertiaryOffset: 70, SpeedScale: 0.6, PaletteCount: 7, Fade: 0.04, Backdrop: BackdropLinearHorizon, Grain: true, Density: 1, Border: true},
	{Key: StyleRadar, Name: "Radar Sweep", HueShift: 150, SecondaryOffset: 180, TertiaryOffset: 90, SpeedScale: 1.0, PaletteCount: 5, Fade: 0.07, Backdrop: BackdropRadialNight, Density: 1},
}

// Catalog returns a copy of the profile catalog in selection order.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)

	return out
}

// ProfileCount is the number of catalog entries.
func ProfileCount() int {
	return len(catalog)
}

// ProfileByKey looks a profile up by style key.
func ProfileByKey(key string) (Profile, bool) {
	for _, p := range catalog {
		if p.Key == key {
			return p, true
		}
	}

	return Profile{}, false
}

// exclusions maps repository names to style keys considered thematically
// jarring for them. Selection re-walks the catalog when it lands on a
// forbidden entry.
var exclusions = map[string][]string{
	"torvalds/linux":        {StyleRain, StyleGlitch},
	"facebook/react":        {StyleBarcode},
	"kubernetes/kubernetes": {StyleCollage},
	"rust-lang/rust":        {StyleGlitch},
}
