// Package signature derives the deterministic per-repository record that
// drives every visual choice: hues, style selection, animation speed. The
// derivation is a pure function of the repository descriptor and is the
// primary determinism contract of the engine.
package signature

import (
	"math"
	"slices"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
)

const (
	hueDegrees       = 360
	maxComplexity    = 20
	maxEnergy        = 100
	complexityWeight = 13
	energyWeight     = 7

	baseSpeed        = 0.009
	speedSteps       = 12
	speedStepDivisor = 1200

	strideBase    = 7
	strideSpan    = 5
	defaultSecond = 180
	defaultThird  = 90
)

// Signature is the immutable derived record for one visualization run.
type Signature struct {
	Seed         uint32
	PrimaryHue   float64
	SecondaryHue float64
	TertiaryHue  float64

	// Complexity is in [0, 20], Energy in [0, 100]; both feed style
	// selection and style-specific population knobs.
	Complexity float64
	Energy     float64

	StyleID        string
	Profile        Profile
	AnimationSpeed float64

	// RepoName and CommitCount are carried for presentation surfaces.
	RepoName    string
	CommitCount int
}

// Derive computes the Signature for a descriptor. It never fails: missing
// languages, contributors, or commits degrade to deterministic defaults.
func Derive(d *descriptor.Repository) *Signature {
	repoHash := hashutil.StringHash(d.Name)

	lang := d.DominantLanguage()
	if lang == "" {
		lang = "Unknown"
	}

	baseHue := float64(hashutil.StringHash(lang) % hueDegrees)

	complexity := math.Min(float64(len(d.Languages))+float64(len(d.Contributors))/5, maxComplexity)
	energy := math.Min(float64(len(d.Commits))/20, maxEnergy)

	profile := selectProfile(d.Name, repoHash, complexity, energy, len(d.Commits))

	secondOff := profile.SecondaryOffset
	if secondOff == 0 {
		secondOff = defaultSecond
	}

	thirdOff := profile.TertiaryOffset
	if thirdOff == 0 {
		thirdOff = defaultThird
	}

	primary := math.Mod(baseHue+profile.HueShift, hueDegrees)

	speedScale := profile.SpeedScale
	if speedScale == 0 {
		speedScale = 1
	}

	return &Signature{
		Seed:           repoHash,
		PrimaryHue:     primary,
		SecondaryHue:   math.Mod(primary+secondOff, hueDegrees),
		TertiaryHue:    math.Mod(primary+thirdOff, hueDegrees),
		Complexity:     complexity,
		Energy:         energy,
		StyleID:        profile.Key,
		Profile:        profile,
		AnimationSpeed: (baseSpeed + float64(repoHash%speedSteps)/speedStepDivisor) * speedScale,
		RepoName:       d.Name,
		CommitCount:    len(d.Commits),
	}
}

// StyleIndex computes the catalog position for the given repository metrics.
// Exposed so the selection distribution can be audited without a full
// descriptor.
func StyleIndex(repoHash uint32, complexity, energy float64, commitCount int) int {
	sum := uint64(repoHash) +
		uint64(math.Floor(complexity*complexityWeight)) +
		uint64(math.Floor(energy*energyWeight)) +
		uint64(commitCount)

	return int(sum % uint64(len(catalog)))
}

// selectProfile picks the catalog entry for the repository. When the
// repository appears in the exclusion table and the picked style is
// forbidden, the catalog is re-walked with a hash-derived stride. The walk
// is capped at one pass over the catalog; a short catalog relative to the
// stride can land back on a forbidden entry, which is accepted.
func selectProfile(name string, repoHash uint32, complexity, energy float64, commitCount int) Profile {
	idx := StyleIndex(repoHash, complexity, energy, commitCount)

	forbidden := exclusions[name]
	if len(forbidden) == 0 || !slices.Contains(forbidden, catalog[idx].Key) {
		return catalog[idx]
	}

	stride := strideBase + int(repoHash%strideSpan)
	for range catalog {
		idx = (idx + stride) % len(catalog)
		if !slices.Contains(forbidden, catalog[idx].Key) {
			break
		}
	}

	return catalog[idx]
}
