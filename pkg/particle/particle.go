// Package particle maps commits onto the point entities a style animates.
// One particle per included commit; every field is a deterministic function
// of the commit metadata, the signature, and the surface size.
package particle

import (
	"math"
	"time"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	// Cap is the maximum particle population. Descriptors with more
	// commits have their oldest commits dropped before mapping.
	Cap = 150

	timeNormLo = 0.1
	timeNormHi = 0.9

	authorBands    = 5
	bandDivisor    = 6
	jitterModulo   = 20
	jitterHalf     = 10
	jitterScale    = 2
	scatterModulo  = 100
	scatterHalf    = 50
	sizeScale      = 3
	sizeMin        = 2
	sizeMax        = 15
	alphaBase      = 0.5
	alphaModulo    = 50
	alphaDivisor   = 100
	phaseModulo    = 1000
	volatilityMax  = 5
	volatilityStep = 100
	velocityScale  = 0.3

	fallbackWindowSeconds = 365 * 24 * 3600
	widenSeconds          = 24 * 3600
)

// Particle is the mutable per-commit entity. Styles update Position and the
// Prev fields each frame; style-specific scratch lives in per-style parallel
// slices, not here.
type Particle struct {
	X, Y             float64
	OriginX, OriginY float64
	PrevX, PrevY     float64
	VX, VY           float64

	Size  float64
	Hue   float64
	Alpha float64
	Phase float64

	Commit *descriptor.Commit
}

// Map converts the descriptor's commits into particles for a surface of the
// given size. Commits beyond Cap are truncated oldest-first; the survivors
// are mapped in oldest-first order. Particles with non-finite coordinates
// are dropped, not substituted.
func Map(d *descriptor.Repository, sig *signature.Signature, width, height int) []*Particle {
	commits := included(d.Commits)
	if len(commits) == 0 {
		return nil
	}

	minT, maxT := timeWindow(commits, sig.Seed)

	w := float64(width)
	h := float64(height)
	particles := make([]*Particle, 0, len(commits))

	for i := range commits {
		c := &commits[i]

		authorKey := c.AuthorName
		if authorKey == "" {
			authorKey = c.AuthorEmail
		}

		if authorKey == "" {
			authorKey = "Unknown"
		}

		commitKey := c.ID
		if commitKey == "" {
			commitKey = c.Message
		}

		if commitKey == "" {
			commitKey = authorKey
		}

		authorHash := hashutil.StringHash(authorKey)
		commitHash := hashutil.StringHash(commitKey)

		ts := commitTime(c, minT, maxT, i, len(commits))
		timeNorm := mapRange(float64(ts), float64(minT), float64(maxT), timeNormLo, timeNormHi)

		jitterX := float64(len(c.Message)%jitterModulo-jitterHalf) * jitterScale
		x := timeNorm*w + jitterX

		authorBand := float64(authorHash%authorBands) + 1
		y := authorBand*(h/bandDivisor) + float64(int(commitHash%scatterModulo)-scatterHalf)

		if !finite(x) || !finite(y) {
			continue
		}

		total := c.ChangeTotal()
		size := clamp(math.Log(float64(total)+1)*sizeScale, sizeMin, sizeMax)

		volatility := math.Min(float64(total)/volatilityStep, volatilityMax)
		vx := (float64(commitHash%phaseModulo)/phaseModulo - 0.5) * volatility * velocityScale
		vy := (float64(authorHash%phaseModulo)/phaseModulo - 0.5) * volatility * velocityScale

		millis := c.Timestamp.UnixMilli()
		if millis < 0 {
			millis = -millis
		}

		particles = append(particles, &Particle{
			X: x, Y: y,
			OriginX: x, OriginY: y,
			PrevX: x, PrevY: y,
			VX: vx, VY: vy,
			Size:   size,
			Hue:    float64(authorHash % 360),
			Alpha:  alphaBase + float64(commitHash%alphaModulo)/alphaDivisor,
			Phase:  float64(millis%phaseModulo) / phaseModulo * 2 * math.Pi,
			Commit: c,
		})
	}

	return particles
}

// included drops the oldest commits over the cap.
func included(commits []descriptor.Commit) []descriptor.Commit {
	if len(commits) <= Cap {
		return commits
	}

	return commits[len(commits)-Cap:]
}

// timeWindow finds the valid timestamp span of the included commits. When
// no commit carries a valid timestamp, a fallback window is derived from
// the signature seed; a degenerate span is widened by a day on each side.
func timeWindow(commits []descriptor.Commit, seed uint32) (minT, maxT int64) {
	first := true
	for i := range commits {
		if !validTime(commits[i].Timestamp) {
			continue
		}

		u := commits[i].Timestamp.Unix()
		if first {
			minT, maxT = u, u
			first = false

			continue
		}

		minT = min(minT, u)
		maxT = max(maxT, u)
	}

	if first {
		minT = int64(seed % 1000000)
		maxT = minT + fallbackWindowSeconds
	}

	if minT == maxT {
		minT -= widenSeconds
		maxT += widenSeconds
	}

	return minT, maxT
}

// commitTime resolves the effective timestamp of a commit: its own when
// valid, otherwise a deterministic position inside the window based on its
// index.
func commitTime(c *descriptor.Commit, minT, maxT int64, idx, total int) int64 {
	if validTime(c.Timestamp) {
		return c.Timestamp.Unix()
	}

	if total <= 1 {
		return minT
	}

	return minT + int64(idx)*(maxT-minT)/int64(total-1)
}

func validTime(t time.Time) bool {
	return !t.IsZero() && t.Unix() > 0
}

func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return (outLo + outHi) / 2
	}

	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
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
