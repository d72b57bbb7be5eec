// Package engine drives the deterministic visualization pipeline: signature
// derivation, palette and backdrop generation, particle mapping, style
// initialization, and the perpetual per-frame update/draw cycle.
//
// The engine is single-writer and frame-driven: all mutation happens inside
// Step, which the host invokes once per refresh tick. There is no internal
// goroutine and no locking; starting a new run cancels the previous one
// before any shared state is touched (cancel-then-replace).
package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/Sumatoshi-tech/repoglyph/internal/styles"
	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
	"github.com/Sumatoshi-tech/repoglyph/pkg/observability"
	"github.com/Sumatoshi-tech/repoglyph/pkg/palette"
	"github.com/Sumatoshi-tech/repoglyph/pkg/particle"
	"github.com/Sumatoshi-tech/repoglyph/pkg/raster"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const (
	borderInset = 6
	borderAlpha = 0.4
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches frame/run instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStyleOverride forces every run onto the named style, bypassing the
// signature's selection. Unknown names are ignored.
func WithStyleOverride(key string) Option {
	return func(e *Engine) {
		e.styleOverride = key
	}
}

// Engine owns the raster surface and the currently running visualization.
// It is not safe for concurrent use; the host serializes all calls.
type Engine struct {
	width  int
	height int

	surface  *raster.Surface
	backdrop *raster.Surface

	desc      *descriptor.Repository
	sig       *signature.Signature
	pal       palette.Palette
	particles []*particle.Particle
	style     styles.Style

	t       float64
	frames  uint64
	running bool

	styleOverride string
	logger        *slog.Logger
	metrics       *observability.Metrics
}

// New creates an engine for a surface of the given size.
func New(width, height int, opts ...Option) *Engine {
	if width <= 0 {
		width = 1
	}

	if height <= 0 {
		height = 1
	}

	e := &Engine{
		width:   width,
		height:  height,
		surface: raster.New(width, height),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Visualize starts a new run for the descriptor, replacing any running one.
// The previous loop is stopped before any shared state is rebuilt. A nil
// descriptor is ignored.
func (e *Engine) Visualize(d *descriptor.Repository) {
	e.Stop()

	if d == nil {
		e.logger.Warn("visualize called with nil descriptor; ignoring")

		return
	}

	e.desc = d
	e.initRun()
	e.running = true

	e.metrics.ObserveRun(e.sig.StyleID)
	e.logger.Info("visualization started",
		slog.String("repo", e.sig.RepoName),
		slog.String("style", e.sig.StyleID),
		slog.Int("particles", len(e.particles)),
	)
}

// initRun derives every per-run structure from the current descriptor and
// surface size. It is re-entered on resize with the same descriptor.
func (e *Engine) initRun() {
	e.sig = signature.Derive(e.desc)

	if e.styleOverride != "" {
		if p, ok := signature.ProfileByKey(e.styleOverride); ok {
			e.sig.StyleID = p.Key
			e.sig.Profile = p
		}
	}

	e.pal = palette.Generate(e.sig)

	e.backdrop = raster.New(e.width, e.height)
	palette.RenderBackdrop(e.backdrop, e.sig)
	copy(e.surface.Pix, e.backdrop.Pix)

	e.particles = particle.Map(e.desc, e.sig, e.width, e.height)

	env := styles.NewEnv(e.sig, e.pal, e.particles, e.surface)
	e.style = styles.New(e.sig.StyleID, env)

	e.t = 0
	e.frames = 0
}

// Step renders one frame: advance the time accumulator, composite the
// backdrop at the style fade opacity, run the style, draw the border.
// A no-op unless a run is active.
func (e *Engine) Step() {
	if !e.running {
		return
	}

	start := time.Now()

	e.t += e.sig.AnimationSpeed
	e.surface.FadeToward(e.backdrop, e.sig.Profile.Fade)
	e.style.Advance(e.t)

	if e.sig.Profile.Border {
		r, g, b := e.pal.Nearest(e.sig.TertiaryHue).RGB()
		e.surface.StrokeRect(borderInset, borderInset, e.width-2*borderInset, e.height-2*borderInset, r, g, b, borderAlpha)
	}

	e.frames++
	e.metrics.ObserveFrame(e.sig.StyleID, time.Since(start))
}

// Resize rebuilds the surface and all size-dependent state. Non-positive
// dimensions are ignored; per-pixel structures cannot be resized in place,
// so the particle population and style state are rebuilt from scratch.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	if width == e.width && height == e.height {
		return
	}

	e.width = width
	e.height = height
	e.surface.Resize(width, height)

	if e.desc != nil {
		e.initRun()
	}
}

// Stop cancels the running loop. Idempotent and safe to call at any time.
func (e *Engine) Stop() {
	if !e.running {
		return
	}

	e.running = false
	e.logger.Info("visualization stopped", slog.Uint64("frames", e.frames))
}

// Running reports whether a run is active.
func (e *Engine) Running() bool {
	return e.running
}

// Signature returns the current run's signature, or nil before the first
// run. Callers must treat it as read-only.
func (e *Engine) Signature() *signature.Signature {
	return e.sig
}

// Surface exposes the raster buffer for the host to present.
func (e *Engine) Surface() *raster.Surface {
	return e.surface
}

// Size returns the logical surface dimensions.
func (e *Engine) Size() (w, h int) {
	return e.width, e.height
}

// FrameCount returns the frames rendered in the current run.
func (e *Engine) FrameCount() uint64 {
	return e.frames
}
