package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "repoglyph"

	labelStyle = "style"
)

// frameDurationBuckets cover sub-millisecond software rasterization up to
// pathological multi-hundred-millisecond frames.
var frameDurationBuckets = []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.25, 0.5}

// Metrics holds the engine instruments. A nil *Metrics is valid and records
// nothing, so the engine can run uninstrumented.
type Metrics struct {
	registry      *prometheus.Registry
	framesTotal   *prometheus.CounterVec
	frameDuration prometheus.Histogram
	runsTotal     *prometheus.CounterVec
}

// NewMetrics creates the instrument set on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		framesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames rendered, labeled by active style.",
		}, []string{labelStyle}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Wall time spent rendering one frame.",
			Buckets:   frameDurationBuckets,
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Visualization runs started, labeled by selected style.",
		}, []string{labelStyle}),
	}

	reg.MustRegister(m.framesTotal, m.frameDuration, m.runsTotal)

	return m
}

// ObserveFrame records one rendered frame.
func (m *Metrics) ObserveFrame(style string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.framesTotal.WithLabelValues(style).Inc()
	m.frameDuration.Observe(elapsed.Seconds())
}

// ObserveRun records the start of a visualization run.
func (m *Metrics) ObserveRun(style string) {
	if m == nil {
		return
	}

	m.runsTotal.WithLabelValues(style).Inc()
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts a blocking metrics endpoint on addr under /metrics.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	//nolint:gosec // local diagnostics endpoint, no timeouts required
	return http.ListenAndServe(addr, mux)
}
