// Package config loads repoglyph settings from file, environment, and
// defaults. Field tags use mapstructure for viper unmarshalling.
package config

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/repoglyph/pkg/observability"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

// Defaults applied when neither file nor environment set a value.
const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 640
	DefaultWindowScale  = 1

	DefaultParticleCap = 150

	DefaultLogLevel  = "info"
	DefaultLogFormat = observability.FormatText
)

// ErrInvalidWindow is returned for non-positive window dimensions.
var ErrInvalidWindow = errors.New("window dimensions must be positive")

// ErrInvalidScale is returned for a non-positive window scale.
var ErrInvalidScale = errors.New("window scale must be positive")

// ErrUnknownStyle is returned when the style override names no catalog entry.
var ErrUnknownStyle = errors.New("unknown style override")

// ErrInvalidLogFormat is returned for unsupported log formats.
var ErrInvalidLogFormat = errors.New("log format must be text or json")

// Config is the top-level configuration struct for repoglyph.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// WindowConfig holds viewer window knobs.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Scale  int `mapstructure:"scale"`
}

// EngineConfig holds engine behavior knobs.
type EngineConfig struct {
	// Style forces a specific style instead of the signature's selection.
	Style string `mapstructure:"style"`

	// ParticleCap bounds the particle population for git providers that
	// fetch commit history.
	ParticleCap int `mapstructure:"particle_cap"`
}

// LogConfig holds logging knobs.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the optional Prometheus endpoint address.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}

	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Window.Scale)
	}

	if c.Engine.Style != "" {
		if _, ok := signature.ProfileByKey(c.Engine.Style); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, c.Engine.Style)
		}
	}

	if c.Log.Format != observability.FormatText && c.Log.Format != observability.FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	return nil
}
