package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/internal/config"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

func TestLoad_DefaultsFromEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, config.DefaultWindowHeight, cfg.Window.Height)
	assert.Equal(t, config.DefaultParticleCap, cfg.Engine.ParticleCap)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := []byte("window:\n  width: 320\n  height: 240\nengine:\n  style: radar\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 240, cfg.Window.Height)
	assert.Equal(t, signature.StyleRadar, cfg.Engine.Style)

	// Unset keys keep defaults.
	assert.Equal(t, config.DefaultWindowScale, cfg.Window.Scale)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad window", "window:\n  width: -1\n", config.ErrInvalidWindow},
		{"bad scale", "window:\n  scale: 0\n", config.ErrInvalidScale},
		{"bad style", "engine:\n  style: cubism\n", config.ErrUnknownStyle},
		{"bad log format", "log:\n  format: xml\n", config.ErrInvalidLogFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			_, err := config.Load(path)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
