package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
	"LocalPaint/internal/tools"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
tool = "rectangle"
color = "#ff0000"
brush_size = 0.02
history_depth = 5
palette = ["#fff", "#00000080"]

[window]
title = "Sketch"
width = 1024.0
height = 768.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rectangle", cfg.Tool)
	assert.Equal(t, float32(0.02), cfg.BrushSize)
	assert.Equal(t, 5, cfg.HistoryDepth)
	assert.Equal(t, Window{Title: "Sketch", Width: 1024, Height: 768}, cfg.Window)
	assert.Equal(t, []engine.Color{{1, 1, 1, 1}, {0, 0, 0, float32(0x80) / 255}}, cfg.PaletteColors())

	c := state.NewCanvas(cfg.CanvasOptions()...)
	assert.Equal(t, tools.KindRectangle, c.Tool())
	assert.Equal(t, engine.Color{1, 0, 0, 1}, c.Color())
	assert.Equal(t, float32(0.02), c.BrushSize())
}

func TestLoadRepairsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
tool = "lasso"
color = "red"
brush_size = 3.0
history_depth = 0
palette = ["nope"]

[window]
width = -1.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	d := Default()
	assert.Equal(t, d.Tool, cfg.Tool)
	assert.Equal(t, d.Color, cfg.Color)
	assert.Equal(t, d.BrushSize, cfg.BrushSize)
	assert.Equal(t, d.HistoryDepth, cfg.HistoryDepth)
	assert.Equal(t, d.Palette, cfg.Palette)
	assert.Equal(t, d.Window, cfg.Window)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "tool = \n")
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want engine.Color
		ok   bool
	}{
		{"#000", engine.Black, true},
		{"#ff0000", engine.Color{1, 0, 0, 1}, true},
		{" 00ff00ff ", engine.Color{0, 1, 0, 1}, true},
		{"#12345", engine.Color{}, false},
		{"#gggggg", engine.Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
