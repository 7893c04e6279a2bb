// Package config loads the application settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
	"LocalPaint/internal/tools"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "localpaint.toml"

type Window struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Config struct {
	Window       Window   `toml:"window"`
	Tool         string   `toml:"tool"`
	Color        string   `toml:"color"`
	BrushSize    float32  `toml:"brush_size"`
	MinBrushSize float32  `toml:"min_brush_size"`
	MaxBrushSize float32  `toml:"max_brush_size"`
	HistoryDepth int      `toml:"history_depth"`
	Palette      []string `toml:"palette"`
}

// Default mirrors the built-in behaviour: an 800×600 window, a black brush of
// size 0.01, twenty undo steps and the six hotkey colors.
func Default() Config {
	return Config{
		Window:       Window{Title: "Paint", Width: 800, Height: 600},
		Tool:         tools.KindBrush.String(),
		Color:        "#000000",
		BrushSize:    state.DefaultBrushSize,
		MinBrushSize: 0.001,
		MaxBrushSize: 0.05,
		HistoryDepth: state.DefaultHistoryDepth,
		Palette:      []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#000000"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// Invalid values are replaced by their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q", k.String())
	}
	cfg.validate()
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

func (c *Config) validate() {
	d := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if _, err := tools.ParseKind(c.Tool); err != nil {
		log.Printf("[CONFIG] %v, using %s", err, d.Tool)
		c.Tool = d.Tool
	}
	if _, err := ParseColor(c.Color); err != nil {
		log.Printf("[CONFIG] %v, using %s", err, d.Color)
		c.Color = d.Color
	}
	if c.MinBrushSize <= 0 || c.MaxBrushSize <= c.MinBrushSize {
		c.MinBrushSize, c.MaxBrushSize = d.MinBrushSize, d.MaxBrushSize
	}
	if c.BrushSize < c.MinBrushSize || c.BrushSize > c.MaxBrushSize {
		c.BrushSize = min(max(d.BrushSize, c.MinBrushSize), c.MaxBrushSize)
	}
	if c.HistoryDepth < 1 {
		c.HistoryDepth = d.HistoryDepth
	}
	palette := c.Palette[:0]
	for _, s := range c.Palette {
		if _, err := ParseColor(s); err != nil {
			log.Printf("[CONFIG] Dropping palette entry: %v", err)
			continue
		}
		palette = append(palette, s)
	}
	c.Palette = palette
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
}

// CanvasOptions turns the settings into options for state.NewCanvas.
func (c Config) CanvasOptions() []state.Option {
	kind, _ := tools.ParseKind(c.Tool)
	col, _ := ParseColor(c.Color)
	return []state.Option{
		state.WithTool(kind),
		state.WithColor(col),
		state.WithBrushSize(c.BrushSize),
		state.WithHistoryDepth(c.HistoryDepth),
	}
}

// PaletteColors returns the parsed palette.
func (c Config) PaletteColors() []engine.Color {
	out := make([]engine.Color, 0, len(c.Palette))
	for _, s := range c.Palette {
		if col, err := ParseColor(s); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (engine.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return engine.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return engine.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := engine.Color{}
	for i := range c {
		c[i] = float32(v>>(24-8*i)&0xff) / 255
	}
	return c, nil
}
