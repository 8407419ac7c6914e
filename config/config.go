// Package config loads editor settings from TOML with environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/blockcurve/audio"
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
	"github.com/lixenwraith/blockcurve/render"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment overrides
const (
	EnvAudioEnabled = constants.EnvPrefix + "AUDIO_ENABLED"
	EnvMasterVolume = constants.EnvPrefix + "MASTER_VOLUME" // 0-100
	EnvColor        = constants.EnvPrefix + "COLOR"
	EnvFrameRate    = constants.EnvPrefix + "FRAME_RATE"
)

// Vec is a world position written as [x, y]
type Vec [2]float32

// Point converts v to a world point
func (v Vec) Point() core.Point {
	return core.Pt(v[0], v[1])
}

// Points are the initial control points in world units
type Points struct {
	P0 Vec `toml:"p0"`
	H0 Vec `toml:"h0"`
	P1 Vec `toml:"p1"`
	H1 Vec `toml:"h1"`
}

// Palette holds "#rrggbb" colors
type Palette struct {
	Background string `toml:"background"`
	Shape      string `toml:"shape"`
	Grid       string `toml:"grid"`
	Curve      string `toml:"curve"`
	Handle     string `toml:"handle"`
	Endpoint   string `toml:"endpoint"`
	Control    string `toml:"control"`
	Dragging   string `toml:"dragging"`
}

// Audio is the [audio] section
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0-1
}

// Config is the full settings file
type Config struct {
	FrameRate int     `toml:"frame_rate"`
	Color     string  `toml:"color"`
	Points    Points  `toml:"points"`
	Palette   Palette `toml:"palette"`
	Audio     Audio   `toml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	p := render.DefaultPalette()
	d := editor.DefaultPoints
	vec := func(pt core.Point) Vec { return Vec{pt.X, pt.Y} }
	return &Config{
		FrameRate: constants.DefaultFrameRate,
		Color:     render.ColorAuto.String(),
		Points: Points{
			P0: vec(d[editor.P0]),
			H0: vec(d[editor.H0]),
			P1: vec(d[editor.P1]),
			H1: vec(d[editor.H1]),
		},
		Palette: Palette{
			Background: p.Background.Hex(),
			Shape:      p.Shape.Hex(),
			Grid:       p.Grid.Hex(),
			Curve:      p.Curve.Hex(),
			Handle:     p.Handle.Hex(),
			Endpoint:   p.Endpoint.Hex(),
			Control:    p.Control.Hex(),
			Dragging:   p.Dragging.Hex(),
		},
		Audio: Audio{
			Enabled: true,
			Volume:  constants.DefaultMasterVolume,
		},
	}
}

// DefaultPath returns ~/.config/blockcurve/config.toml
func DefaultPath() (string, error) {
	p, err := homedir.Expand(filepath.Join("~", ".config", constants.AppName, "config.toml"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return p, nil
}

// Decode reads TOML from r over the defaults, rejecting unknown keys
// The result is not validated
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

// Load reads path, applies environment overrides and validates the result
// A missing file yields defaults unless explicit is set
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		data = nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables
// Unparsable values are ignored
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// 0-100 converted to 0.0-1.0
	if v, ok := lookup(EnvMasterVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = math.Min(1, math.Max(0, float64(n)/100))
		}
	}

	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Color = v
	}

	if v, ok := lookup(EnvFrameRate); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.FrameRate = n
		}
	}
}

// Validate checks ranges, color mode, palette colors and control point bounds
func (c *Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > constants.MaxFrameRate {
		return fmt.Errorf("%w: frame_rate %d outside 1..%d", ErrInvalid, c.FrameRate, constants.MaxFrameRate)
	}
	if _, err := render.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || math.IsNaN(c.Audio.Volume) {
		return fmt.Errorf("%w: audio volume %v outside 0..1", ErrInvalid, c.Audio.Volume)
	}
	if _, err := c.RenderPalette(); err != nil {
		return err
	}

	// Points may sit off the grid but within one world size of it
	w, h := float32(constants.WorldPixelWidth), float32(constants.WorldPixelHeight)
	for i, v := range []Vec{c.Points.P0, c.Points.H0, c.Points.P1, c.Points.H1} {
		x, y := v[0], v[1]
		if !(x >= -w && x <= 2*w && y >= -h && y <= 2*h) {
			return fmt.Errorf("%w: point %s (%v, %v) too far outside the world", ErrInvalid, editor.ControlPoints[i], x, y)
		}
	}
	return nil
}

// FrameInterval returns the ticker period for FrameRate
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// ColorMode returns the parsed color mode, ColorAuto if invalid
func (c *Config) ColorMode() render.ColorMode {
	m, _ := render.ParseColorMode(c.Color)
	return m
}

// ControlPoints returns the initial points in storage order
func (c *Config) ControlPoints() [4]core.Point {
	return [4]core.Point{c.Points.P0.Point(), c.Points.H0.Point(), c.Points.P1.Point(), c.Points.H1.Point()}
}

// RenderPalette parses the palette over the default status bar colors
func (c *Config) RenderPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *core.RGB
	}{
		{"background", c.Palette.Background, &p.Background},
		{"shape", c.Palette.Shape, &p.Shape},
		{"grid", c.Palette.Grid, &p.Grid},
		{"curve", c.Palette.Curve, &p.Curve},
		{"handle", c.Palette.Handle, &p.Handle},
		{"endpoint", c.Palette.Endpoint, &p.Endpoint},
		{"control", c.Palette.Control, &p.Control},
		{"dragging", c.Palette.Dragging, &p.Dragging},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return render.Palette{}, fmt.Errorf("%w: palette %s: %v", ErrInvalid, f.name, err)
		}
		r, g, b := col.RGB255()
		*f.dst = core.RGB{R: r, G: g, B: b}
	}
	return p, nil
}

// AudioConfig converts the [audio] section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}
