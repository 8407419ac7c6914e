package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/blockcurve/core"
)

// ColorMode selects how RGB colors reach the terminal
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorTrue
	Color256
	ColorMono
)

var colorModeNames = [...]string{
	ColorAuto: "auto",
	ColorTrue: "truecolor",
	Color256:  "256",
	ColorMono: "mono",
}

func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", m)
}

// ParseColorMode accepts auto, truecolor, 256 or mono (case-insensitive)
func ParseColorMode(s string) (ColorMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorModeNames {
		if s == name {
			return ColorMode(i), nil
		}
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// ColorProfile converts palette colors to tcell colors for one terminal capability level
type ColorProfile struct {
	profile termenv.Profile
	cache   map[core.RGB]tcell.Color
}

// NewColorProfile resolves mode, querying the environment for ColorAuto
func NewColorProfile(mode ColorMode) *ColorProfile {
	var p termenv.Profile
	switch mode {
	case ColorTrue:
		p = termenv.TrueColor
	case Color256:
		p = termenv.ANSI256
	case ColorMono:
		p = termenv.Ascii
	default:
		p = termenv.EnvColorProfile()
	}
	return &ColorProfile{profile: p, cache: make(map[core.RGB]tcell.Color)}
}

// Mono reports whether the terminal gets no colors at all
func (p *ColorProfile) Mono() bool {
	return p.profile == termenv.Ascii
}

// Mode returns the resolved mode, never ColorAuto
func (p *ColorProfile) Mode() ColorMode {
	switch p.profile {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.Ascii:
		return ColorMono
	default:
		return Color256
	}
}

// Color converts c to the nearest color the profile supports
// Mono yields tcell.ColorDefault
func (p *ColorProfile) Color(c core.RGB) tcell.Color {
	if tc, ok := p.cache[c]; ok {
		return tc
	}
	var tc tcell.Color
	switch v := p.profile.Convert(termenv.RGBColor(c.Hex())).(type) {
	case termenv.RGBColor:
		tc = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case termenv.ANSI256Color:
		tc = tcell.PaletteColor(int(v))
	case termenv.ANSIColor:
		tc = tcell.PaletteColor(int(v))
	default:
		tc = tcell.ColorDefault
	}
	p.cache[c] = tc
	return tc
}

// Style builds a tcell style from fg and bg
func (p *ColorProfile) Style(fg, bg core.RGB) tcell.Style {
	if p.Mono() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(p.Color(fg)).Background(p.Color(bg))
}
