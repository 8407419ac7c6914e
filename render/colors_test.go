package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcurve/core"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"truecolor", ColorTrue, false},
		{"256", Color256, false},
		{"mono", ColorMono, false},
		{" TrueColor ", ColorTrue, false},
		{"16", ColorAuto, true},
		{"", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorModeString(t *testing.T) {
	for _, m := range []ColorMode{ColorAuto, ColorTrue, Color256, ColorMono} {
		back, err := ParseColorMode(m.String())
		if err != nil || back != m {
			t.Errorf("ParseColorMode(%q) = %v, %v", m.String(), back, err)
		}
	}
}

func TestColorProfileTrueColor(t *testing.T) {
	p := NewColorProfile(ColorTrue)
	if p.Mode() != ColorTrue || p.Mono() {
		t.Fatalf("Mode() = %v, Mono() = %v", p.Mode(), p.Mono())
	}
	c := core.RGB{R: 230, G: 41, B: 55}
	if got, want := p.Color(c), tcell.NewRGBColor(230, 41, 55); got != want {
		t.Errorf("Color(%v) = %v, want %v", c, got, want)
	}
}

func TestColorProfile256(t *testing.T) {
	p := NewColorProfile(Color256)
	if p.Mode() != Color256 {
		t.Fatalf("Mode() = %v, want 256", p.Mode())
	}
	if got, want := p.Color(core.RGB{R: 255}), tcell.PaletteColor(196); got != want {
		t.Errorf("Color(red) = %v, want palette 196", got)
	}
	// Cached result is stable
	if p.Color(core.RGB{R: 255}) != p.Color(core.RGB{R: 255}) {
		t.Error("Expected repeated conversion to match")
	}
}

func TestColorProfileMono(t *testing.T) {
	p := NewColorProfile(ColorMono)
	if !p.Mono() || p.Mode() != ColorMono {
		t.Fatalf("Mono() = %v, Mode() = %v", p.Mono(), p.Mode())
	}
	if got := p.Style(core.RGBWhite, core.RGB{R: 255}); got != tcell.StyleDefault {
		t.Errorf("Style() = %v, want default style", got)
	}
	if got := p.Color(core.RGBWhite); got != tcell.ColorDefault {
		t.Errorf("Color() = %v, want ColorDefault", got)
	}
}
