package render

import (
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
)

// Palette holds the colors of a rendered frame
type Palette struct {
	Background core.RGB
	Shape      core.RGB
	Grid       core.RGB
	Curve      core.RGB
	Handle     core.RGB
	Endpoint   core.RGB
	Control    core.RGB
	Dragging   core.RGB
	Status     core.RGB
	StatusText core.RGB
}

// DefaultPalette returns the stock colors: red shapes, gray grid, white curve on black
func DefaultPalette() Palette {
	return Palette{
		Background: core.RGBBlack,
		Shape:      core.RGB{R: 230, G: 41, B: 55},
		Grid:       core.RGB{R: 130, G: 130, B: 130},
		Curve:      core.RGBWhite,
		Handle:     core.RGB{R: 130, G: 130, B: 130},
		Endpoint:   core.RGBWhite,
		Control:    core.RGB{R: 0, G: 121, B: 241},
		Dragging:   core.RGB{R: 253, G: 249, B: 0},
		Status:     core.RGB{R: 40, G: 40, B: 40},
		StatusText: core.RGB{R: 220, G: 220, B: 220},
	}
}

// PointColor returns the marker color of cp, highlighted while dragged
func (p Palette) PointColor(cp editor.ControlPoint, st editor.DragState) core.RGB {
	switch {
	case st == editor.Dragging:
		return p.Dragging
	case cp.IsHandle():
		return p.Control
	default:
		return p.Endpoint
	}
}
