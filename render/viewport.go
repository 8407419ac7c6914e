package render

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/vmath"
)

// Viewport stretches the world rectangle over a block of terminal cells
// Terminal cell (x, y) covers world [x*ux, (x+1)*ux) x [y*uy, (y+1)*uy)
type Viewport struct {
	Cols, Rows int
	World      core.Rect
}

// NewViewport maps the world onto a screen of width x height cells, leaving the status bar free
func NewViewport(width, height int) Viewport {
	return Viewport{
		Cols:  max(1, width),
		Rows:  max(1, height-constants.StatusBarHeight),
		World: core.RectXYWH(0, 0, constants.WorldPixelWidth, constants.WorldPixelHeight),
	}
}

// UnitsPerCol returns the world width covered by one terminal column
func (v Viewport) UnitsPerCol() float32 {
	return v.World.Width() / float32(v.Cols)
}

// UnitsPerRow returns the world height covered by one terminal row
func (v Viewport) UnitsPerRow() float32 {
	return v.World.Height() / float32(v.Rows)
}

// CellRect returns the world rectangle covered by terminal cell (x, y)
func (v Viewport) CellRect(x, y int) core.Rect {
	ux, uy := v.UnitsPerCol(), v.UnitsPerRow()
	return core.RectXYWH(v.World.Min.X+float32(x)*ux, v.World.Min.Y+float32(y)*uy, ux, uy)
}

// Center returns the world center of terminal cell (x, y)
func (v Viewport) Center(x, y int) core.Point {
	return v.CellRect(x, y).Center()
}

// ToTerminal converts a world point to fractional terminal coordinates
func (v Viewport) ToTerminal(p core.Point) (x, y float32) {
	return (p.X - v.World.Min.X) / v.UnitsPerCol(), (p.Y - v.World.Min.Y) / v.UnitsPerRow()
}

// ToCell returns the terminal cell holding world point p
// ok is false when the cell is outside the viewport
func (v Viewport) ToCell(p core.Point) (x, y int, ok bool) {
	fx, fy := v.ToTerminal(p)
	x, y = vmath.Floor(fx), vmath.Floor(fy)
	return x, y, v.Visible(x, y)
}

// Visible reports whether terminal cell (x, y) belongs to the viewport
func (v Viewport) Visible(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= 0 && y < v.Rows
}

// PointerWorld converts a mouse position to world units
// Positions below the viewport (status bar) are clamped to the last row
func (v Viewport) PointerWorld(x, y int) core.Point {
	return v.Center(vmath.ClampInt(x, 0, v.Cols-1), vmath.ClampInt(y, 0, v.Rows-1))
}

// PointerSlop is half the diagonal of a terminal cell in world units
// A point anywhere inside a cell is within this distance of the cell center
func (v Viewport) PointerSlop() float32 {
	ux, uy := v.UnitsPerCol(), v.UnitsPerRow()
	return math32.Sqrt(ux*ux+uy*uy) / 2
}

// PickRadius is the grab radius that keeps every control point reachable with a terminal pointer
func (v Viewport) PickRadius() float32 {
	return math32.Max(constants.PickRadius, v.PointerSlop())
}
