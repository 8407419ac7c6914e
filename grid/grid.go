// Package grid models the fixed world grid and detects which cells a sampled curve occupies.
package grid

import (
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
)

// Quadrant indexes the four quarter-size sub-rectangles of a cell
// Bit 0 selects the right half, bit 1 the bottom half
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the quadrant name
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Grid is a fixed array of equal square cells, purely geometric
type Grid struct {
	Cols, Rows int
	CellSize   float32
}

// Default returns the WorldWidth x WorldHeight grid of BlockSize cells
func Default() Grid {
	return Grid{
		Cols:     constants.WorldWidth,
		Rows:     constants.WorldHeight,
		CellSize: constants.BlockSize,
	}
}

// Contains checks if cell lies within grid bounds
func (g Grid) Contains(c core.Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Len returns the total number of cells
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Size returns the grid extent in world units
func (g Grid) Size() (w, h float32) {
	return float32(g.Cols) * g.CellSize, float32(g.Rows) * g.CellSize
}

// CellRect returns the world rectangle covered by cell
func (g Grid) CellRect(c core.Cell) core.Rect {
	return core.RectXYWH(float32(c.Col)*g.CellSize, float32(c.Row)*g.CellSize, g.CellSize, g.CellSize)
}

// QuadrantRect returns the world rectangle of quadrant q of cell
func (g Grid) QuadrantRect(c core.Cell, q Quadrant) core.Rect {
	half := g.CellSize / 2
	x := float32(c.Col) * g.CellSize
	y := float32(c.Row) * g.CellSize
	if q == TopRight || q == BottomRight {
		x += half
	}
	if q == BottomLeft || q == BottomRight {
		y += half
	}
	return core.RectXYWH(x, y, half, half)
}

// QuadrantRects returns all four quadrant rectangles of cell in Quadrant order
func (g Grid) QuadrantRects(c core.Cell) [constants.QuadrantCount]core.Rect {
	return [constants.QuadrantCount]core.Rect{
		g.QuadrantRect(c, TopLeft),
		g.QuadrantRect(c, TopRight),
		g.QuadrantRect(c, BottomLeft),
		g.QuadrantRect(c, BottomRight),
	}
}

// CellAt returns the cell containing world point p and whether it is within the grid
// Boundaries follow the half-open containment rule: x == k*CellSize belongs to column k
func (g Grid) CellAt(p core.Point) (core.Cell, bool) {
	if p.X < 0 || p.Y < 0 {
		return core.Cell{}, false
	}
	c := core.Cell{Col: int(p.X / g.CellSize), Row: int(p.Y / g.CellSize)}
	return c, g.Contains(c)
}

// QuadrantAt returns the quadrant of its cell that world point p falls in
func (g Grid) QuadrantAt(p core.Point) (Quadrant, bool) {
	c, ok := g.CellAt(p)
	if !ok {
		return 0, false
	}
	r := g.CellRect(c)
	half := g.CellSize / 2
	q := TopLeft
	if p.X-r.Min.X >= half {
		q |= TopRight
	}
	if p.Y-r.Min.Y >= half {
		q |= BottomLeft
	}
	return q, true
}

// Cells returns every cell in row-major order
func (g Grid) Cells() []core.Cell {
	cells := make([]core.Cell, 0, g.Len())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cells = append(cells, core.Cell{Col: col, Row: row})
		}
	}
	return cells
}
