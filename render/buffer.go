package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcurve/core"
)

// RenderBuffer is a cell compositor flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     core.RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions and clear color
func NewRenderBuffer(width, height int, bg core.RGB) *RenderBuffer {
	b := &RenderBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBackground changes the clear color used by the next Clear
func (b *RenderBuffer) SetBackground(bg core.RGB) {
	b.bg = bg
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), the zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg fills the background while preserving rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetFg writes rune and foreground while preserving the background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = tcell.AttrNone
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
}

// Text writes s starting at (x, y) with fg over the existing background, clipped at the right edge
// Returns the column after the last written rune
func (b *RenderBuffer) Text(x, y int, s string, fg core.RGB) int {
	for _, r := range s {
		if x >= b.width {
			break
		}
		b.SetFg(x, y, r, fg)
		x++
	}
	return x
}

// Flush writes the buffer to screen with colors converted by p
func (b *RenderBuffer) Flush(screen tcell.Screen, p *ColorProfile) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, p.Style(c.Fg, c.Bg).Attributes(c.Attrs))
		}
	}
	screen.Show()
}
