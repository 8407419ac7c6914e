package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcurve/core"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Bg    core.RGB
	Attrs tcell.AttrMask
}

// Empty reports whether the cell carries no glyph
func (c Cell) Empty() bool {
	return c.Rune == 0 || c.Rune == ' '
}
