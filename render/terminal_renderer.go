package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
	"github.com/lixenwraith/blockcurve/grid"
	"github.com/lixenwraith/blockcurve/vmath"
)

// Status carries the per-frame values shown in the status bar
type Status struct {
	Pointer    core.Point
	HasPointer bool
	Message    string
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	view    Viewport
	grid    grid.Grid
	colors  *ColorProfile
	palette Palette
	width   int
	height  int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, colors *ColorProfile, palette Palette) *TerminalRenderer {
	w, h := screen.Size()
	r := &TerminalRenderer{
		screen:  screen,
		buf:     NewRenderBuffer(w, h, palette.Background),
		grid:    grid.Default(),
		colors:  colors,
		palette: palette,
	}
	r.Resize(w, h)
	return r
}

// Resize recomputes the viewport for a width x height screen
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.view = NewViewport(width, height)
	r.buf.Resize(width, height)
}

// Viewport returns the current world to terminal mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// Buffer exposes the composited cells of the last frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// SetPalette replaces frame colors from the next frame on
func (r *TerminalRenderer) SetPalette(p Palette) {
	r.palette = p
	r.buf.SetBackground(p.Background)
}

// SetColors replaces the color profile from the next frame on
func (r *TerminalRenderer) SetColors(c *ColorProfile) {
	r.colors = c
}

// RenderFrame composites f and flushes it to the screen
// Draw order: shapes, grid lines, curve, handle lines, control points, status bar
func (r *TerminalRenderer) RenderFrame(f *editor.Frame, st Status) {
	r.buf.Clear()

	r.drawShapes(f)
	r.drawGrid()
	r.drawPolyline(f.Polyline, constants.GlyphCurve, r.palette.Curve)
	for _, h := range f.Curve.Handles() {
		r.drawPolyline([]core.Point{h.From, h.To}, constants.GlyphHandle, r.palette.Handle)
	}
	r.drawControlPoints(f)
	r.drawStatusBar(f, st)

	r.buf.Flush(r.screen, r.colors)
}

// drawShapes paints every terminal cell whose center lies in a filled quadrant
func (r *TerminalRenderer) drawShapes(f *editor.Frame) {
	mono := r.colors.Mono()
	for _, b := range f.Blocks {
		rects := r.grid.QuadrantRects(b.Cell)
		for q, rect := range rects {
			if !b.Shape.Filled(grid.Quadrant(q)) {
				continue
			}
			r.fillRect(rect, mono)
		}
	}
}

func (r *TerminalRenderer) fillRect(rect core.Rect, mono bool) {
	x0, y0 := r.view.ToTerminal(rect.Min)
	x1, y1 := r.view.ToTerminal(rect.Max)
	for y := max(0, vmath.Floor(y0)); y <= min(r.view.Rows-1, vmath.Floor(y1)); y++ {
		for x := max(0, vmath.Floor(x0)); x <= min(r.view.Cols-1, vmath.Floor(x1)); x++ {
			if !vmath.RectContains(rect, r.view.Center(x, y)) {
				continue
			}
			if mono {
				r.buf.SetFg(x, y, constants.GlyphShapeMono, r.palette.Shape)
			} else {
				r.buf.SetBg(x, y, r.palette.Shape)
			}
		}
	}
}

// drawGrid draws interior cell boundaries, merging crossings
func (r *TerminalRenderer) drawGrid() {
	cols := make([]bool, r.view.Cols)
	rows := make([]bool, r.view.Rows)
	for k := 1; k < r.grid.Cols; k++ {
		x, _ := r.view.ToTerminal(core.Pt(float32(k)*r.grid.CellSize, 0))
		if c := vmath.Floor(x); c >= 0 && c < len(cols) {
			cols[c] = true
		}
	}
	for k := 1; k < r.grid.Rows; k++ {
		_, y := r.view.ToTerminal(core.Pt(0, float32(k)*r.grid.CellSize))
		if c := vmath.Floor(y); c >= 0 && c < len(rows) {
			rows[c] = true
		}
	}

	for y := 0; y < r.view.Rows; y++ {
		for x := 0; x < r.view.Cols; x++ {
			var g rune
			switch {
			case cols[x] && rows[y]:
				g = constants.GlyphGridCross
			case cols[x]:
				g = constants.GlyphGridVertical
			case rows[y]:
				g = constants.GlyphGridHorizontal
			default:
				continue
			}
			r.buf.SetFg(x, y, g, r.palette.Grid)
		}
	}
}

// drawPolyline rasterizes consecutive point pairs with a supercover traversal
func (r *TerminalRenderer) drawPolyline(pts []core.Point, glyph rune, fg core.RGB) {
	for i := 1; i < len(pts); i++ {
		x1, y1 := r.view.ToTerminal(pts[i-1])
		x2, y2 := r.view.ToTerminal(pts[i])
		vmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
			if r.view.Visible(x, y) {
				r.buf.SetFg(x, y, glyph, fg)
			}
			return true
		})
	}
}

func (r *TerminalRenderer) drawControlPoints(f *editor.Frame) {
	pts := f.Curve.Points()
	for _, cp := range editor.ControlPoints {
		x, y, ok := r.view.ToCell(pts[cp])
		if !ok {
			continue
		}
		r.buf.SetFg(x, y, constants.GlyphControlPoint, r.palette.PointColor(cp, f.States[cp]))
	}
}

func (r *TerminalRenderer) drawStatusBar(f *editor.Frame, st Status) {
	y := r.view.Rows
	if y >= r.height {
		return
	}
	for x := 0; x < r.width; x++ {
		r.buf.SetWithBg(x, y, ' ', r.palette.StatusText, r.palette.Status, tcell.AttrNone)
	}

	modeText, modeBg := " IDLE ", r.palette.Control
	for _, s := range f.States {
		if s == editor.Dragging {
			modeText, modeBg = " DRAG ", r.palette.Dragging
			break
		}
	}
	x := 0
	for _, ch := range runewidth.Truncate(modeText, r.width, "") {
		r.buf.SetWithBg(x, y, ch, core.RGBBlack, modeBg, tcell.AttrBold)
		x++
	}

	r.buf.Text(x, y, runewidth.Truncate(r.statusText(f, st), r.width-x, "…"), r.palette.StatusText)
}

func (r *TerminalRenderer) statusText(f *editor.Frame, st Status) string {
	s := fmt.Sprintf(" %s | blocks %d", constants.AppTitle, f.Occupied())
	if st.HasPointer {
		s += fmt.Sprintf(" | %.0f,%.0f", st.Pointer.X, st.Pointer.Y)
	}
	if st.Message != "" {
		s += " | " + st.Message
	}
	return s + " | " + constants.StatusHelp
}
