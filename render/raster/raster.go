// Package raster draws frames into images with gg for headless snapshots
package raster

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
	"github.com/lixenwraith/blockcurve/grid"
	"github.com/lixenwraith/blockcurve/render"
)

// Stroke widths in pixels
const (
	gridLineWidth   = 1
	curveLineWidth  = 2
	handleLineWidth = 1
)

// Renderer draws one world unit per pixel
type Renderer struct {
	Palette render.Palette
	Grid    grid.Grid
}

// New creates a renderer over the world grid
func New(p render.Palette) *Renderer {
	return &Renderer{Palette: p, Grid: grid.Default()}
}

// Render draws f into a new context sized to the grid, caller closes it
// Draw order: shapes, grid lines, curve, handle lines, control points
func (r *Renderer) Render(f *editor.Frame) (*gg.Context, error) {
	w, h := r.Grid.Size()
	dc := gg.NewContext(int(w), int(h))
	dc.ClearWithColor(gg.RGB(r.Palette.Background.Float()))

	steps := []func(*gg.Context, *editor.Frame) error{
		r.drawShapes,
		r.drawGrid,
		r.drawCurve,
		r.drawHandles,
		r.drawControlPoints,
	}
	for _, step := range steps {
		if err := step(dc, f); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: %w", err)
		}
	}
	return dc, nil
}

// Encode renders f and writes it to w as PNG
func (r *Renderer) Encode(w io.Writer, f *editor.Frame) error {
	dc, err := r.Render(f)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG renders f into a PNG file at path
func (r *Renderer) WritePNG(path string, f *editor.Frame) error {
	dc, err := r.Render(f)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func setColor(dc *gg.Context, c core.RGB) {
	dc.SetRGB(c.Float())
}

func (r *Renderer) drawShapes(dc *gg.Context, f *editor.Frame) error {
	if len(f.Blocks) == 0 {
		return nil
	}
	setColor(dc, r.Palette.Shape)
	for _, b := range f.Blocks {
		for q, rect := range r.Grid.QuadrantRects(b.Cell) {
			if !b.Shape.Filled(grid.Quadrant(q)) {
				continue
			}
			dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Width()), float64(rect.Height()))
		}
	}
	return dc.Fill()
}

// drawGrid strokes interior cell boundaries only
func (r *Renderer) drawGrid(dc *gg.Context, _ *editor.Frame) error {
	w, h := r.Grid.Size()
	setColor(dc, r.Palette.Grid)
	dc.SetLineWidth(gridLineWidth)
	for k := 1; k < r.Grid.Cols; k++ {
		x := float64(float32(k) * r.Grid.CellSize)
		dc.DrawLine(x, 0, x, float64(h))
	}
	for k := 1; k < r.Grid.Rows; k++ {
		y := float64(float32(k) * r.Grid.CellSize)
		dc.DrawLine(0, y, float64(w), y)
	}
	return dc.Stroke()
}

func (r *Renderer) drawCurve(dc *gg.Context, f *editor.Frame) error {
	if len(f.Polyline) < 2 {
		return nil
	}
	setColor(dc, r.Palette.Curve)
	dc.SetLineWidth(curveLineWidth)
	dc.MoveTo(float64(f.Polyline[0].X), float64(f.Polyline[0].Y))
	for _, p := range f.Polyline[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	return dc.Stroke()
}

func (r *Renderer) drawHandles(dc *gg.Context, f *editor.Frame) error {
	setColor(dc, r.Palette.Handle)
	dc.SetLineWidth(handleLineWidth)
	for _, s := range f.Curve.Handles() {
		dc.DrawLine(float64(s.From.X), float64(s.From.Y), float64(s.To.X), float64(s.To.Y))
	}
	return dc.Stroke()
}

func (r *Renderer) drawControlPoints(dc *gg.Context, f *editor.Frame) error {
	pts := f.Curve.Points()
	for _, cp := range editor.ControlPoints {
		setColor(dc, r.Palette.PointColor(cp, f.States[cp]))
		dc.DrawCircle(float64(pts[cp].X), float64(pts[cp].Y), constants.ControlPointRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
