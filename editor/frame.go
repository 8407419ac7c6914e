package editor

import (
	"github.com/lixenwraith/blockcurve/bezier"
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/grid"
	"github.com/lixenwraith/blockcurve/shape"
)

// Block is an occupied cell and the shape chosen for it
type Block struct {
	grid.Occupancy
	Shape shape.Shape
}

// Frame is the result of one pipeline pass, owned by the caller until the next frame
type Frame struct {
	Curve    bezier.Curve
	States   [constants.ControlPointCount]DragState
	Samples  []core.Point
	Polyline []core.Point
	Blocks   []Block

	index map[core.Cell]int
}

// ShapeAt returns the shape drawn in cell, if the cell is occupied
func (f *Frame) ShapeAt(c core.Cell) (shape.Shape, bool) {
	i, ok := f.index[c]
	if !ok {
		return 0, false
	}
	return f.Blocks[i].Shape, true
}

// Occupied returns the number of occupied cells
func (f *Frame) Occupied() int {
	return len(f.Blocks)
}

// Pipeline turns control points into a renderable frame
type Pipeline struct {
	Grid       grid.Grid
	Resolution int
}

// DefaultPipeline uses the world grid and the fixed curve resolution
func DefaultPipeline() Pipeline {
	return Pipeline{Grid: grid.Default(), Resolution: constants.CurveResolution}
}

// Process samples curve, detects occupied cells and classifies each of them
// The classifier runs only for occupied cells
func (p Pipeline) Process(curve bezier.Curve) *Frame {
	samples := curve.Sample(p.Resolution)
	occupied := p.Grid.DetectOccupiedCells(samples)

	f := &Frame{
		Curve:    curve,
		Samples:  samples,
		Polyline: curve.Polyline(p.Resolution),
		Blocks:   make([]Block, len(occupied)),
		index:    make(map[core.Cell]int, len(occupied)),
	}
	for i, occ := range occupied {
		f.Blocks[i] = Block{Occupancy: occ, Shape: shape.Classify(p.Grid, occ.Cell, samples)}
		f.index[occ.Cell] = i
	}
	return f
}

// Step runs one full frame: input, resample, detect, classify
func (p Pipeline) Step(s *Session, pointer core.Point, down bool) (*Frame, Transition) {
	tr := s.Update(pointer, down)
	f := p.Process(s.Curve())
	f.States = s.States()
	return f, tr
}
