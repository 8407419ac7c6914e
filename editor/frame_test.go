package editor

import (
	"testing"

	"github.com/lixenwraith/blockcurve/bezier"
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/grid"
	"github.com/lixenwraith/blockcurve/shape"
)

func TestProcessDefaultCurve(t *testing.T) {
	p := DefaultPipeline()
	f := p.Process(bezier.FromPoints(DefaultPoints))

	if len(f.Samples) != constants.CurveResolution {
		t.Errorf("len(Samples) = %d, want %d", len(f.Samples), constants.CurveResolution)
	}
	if len(f.Polyline) != constants.CurveResolution+1 {
		t.Errorf("len(Polyline) = %d, want %d", len(f.Polyline), constants.CurveResolution+1)
	}
	if f.Occupied() == 0 {
		t.Fatal("Expected the default curve to occupy cells")
	}

	occupied := grid.DetectOccupiedCells(f.Samples)
	if f.Occupied() != len(occupied) {
		t.Fatalf("Occupied() = %d, detector found %d", f.Occupied(), len(occupied))
	}
	for i, b := range f.Blocks {
		if b.Cell != occupied[i].Cell || b.Samples != occupied[i].Samples {
			t.Errorf("block %d = %+v, want %+v", i, b.Occupancy, occupied[i])
		}
		if !b.Shape.Valid() {
			t.Errorf("block %d has invalid shape %d", i, b.Shape)
		}
		if want := shape.ClassifyShape(b.Cell, f.Samples); b.Shape != want {
			t.Errorf("block %d shape %v, want %v", i, b.Shape, want)
		}
		got, ok := f.ShapeAt(b.Cell)
		if !ok || got != b.Shape {
			t.Errorf("ShapeAt(%v) = %v, %v; want %v", b.Cell, got, ok, b.Shape)
		}
	}
}

func TestProcessCurveOutsideGrid(t *testing.T) {
	c := bezier.Curve{P0: core.Pt(-100, -100), H0: core.Pt(-50, -300), P1: core.Pt(-400, -20), H1: core.Pt(-200, -10)}
	f := DefaultPipeline().Process(c)
	if f.Occupied() != 0 {
		t.Errorf("Occupied() = %d, want 0", f.Occupied())
	}
	if _, ok := f.ShapeAt(core.Cell{}); ok {
		t.Error("Expected no shape in an empty frame")
	}
}

func TestProcessDegenerateCurve(t *testing.T) {
	f := DefaultPipeline().Process(bezier.Curve{})
	if f.Occupied() != 1 {
		t.Fatalf("Occupied() = %d, want 1", f.Occupied())
	}
	b := f.Blocks[0]
	if b.Cell != (core.Cell{}) || b.Samples != constants.CurveResolution {
		t.Errorf("block = %+v, want cell (0,0) with all samples", b)
	}
}

func TestStepAppliesInputBeforeSampling(t *testing.T) {
	s := NewSession(DefaultPoints)
	p := DefaultPipeline()

	f, tr := p.Step(s, s.Point(P1), true)
	if len(tr.Grabbed) != 1 || f.States[P1] != Dragging {
		t.Fatalf("Expected P1 grabbed, got %+v states %v", tr, f.States)
	}

	target := core.Pt(900, 520)
	f, _ = p.Step(s, target, true)
	if f.Curve.P1 != target {
		t.Errorf("frame curve P1 = %v, want %v", f.Curve.P1, target)
	}
	if f.Polyline[len(f.Polyline)-1] != target {
		t.Errorf("polyline ends at %v, want %v", f.Polyline[len(f.Polyline)-1], target)
	}
}
