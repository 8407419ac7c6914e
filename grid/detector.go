package grid

import (
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/vmath"
)

// Occupancy is a cell the curve passes through and its sample count
type Occupancy struct {
	Cell    core.Cell
	Samples int
}

// DetectOccupiedCells scans every cell in row-major order and returns the cells
// containing more than MinCurvePoints samples
// Cells at or below the threshold are dropped, so a curve grazing a cell yields nothing there
func (g Grid) DetectOccupiedCells(samples []core.Point) []Occupancy {
	var occupied []Occupancy
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := core.Cell{Col: col, Row: row}
			n := vmath.CountInRect(g.CellRect(cell), samples)
			if n > constants.MinCurvePoints {
				occupied = append(occupied, Occupancy{Cell: cell, Samples: n})
			}
		}
	}
	return occupied
}

// DetectOccupiedCells runs detection against the default world grid
func DetectOccupiedCells(samples []core.Point) []Occupancy {
	return Default().DetectOccupiedCells(samples)
}

// TotalSamples sums the sample counts of occupied cells
func TotalSamples(occupied []Occupancy) int {
	total := 0
	for _, o := range occupied {
		total += o.Samples
	}
	return total
}
