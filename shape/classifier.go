package shape

import (
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/grid"
	"github.com/lixenwraith/blockcurve/vmath"
)

// Occupancy holds per-quadrant sample counts of one cell, indexed by grid.Quadrant
type Occupancy [constants.QuadrantCount]float32

// Total returns the sum of all quadrant counts
func (o Occupancy) Total() int {
	total := 0
	for _, v := range o {
		total += int(v)
	}
	return total
}

// Observe counts the samples falling in each quadrant of cell
// Every quadrant scans the full sample sequence independently
func Observe(g grid.Grid, cell core.Cell, samples []core.Point) Occupancy {
	var o Occupancy
	for q, rect := range g.QuadrantRects(cell) {
		o[q] = float32(vmath.CountInRect(rect, samples))
	}
	return o
}

// Ideal returns the occupancy s would show for total samples spread evenly over its filled quadrants
// The fragment size uses integer division
func (s Shape) Ideal(total int) Occupancy {
	var o Occupancy
	p := s.Pattern()
	active := p.Active()
	if active == 0 {
		return o
	}
	fragment := float32(total / active)
	for q, filled := range p {
		if filled {
			o[q] = fragment
		}
	}
	return o
}

// DistanceSq returns the squared Euclidean distance between two occupancy vectors
func DistanceSq(a, b Occupancy) float32 {
	var d float32
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}

// Best returns the catalog shape whose ideal occupancy is nearest to o
// Full is the default; a later shape wins only by a strictly smaller distance
func Best(o Occupancy) Shape {
	total := o.Total()
	best := Full
	bestDist := DistanceSq(o, Full.Ideal(total))
	for s := Full + 1; int(s) < constants.ShapeCount; s++ {
		if d := DistanceSq(o, s.Ideal(total)); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Classify picks the shape for cell of grid g from the curve samples
func Classify(g grid.Grid, cell core.Cell, samples []core.Point) Shape {
	return Best(Observe(g, cell, samples))
}

// ClassifyShape classifies cell against the default world grid
func ClassifyShape(cell core.Cell, samples []core.Point) Shape {
	return Classify(grid.Default(), cell, samples)
}
