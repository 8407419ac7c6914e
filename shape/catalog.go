// Package shape holds the block shape catalog and picks the shape that best
// approximates how a curve covers the four quadrants of a grid cell.
package shape

import (
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/grid"
)

// Shape is an index into the fixed block shape catalog, always in [0, ShapeCount)
type Shape uint8

const (
	Full Shape = iota
	StairOpenTopLeft
	StairOpenTopRight
	StairOpenBottomLeft
	StairOpenBottomRight
	SlabBottom
	SlabTop
)

// Pattern is a quadrant fill pattern indexed by grid.Quadrant
type Pattern [constants.QuadrantCount]bool

// catalog patterns in quadrant order TopLeft, TopRight, BottomLeft, BottomRight
var catalog = [constants.ShapeCount]Pattern{
	Full:                 {true, true, true, true},
	StairOpenTopLeft:     {false, true, true, true},
	StairOpenTopRight:    {true, false, true, true},
	StairOpenBottomLeft:  {true, true, false, true},
	StairOpenBottomRight: {true, true, true, false},
	SlabBottom:           {false, false, true, true},
	SlabTop:              {true, true, false, false},
}

// All returns every catalog shape in index order
func All() []Shape {
	shapes := make([]Shape, constants.ShapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// Valid checks if s is a catalog index
func (s Shape) Valid() bool {
	return int(s) < constants.ShapeCount
}

// Pattern returns the fill pattern of s; an invalid shape has no filled quadrants
func (s Shape) Pattern() Pattern {
	if !s.Valid() {
		return Pattern{}
	}
	return catalog[s]
}

// Filled checks if quadrant q is filled in s
func (s Shape) Filled(q grid.Quadrant) bool {
	return s.Pattern()[q]
}

// Active returns the number of filled quadrants
func (p Pattern) Active() int {
	n := 0
	for _, filled := range p {
		if filled {
			n++
		}
	}
	return n
}

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case Full:
		return "Full"
	case StairOpenTopLeft:
		return "StairOpenTopLeft"
	case StairOpenTopRight:
		return "StairOpenTopRight"
	case StairOpenBottomLeft:
		return "StairOpenBottomLeft"
	case StairOpenBottomRight:
		return "StairOpenBottomRight"
	case SlabBottom:
		return "SlabBottom"
	case SlabTop:
		return "SlabTop"
	default:
		return "Unknown"
	}
}
