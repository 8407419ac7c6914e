package vmath

import "github.com/lixenwraith/blockcurve/core"

// RectContains checks if p is within r using half-open bounds [Min, Max)
// Adjacent rectangles sharing an edge never both contain a point on that edge
func RectContains(r core.Rect, p core.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// CircleContains checks if p is within radius of center, boundary inclusive
func CircleContains(center core.Point, radius float32, p core.Point) bool {
	return p.DistanceSq(center) <= radius*radius
}

// CountInRect returns how many of pts lie within r
func CountInRect(r core.Rect, pts []core.Point) int {
	n := 0
	for _, p := range pts {
		if RectContains(r, p) {
			n++
		}
	}
	return n
}
