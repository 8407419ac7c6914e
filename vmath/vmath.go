package vmath

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/blockcurve/core"
)

// Lerp interpolates between p0 and p1: (1-t)*p0 + t*p1
// t outside [0,1] extrapolates along the line
func Lerp(p0, p1 core.Point, t float32) core.Point {
	return p0.Mul(1 - t).Add(p1.Mul(t))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Floor returns the greatest integer <= v
func Floor(v float32) int {
	return int(math32.Floor(v))
}

// Bounds returns the axis-aligned bounding rectangle of pts
// Returns the zero Rect for an empty slice
func Bounds(pts ...core.Point) core.Rect {
	if len(pts) == 0 {
		return core.Rect{}
	}
	r := core.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math32.Min(r.Min.X, p.X)
		r.Min.Y = math32.Min(r.Min.Y, p.Y)
		r.Max.X = math32.Max(r.Max.X, p.X)
		r.Max.Y = math32.Max(r.Max.Y, p.Y)
	}
	return r
}
