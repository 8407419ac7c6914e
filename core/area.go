package core

// Rect is an axis-aligned rectangle in world units
// Min is the top-left corner, Max the bottom-right corner
type Rect struct {
	Min, Max Point
}

// RectXYWH builds a Rect from its top-left corner and size
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
