package core

// Point is a 2D position in world units
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// DistanceSq returns the squared Euclidean distance between p and q
func (p Point) DistanceSq(q Point) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Cell identifies one grid cell by column and row
type Cell struct {
	Col, Row int
}
