package bezier

import (
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/vmath"
)

// Curve is a cubic Bezier curve with endpoints P0, P1 and handles H0, H1
type Curve struct {
	P0, H0, P1, H1 core.Point
}

// Segment is one straight piece of a sampled curve
type Segment struct {
	From, To core.Point
}

// Evaluate returns the point of the curve (p0, h0, p1, h1) at parameter t
// t=0 yields p0 and t=1 yields p1 exactly; t outside [0,1] extrapolates
func Evaluate(p0, h0, p1, h1 core.Point, t float32) core.Point {
	a := vmath.Lerp(p0, h0, t)
	b := vmath.Lerp(h0, h1, t)
	c := vmath.Lerp(h1, p1, t)
	d := vmath.Lerp(a, b, t)
	e := vmath.Lerp(b, c, t)
	return vmath.Lerp(d, e, t)
}

// Sample evaluates the curve at t = i/resolution for i in [0, resolution)
// The result always has exactly resolution points; t never reaches 1
func Sample(p0, h0, p1, h1 core.Point, resolution int) []core.Point {
	if resolution <= 0 {
		return []core.Point{}
	}
	samples := make([]core.Point, resolution)
	delta := 1 / float32(resolution)
	for i := range samples {
		samples[i] = Evaluate(p0, h0, p1, h1, float32(i)*delta)
	}
	return samples
}

// Polyline returns resolution+1 points from t=0 through t=1 inclusive
// Used for drawing so that the visible curve reaches P1
func Polyline(p0, h0, p1, h1 core.Point, resolution int) []core.Point {
	if resolution <= 0 {
		return []core.Point{p0, p1}
	}
	pts := Sample(p0, h0, p1, h1, resolution)
	return append(pts, Evaluate(p0, h0, p1, h1, 1))
}

// Segments pairs consecutive points; len(result) == max(len(pts)-1, 0)
func Segments(pts []core.Point) []Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, len(pts)-1)
	for i := range segs {
		segs[i] = Segment{From: pts[i], To: pts[i+1]}
	}
	return segs
}

// Eval returns the point at parameter t
func (c Curve) Eval(t float32) core.Point {
	return Evaluate(c.P0, c.H0, c.P1, c.H1, t)
}

// Sample returns resolution points, see Sample
func (c Curve) Sample(resolution int) []core.Point {
	return Sample(c.P0, c.H0, c.P1, c.H1, resolution)
}

// Polyline returns resolution+1 points, see Polyline
func (c Curve) Polyline(resolution int) []core.Point {
	return Polyline(c.P0, c.H0, c.P1, c.H1, resolution)
}

// Points returns the control points in storage order P0, H0, P1, H1
func (c Curve) Points() [4]core.Point {
	return [4]core.Point{c.P0, c.H0, c.P1, c.H1}
}

// FromPoints builds a Curve from control points in storage order P0, H0, P1, H1
func FromPoints(pts [4]core.Point) Curve {
	return Curve{P0: pts[0], H0: pts[1], P1: pts[2], H1: pts[3]}
}

// Handles returns the two handle lines P0–H0 and P1–H1
func (c Curve) Handles() [2]Segment {
	return [2]Segment{
		{From: c.P0, To: c.H0},
		{From: c.P1, To: c.H1},
	}
}
