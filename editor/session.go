// Package editor owns the interactive state of the curve editor and runs the
// per-frame pipeline: sample the curve, detect occupied cells, classify shapes.
package editor

import (
	"github.com/lixenwraith/blockcurve/bezier"
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/vmath"
)

// DefaultPoints are the initial control points in storage order P0, H0, P1, H1
var DefaultPoints = [constants.ControlPointCount]core.Point{
	{X: 20, Y: 20},
	{X: 100, Y: 500},
	{X: 600, Y: 200},
	{X: 400, Y: 400},
}

// Session holds the control points and their drag states
// Owned by the main loop, not safe for concurrent use
type Session struct {
	points     [constants.ControlPointCount]core.Point
	states     [constants.ControlPointCount]DragState
	initial    [constants.ControlPointCount]core.Point
	pickRadius float32
}

// Option configures a Session
type Option func(*Session)

// WithPickRadius sets the pointer grab distance in world units
func WithPickRadius(r float32) Option {
	return func(s *Session) {
		s.pickRadius = r
	}
}

// NewSession creates a session with every point Idle at initial
func NewSession(initial [constants.ControlPointCount]core.Point, opts ...Option) *Session {
	s := &Session{
		points:     initial,
		initial:    initial,
		pickRadius: constants.PickRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update advances the drag state machine by one frame
// While down, every point within the pick radius of pointer becomes Dragging and every
// Dragging point snaps to pointer; on release all points return to Idle
func (s *Session) Update(pointer core.Point, down bool) Transition {
	var tr Transition

	if !down {
		for i, st := range s.states {
			if st == Dragging {
				tr.Released = append(tr.Released, ControlPoint(i))
			}
			s.states[i] = Idle
		}
		return tr
	}

	for i := range s.points {
		if s.states[i] == Idle && vmath.CircleContains(s.points[i], s.pickRadius, pointer) {
			s.states[i] = Dragging
			tr.Grabbed = append(tr.Grabbed, ControlPoint(i))
		}
		if s.states[i] == Dragging {
			s.points[i] = pointer
		}
	}
	return tr
}

// Curve returns the curve defined by the current control points
func (s *Session) Curve() bezier.Curve {
	return bezier.FromPoints(s.points)
}

// Point returns the position of cp
func (s *Session) Point(cp ControlPoint) core.Point {
	return s.points[cp]
}

// Points returns all control point positions in storage order
func (s *Session) Points() [constants.ControlPointCount]core.Point {
	return s.points
}

// State returns the drag state of cp
func (s *Session) State(cp ControlPoint) DragState {
	return s.states[cp]
}

// States returns all drag states in storage order
func (s *Session) States() [constants.ControlPointCount]DragState {
	return s.states
}

// Dragging reports whether any point is being dragged
func (s *Session) Dragging() bool {
	for _, st := range s.states {
		if st == Dragging {
			return true
		}
	}
	return false
}

// PickRadius returns the grab distance in world units
func (s *Session) PickRadius() float32 {
	return s.pickRadius
}

// SetPickRadius changes the grab distance, used when the pointer resolution changes
func (s *Session) SetPickRadius(r float32) {
	s.pickRadius = r
}

// Reset moves every point back to its initial position and clears selection
func (s *Session) Reset() {
	s.points = s.initial
	s.states = [constants.ControlPointCount]DragState{}
}
