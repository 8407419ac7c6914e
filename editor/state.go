package editor

// ControlPoint identifies one of the four curve control points in storage order
type ControlPoint uint8

const (
	P0 ControlPoint = iota // start endpoint
	H0                     // handle of P0
	P1                     // end endpoint
	H1                     // handle of P1
)

// ControlPoints lists every control point in storage order
var ControlPoints = [4]ControlPoint{P0, H0, P1, H1}

// IsHandle reports whether cp is a handle rather than an endpoint
func (cp ControlPoint) IsHandle() bool {
	return cp == H0 || cp == H1
}

// String returns the control point name
func (cp ControlPoint) String() string {
	switch cp {
	case P0:
		return "P0"
	case H0:
		return "H0"
	case P1:
		return "P1"
	case H1:
		return "H1"
	default:
		return "Unknown"
	}
}

// DragState is the per-point selection state machine
//
//	Idle     --button held, pointer within pick radius--> Dragging
//	Dragging --button released-----------------------> Idle
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

// String returns the state name
func (s DragState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Transition reports the control points that changed state during one update
type Transition struct {
	Grabbed  []ControlPoint
	Released []ControlPoint
}

// Empty reports whether no point changed state
func (t Transition) Empty() bool {
	return len(t.Grabbed) == 0 && len(t.Released) == 0
}
