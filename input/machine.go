package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent and tracks pointer state between frames
type Machine struct {
	pointer PointerState
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Pointer returns the pointer state accumulated from events so far
func (m *Machine) Pointer() PointerState {
	return m.pointer
}

// Reset clears pointer state, used when the terminal loses mouse tracking
func (m *Machine) Reset() {
	m.pointer = PointerState{}
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning to the editor
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'r', 'R':
			return &Intent{Type: IntentReset}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	wasHeld := m.pointer.Held

	m.pointer = PointerState{X: x, Y: y, Held: held, Known: true}

	switch {
	case held && !wasHeld:
		return &Intent{Type: IntentPointerDown, X: x, Y: y}
	case !held && wasHeld:
		return &Intent{Type: IntentPointerUp, X: x, Y: y}
	default:
		return &Intent{Type: IntentPointerMove, X: x, Y: y}
	}
}
