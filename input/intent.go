package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize // Terminal resize event
	IntentReset  // r, restore initial control points

	// Pointer
	IntentPointerDown // Primary button pressed
	IntentPointerUp   // Primary button released
	IntentPointerMove // Motion with or without the button held
)

// Intent is a parsed input action
// X and Y carry the pointer cell for pointer intents
type Intent struct {
	Type IntentType
	X, Y int
}

// String returns the intent name
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentResize:
		return "Resize"
	case IntentReset:
		return "Reset"
	case IntentPointerDown:
		return "PointerDown"
	case IntentPointerUp:
		return "PointerUp"
	case IntentPointerMove:
		return "PointerMove"
	default:
		return "None"
	}
}
