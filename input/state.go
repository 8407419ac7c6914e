package input

// PointerState is the latest pointer position in terminal cells and primary button state
// Sampled once per frame by the main loop
type PointerState struct {
	X, Y  int
	Held  bool
	Known bool // false until the first mouse event arrives
}
