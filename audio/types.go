package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundGrab    SoundType = iota // Control point picked up
	SoundRelease                  // Control point dropped
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundGrab:
		return "grab"
	case SoundRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)
