package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the default master volume (0.0-1.0)
	DefaultMasterVolume = 0.5
)

// Grab/Release Sound Timing
const (
	GrabSoundDuration    = 40 * time.Millisecond
	GrabSoundFrequency   = 880.0
	ReleaseSoundDuration = 60 * time.Millisecond
	ReleaseSoundFreq     = 587.33
	ClickSoundAttack     = 3 * time.Millisecond
	ClickSoundRelease    = 25 * time.Millisecond
)
