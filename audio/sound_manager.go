package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockcurve/constants"
)

// SoundManager plays editor feedback sounds through the speaker
// All methods are safe to call before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager for cfg, nil means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrDisabled without touching the device when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetConfig applies volume changes to sounds started afterwards
// Disabling audio silences new sounds; the speaker stays open until Cleanup
func (sm *SoundManager) SetConfig(cfg *AudioConfig) {
	if cfg == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	// Sample rate is fixed once the speaker is open
	if sm.initialized {
		cfg.SampleRate = sm.cfg.SampleRate
	}
	sm.cfg = cfg
}

// Play starts soundType on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Enabled {
		return
	}
	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayGrab plays the pick-up click
func (sm *SoundManager) PlayGrab() {
	sm.Play(SoundGrab)
}

// PlayRelease plays the drop click
func (sm *SoundManager) PlayRelease() {
	sm.Play(SoundRelease)
}
