package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayGrab()
	sm.PlayRelease()
	sm.Play(soundTypeCount)
	sm.SetConfig(nil)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Fatalf("Initialize() = %v, want ErrDisabled", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
	sm.PlayGrab()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayGrab()
	sm.PlayRelease()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected Cleanup to close the speaker")
	}
	// Operations after cleanup are no-ops
	sm.PlayGrab()
}

func TestSetConfigKeepsSampleRateWhenUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 22050
	sm.SetConfig(cfg)

	if sm.cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050 before the speaker opens", sm.cfg.SampleRate)
	}
}
