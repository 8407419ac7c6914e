package audio

import "github.com/lixenwraith/blockcurve/constants"

// AudioConfig controls playback of editor feedback sounds
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundGrab:    0.8,
			SoundRelease: 0.6,
		},
	}
}

// Volume returns the effective volume of s, clamped to 0.0-1.0
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return min(1, max(0, v*c.MasterVolume))
}
