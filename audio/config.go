package audio

import "github.com/lixenwraith/vi-snake/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFood:      0.6,
			SoundExplosion: 0.8,
			SoundSuccess:   0.5,
		},
	}
}

// NewAudioConfig returns defaults with the user-facing settings applied
func NewAudioConfig(enabled bool, masterVolume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = clampVolume(masterVolume)
	return cfg
}

// effectVolume returns the final gain for a sound type
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return clampVolume(v * c.MasterVolume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
