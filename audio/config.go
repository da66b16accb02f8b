package audio

import "github.com/lixenwraith/glimmer/parameter"

// Config holds playback settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[Sound]float64
	SampleRate    int
}

// DefaultConfig returns muted playback with the standard mix
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: parameter.DefaultMasterVolume,
		EffectVolumes: map[Sound]float64{
			SoundChime: parameter.DefaultChimeVolume,
			SoundBell:  parameter.DefaultBellVolume,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// Volume returns the effective gain for s in [0,1]
func (c *Config) Volume(s Sound) float64 {
	v := c.EffectVolumes[s] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
