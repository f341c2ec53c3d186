package audio

import (
	"strings"

	"github.com/lixenwraith/pixel-spin/constants"
)

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		EffectVolumes: map[SoundType]float64{
			SoundSpinStart: 1.0,
			SoundTick:      1.0,
			SoundWin:       1.0,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// SetVolumePercent sets the master volume from a 0-100 value, clamped
func (c *AudioConfig) SetVolumePercent(percent int) {
	c.MasterVolume = clamp01(float64(percent) / 100.0)
}

// SetEffectVolumes overrides per-effect volumes keyed by sound name; unknown names are ignored
func (c *AudioConfig) SetEffectVolumes(volumes map[string]float64) {
	for name, vol := range volumes {
		for st := SoundType(0); st < soundTypeCount; st++ {
			if strings.EqualFold(name, st.String()) {
				c.EffectVolumes[st] = clamp01(vol)
			}
		}
	}
}

// volume returns the effective volume of a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
