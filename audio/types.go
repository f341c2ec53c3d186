package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSpinStart SoundType = iota // Rising power-up sweep
	SoundTick                       // Card boundary blip
	SoundWin                        // Settle arpeggio
	soundTypeCount
)

var soundNames = [...]string{"spin_start", "tick", "win"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
