package constants

import "time"

// Audio Engine Constants
const (
	// DefaultSampleRate is the speaker sample rate when none is configured
	DefaultSampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Spin Start Sound
const (
	SpinStartDuration  = 300 * time.Millisecond
	SpinStartFreqStart = 100.0
	SpinStartFreqEnd   = 800.0
	SpinStartGain      = 0.1
)

// Tick Sound
const (
	TickDuration = 50 * time.Millisecond
	TickFreq     = 600.0
	TickGain     = 0.05
	TickFloor    = 0.001
)

// Win Sound
const (
	WinNoteDuration  = 100 * time.Millisecond
	WinFinalDuration = 400 * time.Millisecond
	WinGain          = 0.1
)

// WinArpeggio is C5 E5 G5 C6, followed by WinFinalNote held for WinFinalDuration
var WinArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}

const WinFinalNote = 1046.50
