package constants

import "time"

// Spin Physics Constants
// Speed unit is percent of one card height per frame
const (
	// MaxSpeed is the cruise speed
	MaxSpeed = 45.0

	// Acceleration is added to speed once per frame while accelerating
	Acceleration = 0.8

	// Friction multiplies speed once per frame while decelerating
	Friction = 0.96

	// StopThreshold is the crawl speed held while waiting for the final card boundary
	StopThreshold = 2.0

	// CruiseDuration is wall-clock time spent at MaxSpeed before braking
	CruiseDuration = 1500 * time.Millisecond

	// CardSpan is the offset at which the reel wraps to the next card
	CardSpan = 100.0
)

// Spin Effect Constants
const (
	// NeedleSpeedFloor is the speed at or below which needles rest at 0°
	NeedleSpeedFloor = 0.5

	// NeedleBaseAmplitude is the needle swing in degrees at zero speed
	NeedleBaseAmplitude = 15.0

	// NeedleSpeedAmplitude is the additional swing at MaxSpeed
	NeedleSpeedAmplitude = 10.0

	// NeedlePhaseRate scales totalDistance into the wiggle oscillator phase
	NeedlePhaseRate = 0.25

	// BlurDivisor converts speed to blur amount
	BlurDivisor = 8.0

	// MaxBlur caps the blur amount
	MaxBlur = 4.0

	// BorderFlashDuration is how long the screen border stays highlighted after a stop
	BorderFlashDuration = 100 * time.Millisecond
)
