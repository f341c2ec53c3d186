package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the frame rate used when none is configured
	DefaultFPS = 60

	// MaxFPS caps the configurable frame rate
	MaxFPS = 240
)
