package constants

import "time"

// Button Labels
const (
	LabelIdle       = "SPIN THE REEL"
	LabelAgain      = "SPIN AGAIN"
	LabelAccelerate = "ACCELERATING..."
	LabelCruise     = "MAX SPEED!"
	LabelDecelerate = "BRAKING..."
)

// Reel Layout Constants
const (
	// ReelTitle is drawn above the screen
	ReelTitle = "> PIXEL.SPIN_ENGINE"

	// ReelMinWidth and ReelMaxWidth bound the screen box width in cells
	ReelMinWidth = 24
	ReelMaxWidth = 64

	// ReelHeight is the screen box height in cells, border included
	ReelHeight = 9

	// CursorBlinkInterval is the blink period of the title cursor
	CursorBlinkInterval = 500 * time.Millisecond
)

// Settle Bounce Constants
const (
	// SettleFrequency is the angular frequency of the settle spring
	SettleFrequency = 9.0

	// SettleDamping is the damping ratio of the settle spring (under-damped)
	SettleDamping = 0.35

	// SettleKick is the initial downward displacement in rows when a card settles
	SettleKick = 2.0
)

// Needle Constants
const (
	// NeedleRowDegrees is the rotation that moves a needle tip by one row
	NeedleRowDegrees = 10.0

	// NeedleMaxRows caps the tip displacement
	NeedleMaxRows = 2
)
