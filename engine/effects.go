package engine

import (
	"math"

	"github.com/lixenwraith/pixel-spin/constants"
)

// Effects is the presentation derived from one motor state
type Effects struct {
	NeedleLeft  float64 // Degrees
	NeedleRight float64 // Degrees, mirrored
	Blur        float64
	ActiveShift float64 // Percent of card height
	NextShift   float64 // Percent of card height
	Label       string
}

// NeedleAngle returns the left needle rotation for the given speed and distance
func NeedleAngle(speed, totalDistance float64) float64 {
	if speed <= constants.NeedleSpeedFloor {
		return 0
	}
	amp := constants.NeedleBaseAmplitude + (speed/constants.MaxSpeed)*constants.NeedleSpeedAmplitude
	return math.Sin(totalDistance*constants.NeedlePhaseRate) * amp
}

// BlurAmount returns the motion blur for the given speed
func BlurAmount(speed float64) float64 {
	return math.Min(speed/constants.BlurDivisor, constants.MaxBlur)
}

// Label returns the button text for a phase
// spunBefore selects the post-finalize idle text
func Label(phase Phase, spunBefore bool) string {
	switch phase {
	case PhaseAccelerate:
		return constants.LabelAccelerate
	case PhaseCruise:
		return constants.LabelCruise
	case PhaseDecelerate, PhaseStopping:
		return constants.LabelDecelerate
	}
	if spunBefore {
		return constants.LabelAgain
	}
	return constants.LabelIdle
}

// Derive computes every presentation effect from the motor state
func Derive(s SpinState, spunBefore bool) Effects {
	angle := NeedleAngle(s.Speed, s.TotalDistance)
	return Effects{
		NeedleLeft:  angle,
		NeedleRight: -angle,
		Blur:        BlurAmount(s.Speed),
		ActiveShift: s.Offset,
		NextShift:   s.Offset - constants.CardSpan,
		Label:       Label(s.Phase, spunBefore),
	}
}
