package engine

// Phase is the current stage of a spin cycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAccelerate
	PhaseCruise
	PhaseDecelerate
	PhaseStopping
)

var phaseNames = [...]string{"idle", "accelerate", "cruise", "decelerate", "stopping"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}
