package engine

import "github.com/lixenwraith/pixel-spin/constants"

// SpinState is the instantaneous motor state
type SpinState struct {
	Phase         Phase
	Speed         float64 // Percent of a card height per frame
	Offset        float64 // Scroll of the active card past rest, in [0, CardSpan)
	TotalDistance float64 // Accumulated speed, phases the needle wiggle
}

// StepResult reports the events produced by one Motor.Step
type StepResult struct {
	EnteredCruise bool // Speed reached MaxSpeed on this step
	Wrapped       bool // Offset passed CardSpan and was reduced by it
	Terminal      bool // Wrapped while stopping; the cycle is over
}

// Motor is the spin phase and velocity state machine
// Every cycle gets a new number so callbacks scheduled by an older cycle can be told apart
type Motor struct {
	state SpinState
	cycle uint64
}

// State returns a copy of the current state
func (m *Motor) State() SpinState {
	return m.state
}

// Cycle returns the number of the current or most recent cycle, 0 before the first start
func (m *Motor) Cycle() uint64 {
	return m.cycle
}

// Start begins a new cycle from Idle; it is a no-op returning false otherwise
func (m *Motor) Start() bool {
	if m.state.Phase != PhaseIdle {
		return false
	}
	m.cycle++
	m.state = SpinState{Phase: PhaseAccelerate}
	return true
}

// Step advances the motor by one frame
func (m *Motor) Step() StepResult {
	var r StepResult
	s := &m.state

	switch s.Phase {
	case PhaseIdle:
		return r
	case PhaseAccelerate:
		s.Speed += constants.Acceleration
		if s.Speed >= constants.MaxSpeed {
			s.Speed = constants.MaxSpeed
			s.Phase = PhaseCruise
			r.EnteredCruise = true
		}
	case PhaseDecelerate:
		s.Speed *= constants.Friction
		if s.Speed < constants.StopThreshold {
			s.Speed = constants.StopThreshold
			s.Phase = PhaseStopping
		}
	}

	s.Offset += s.Speed
	s.TotalDistance += s.Speed

	// Speed never exceeds CardSpan so one subtraction restores the range
	if s.Offset >= constants.CardSpan {
		s.Offset -= constants.CardSpan
		r.Wrapped = true
		r.Terminal = s.Phase == PhaseStopping
	}
	return r
}

// Expire ends the cruise of the given cycle
// Returns false when the cycle is stale or no longer cruising
func (m *Motor) Expire(cycle uint64) bool {
	if cycle != m.cycle || m.state.Phase != PhaseCruise {
		return false
	}
	m.state.Phase = PhaseDecelerate
	return true
}

// Finish returns the motor to Idle at rest
func (m *Motor) Finish() {
	m.state = SpinState{Phase: PhaseIdle}
}
