package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/pixel-spin/constants"
)

// TestMotorStepIdleIsNoop verifies an idle motor does not move
func TestMotorStepIdleIsNoop(t *testing.T) {
	var m Motor
	res := m.Step()
	if res != (StepResult{}) {
		t.Errorf("Expected no events while idle, got %+v", res)
	}
	if m.State() != (SpinState{}) {
		t.Errorf("Expected zero state, got %+v", m.State())
	}
}

// TestMotorStartResets verifies start resets state and refuses a second start
func TestMotorStartResets(t *testing.T) {
	var m Motor
	if !m.Start() {
		t.Fatal("Expected start from idle")
	}
	for i := 0; i < 10; i++ {
		m.Step()
	}
	if m.Start() {
		t.Error("Expected start to be refused mid-cycle")
	}
	if m.Cycle() != 1 {
		t.Errorf("Expected cycle 1, got %d", m.Cycle())
	}

	m.Finish()
	if !m.Start() {
		t.Fatal("Expected start after finish")
	}
	s := m.State()
	if s.Phase != PhaseAccelerate || s.Speed != 0 || s.Offset != 0 || s.TotalDistance != 0 {
		t.Errorf("Expected fresh accelerate state, got %+v", s)
	}
	if m.Cycle() != 2 {
		t.Errorf("Expected cycle 2, got %d", m.Cycle())
	}
}

// TestMotorPhaseSequence drives the motor by hand and checks the exact phase order
func TestMotorPhaseSequence(t *testing.T) {
	var m Motor
	m.Start()

	seen := []Phase{PhaseAccelerate}
	cruiseFrames := 0
	enteredCruise := 0
	for step := 0; step < 10000; step++ {
		res := m.Step()
		if res.EnteredCruise {
			enteredCruise++
		}
		p := m.State().Phase
		if seen[len(seen)-1] != p {
			seen = append(seen, p)
		}
		if p == PhaseCruise {
			cruiseFrames++
			if cruiseFrames == 90 && !m.Expire(m.Cycle()) {
				t.Fatal("Expected cruise to expire for the current cycle")
			}
		}
		if res.Terminal {
			if p != PhaseStopping {
				t.Fatalf("Terminal wrap outside stopping: %s", p)
			}
			m.Finish()
			seen = append(seen, PhaseIdle)
			break
		}
	}

	want := []Phase{PhaseAccelerate, PhaseCruise, PhaseDecelerate, PhaseStopping, PhaseIdle}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, seen)
		}
	}
	if enteredCruise != 1 {
		t.Errorf("Expected one cruise entry event, got %d", enteredCruise)
	}
}

// TestMotorCruiseHoldsSpeed verifies cruise keeps MaxSpeed until expired
func TestMotorCruiseHoldsSpeed(t *testing.T) {
	var m Motor
	m.Start()
	for m.State().Phase != PhaseCruise {
		m.Step()
	}
	for i := 0; i < 500; i++ {
		m.Step()
		if m.State().Speed != constants.MaxSpeed || m.State().Phase != PhaseCruise {
			t.Fatalf("Cruise changed without the timer: %+v", m.State())
		}
	}
}

// TestMotorExpireGuards verifies stale or misplaced expiry is ignored
func TestMotorExpireGuards(t *testing.T) {
	var m Motor
	m.Start()
	if m.Expire(m.Cycle()) {
		t.Error("Expected expire during acceleration to be ignored")
	}

	for m.State().Phase != PhaseCruise {
		m.Step()
	}
	if m.Expire(m.Cycle() + 1) {
		t.Error("Expected expire for another cycle to be ignored")
	}
	if !m.Expire(m.Cycle()) {
		t.Error("Expected expire for the current cycle to apply")
	}
	if m.Expire(m.Cycle()) {
		t.Error("Expected repeated expire to be ignored")
	}
}

// TestMotorDecelerationClampsToThreshold verifies friction decay and the crawl clamp
func TestMotorDecelerationClampsToThreshold(t *testing.T) {
	var m Motor
	m.Start()
	for m.State().Phase != PhaseCruise {
		m.Step()
	}
	m.Expire(m.Cycle())

	m.Step()
	if got, want := m.State().Speed, constants.MaxSpeed*constants.Friction; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected first braking speed %v, got %v", want, got)
	}

	for m.State().Phase == PhaseDecelerate {
		m.Step()
	}
	if m.State().Phase != PhaseStopping {
		t.Fatalf("Expected stopping, got %s", m.State().Phase)
	}
	for i := 0; i < 10; i++ {
		if m.State().Speed != constants.StopThreshold {
			t.Fatalf("Expected crawl speed %v, got %v", constants.StopThreshold, m.State().Speed)
		}
		if m.Step().Terminal {
			break
		}
	}
}

// TestMotorWrapKeepsOffsetInRange verifies each wrap subtracts exactly one card span
func TestMotorWrapKeepsOffsetInRange(t *testing.T) {
	var m Motor
	m.Start()
	for i := 0; i < 300; i++ {
		before := m.State().Offset
		res := m.Step()
		s := m.State()
		if s.Offset < 0 || s.Offset >= constants.CardSpan {
			t.Fatalf("Offset %v out of range", s.Offset)
		}
		if res.Wrapped {
			if math.Abs(before+s.Speed-constants.CardSpan-s.Offset) > 1e-9 {
				t.Fatalf("Wrap did not subtract exactly one span: %v + %v -> %v", before, s.Speed, s.Offset)
			}
		} else if math.Abs(before+s.Speed-s.Offset) > 1e-9 {
			t.Fatalf("Offset did not advance by speed: %v + %v -> %v", before, s.Speed, s.Offset)
		}
	}
}
