package engine

import (
	"testing"

	"github.com/lixenwraith/pixel-spin/question"
)

func TestSwapperInitialSlots(t *testing.T) {
	s := NewSwapper(&sequenceSelector{}, question.Ready)

	if s.Active() != SlotA || s.Next() != SlotB {
		t.Fatalf("Active/Next = %v/%v, want A/B", s.Active(), s.Next())
	}
	if s.Content(SlotA) != question.Ready {
		t.Errorf("Active content = %+v, want Ready", s.Content(SlotA))
	}
	if !s.Content(SlotB).IsZero() {
		t.Errorf("Next content = %+v, want empty", s.Content(SlotB))
	}
}

// TestSwapperPrepareRefreshesNextOnly verifies the visible card is never replaced by Prepare
func TestSwapperPrepareRefreshesNextOnly(t *testing.T) {
	s := NewSwapper(&sequenceSelector{}, question.Ready)

	if slot := s.Prepare(); slot != SlotB {
		t.Errorf("Prepare refreshed %v, want B", slot)
	}
	if s.Content(SlotA) != question.Ready {
		t.Error("Prepare must not touch the active card")
	}
	if s.Content(SlotB).Primary != "Q1" {
		t.Errorf("Next = %q, want Q1", s.Content(SlotB).Primary)
	}
}

// TestSwapperSwapAlternates verifies roles flip and the departing slot is refilled
func TestSwapperSwapAlternates(t *testing.T) {
	s := NewSwapper(&sequenceSelector{}, question.Ready)
	s.Prepare() // B = Q1

	if slot := s.Swap(); slot != SlotA {
		t.Errorf("Swap refreshed %v, want A", slot)
	}
	if s.Active() != SlotB {
		t.Errorf("Active = %v after swap, want B", s.Active())
	}
	if s.Content(SlotB).Primary != "Q1" {
		t.Errorf("Arriving card = %q, want Q1 unchanged", s.Content(SlotB).Primary)
	}
	if s.Content(SlotA).Primary != "Q2" {
		t.Errorf("Departed card = %q, want Q2", s.Content(SlotA).Primary)
	}

	s.Swap()
	if s.Active() != SlotA || s.Content(SlotB).Primary != "Q3" {
		t.Errorf("Second swap: active=%v B=%q", s.Active(), s.Content(SlotB).Primary)
	}
}
