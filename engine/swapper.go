package engine

import "github.com/lixenwraith/pixel-spin/question"

// Slot identifies one of the two card surfaces
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

// Other returns the opposite slot
func (s Slot) Other() Slot {
	return 1 - s
}

// Selector supplies replacement card content
type Selector interface {
	SelectRandom() question.Item
}

// Swapper owns the two card slots and which of them is active
// Roles are exchanged by flipping the active index; content never moves between slots
type Swapper struct {
	pool     Selector
	contents [2]question.Item
	active   Slot
}

// NewSwapper creates a swapper with SlotA active and showing initial
func NewSwapper(pool Selector, initial question.Item) *Swapper {
	s := &Swapper{pool: pool, active: SlotA}
	s.contents[SlotA] = initial
	return s
}

// Active returns the slot at (or scrolling away from) the rest position
func (s *Swapper) Active() Slot {
	return s.active
}

// Next returns the slot scrolling in behind the active one
func (s *Swapper) Next() Slot {
	return s.active.Other()
}

// Content returns the item held by slot
func (s *Swapper) Content(slot Slot) question.Item {
	return s.contents[slot]
}

// Prepare refreshes the next slot, leaving the visible active card untouched
func (s *Swapper) Prepare() Slot {
	next := s.Next()
	s.contents[next] = s.pool.SelectRandom()
	return next
}

// Swap promotes next to active and refreshes the slot that just left the screen
// Returns the refreshed slot
func (s *Swapper) Swap() Slot {
	s.active = s.active.Other()
	return s.Prepare()
}
