package engine

import (
	"sync"
	"time"
)

// LoopScheduler drives frames and timers from a single loop goroutine
// The loop calls RunFrame on every frame tick and runs each func received from Timers.
// Timer goroutines only hand callbacks over; they never touch spin state.
type LoopScheduler struct {
	frames frameQueue

	timers   chan func()
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoopScheduler creates a scheduler with room for buffer pending timer callbacks
func NewLoopScheduler(buffer int) *LoopScheduler {
	return &LoopScheduler{
		timers:   make(chan func(), buffer),
		stopChan: make(chan struct{}),
	}
}

// ScheduleFrame queues fn for the next RunFrame
func (s *LoopScheduler) ScheduleFrame(fn func()) FrameHandle {
	return s.frames.add(fn)
}

// CancelFrame removes a queued frame callback; unknown or fired handles are ignored
func (s *LoopScheduler) CancelFrame(h FrameHandle) {
	s.frames.cancel(h)
}

// ScheduleAfter delivers fn to Timers after d
func (s *LoopScheduler) ScheduleAfter(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		select {
		case s.timers <- fn:
		case <-s.stopChan:
		}
	})
}

// Timers returns the channel of due timer callbacks
func (s *LoopScheduler) Timers() <-chan func() {
	return s.timers
}

// RunFrame runs the callbacks queued for this frame and returns their count
func (s *LoopScheduler) RunFrame() int {
	return s.frames.run()
}

// Pending returns the number of queued frame callbacks
func (s *LoopScheduler) Pending() int {
	return s.frames.len()
}

// Stop releases timer goroutines still waiting to deliver
func (s *LoopScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}
