package engine

import (
	"sort"
	"time"
)

// ManualScheduler is a deterministic Scheduler on virtual time
// Each Step advances the clock by one frame interval, fires due timers, then runs one frame.
type ManualScheduler struct {
	Clock    *MockTimeProvider
	interval time.Duration

	frames frameQueue
	timers []manualTimer
	seq    int

	frameCount int
}

type manualTimer struct {
	due time.Time
	seq int
	fn  func()
}

// NewManualScheduler creates a scheduler starting at start with the given frame interval
func NewManualScheduler(start time.Time, interval time.Duration) *ManualScheduler {
	return &ManualScheduler{
		Clock:    NewMockTimeProvider(start),
		interval: interval,
	}
}

// ScheduleFrame queues fn for the next Step
func (s *ManualScheduler) ScheduleFrame(fn func()) FrameHandle {
	return s.frames.add(fn)
}

// CancelFrame removes a queued frame callback
func (s *ManualScheduler) CancelFrame(h FrameHandle) {
	s.frames.cancel(h)
}

// ScheduleAfter registers fn to fire once virtual time reaches now+d
func (s *ManualScheduler) ScheduleAfter(d time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, manualTimer{due: s.Clock.Now().Add(d), seq: s.seq, fn: fn})
}

// Step advances one frame and returns the number of frame callbacks run
func (s *ManualScheduler) Step() int {
	s.Advance(s.interval)
	s.frameCount++
	return s.frames.run()
}

// Advance moves virtual time forward by d, firing due timers in due order, without running frames
func (s *ManualScheduler) Advance(d time.Duration) {
	s.Clock.Advance(d)
	now := s.Clock.Now()

	// Timers may schedule timers, so re-sort on every pop
	for {
		sort.SliceStable(s.timers, func(i, j int) bool {
			if s.timers[i].due.Equal(s.timers[j].due) {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].due.Before(s.timers[j].due)
		})
		if len(s.timers) == 0 || s.timers[0].due.After(now) {
			return
		}
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn()
	}
}

// RunUntilIdle steps until no frame is pending or limit steps elapse; returns steps taken
func (s *ManualScheduler) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && s.frames.len() > 0 {
		s.Step()
		n++
	}
	return n
}

// PendingFrames returns the number of queued frame callbacks
func (s *ManualScheduler) PendingFrames() int {
	return s.frames.len()
}

// PendingTimers returns the number of timers not yet fired
func (s *ManualScheduler) PendingTimers() int {
	return len(s.timers)
}

// Frames returns the number of Steps taken
func (s *ManualScheduler) Frames() int {
	return s.frameCount
}
