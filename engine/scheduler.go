package engine

import "time"

// FrameHandle identifies a scheduled frame callback
type FrameHandle uint64

// Scheduler is the host scheduling primitive set
// Frame callbacks run once, on the next frame; timers run once after a wall-clock delay.
// Both run on the loop goroutine.
type Scheduler interface {
	ScheduleFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
	ScheduleAfter(d time.Duration, fn func())
}

// frameQueue holds frame callbacks in scheduling order
type frameQueue struct {
	next    FrameHandle
	pending []frameEntry
}

type frameEntry struct {
	handle FrameHandle
	fn     func()
}

func (q *frameQueue) add(fn func()) FrameHandle {
	q.next++
	q.pending = append(q.pending, frameEntry{handle: q.next, fn: fn})
	return q.next
}

func (q *frameQueue) cancel(h FrameHandle) {
	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// run executes callbacks queued before the call; those they schedule wait for the next run
func (q *frameQueue) run() int {
	batch := q.pending
	q.pending = nil
	for _, e := range batch {
		e.fn()
	}
	return len(batch)
}

func (q *frameQueue) len() int {
	return len(q.pending)
}
