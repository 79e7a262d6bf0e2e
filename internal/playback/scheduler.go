package playback

import (
	"sort"
	"time"
)

// Timer is a handle on one scheduled callback.
type Timer interface {
	// Stop prevents the callback from running if it has not run yet.
	Stop()
}

// Scheduler runs fn once after d. Implementations must run fn on the same
// execution context as the Controller that owns the timer.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// ManualScheduler is a virtual clock. Nothing fires until Fire or Advance is
// called, which makes playback deterministic in tests and headless tools.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
	last    time.Duration
}

type manualTimer struct {
	due     time.Duration
	order   int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() { t.stopped = true }

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) Timer {
	s.seq++
	s.last = d
	t := &manualTimer{due: s.now + d, order: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Pending counts timers that are neither stopped nor fired.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// LastDelay is the delay passed to the most recent Schedule call.
func (s *ManualScheduler) LastDelay() time.Duration {
	return s.last
}

func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Fire jumps the clock to the earliest live timer and runs it. It reports
// false when nothing is pending.
func (s *ManualScheduler) Fire() bool {
	t := s.next()
	if t == nil {
		return false
	}
	if t.due > s.now {
		s.now = t.due
	}
	s.run(t)
	return true
}

// Advance moves the clock forward by d, running every timer that falls due,
// including timers scheduled by callbacks along the way.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		t := s.next()
		if t == nil || t.due > target {
			break
		}
		s.now = t.due
		s.run(t)
		fired++
	}
	s.now = target
	return fired
}

func (s *ManualScheduler) next() *manualTimer {
	s.compact()
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].order < s.pending[j].order
	})
	return s.pending[0]
}

func (s *ManualScheduler) run(t *manualTimer) {
	t.fired = true
	t.fn()
}

func (s *ManualScheduler) compact() {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.pending = live
}
