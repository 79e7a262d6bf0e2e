package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/collatz/internal/playback"
)

// TickMsg carries a scheduled playback tick back into Update.
type TickMsg struct {
	ID uint64
}

// teaScheduler turns playback timers into tea.Tick commands, so ticks are
// delivered through Update like every other event.
type teaScheduler struct {
	next   uint64
	live   map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{live: make(map[uint64]func())}
}

func (s *teaScheduler) Schedule(d time.Duration, fn func()) playback.Timer {
	s.next++
	id := s.next
	s.live[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return TickMsg{ID: id} }))
	return teaTimer{s: s, id: id}
}

// fire runs the callback for id unless it was stopped.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	fn()
	return true
}

// drain hands queued tick commands to the runtime.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int { return len(s.live) }

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

func (t teaTimer) Stop() { delete(t.s.live, t.id) }
