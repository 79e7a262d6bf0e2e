package playback

import (
	"context"
	"sync"
	"time"
)

// Loop runs posted functions one at a time on the goroutine that called
// Run. Timers created by Schedule post their callback back onto the loop,
// so a Controller driven through a Loop never sees concurrent calls.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run executes tasks until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(fn func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

func (l *Loop) Schedule(d time.Duration, fn func()) Timer {
	return loopTimer{t: time.AfterFunc(d, func() { l.Post(fn) })}
}

type loopTimer struct {
	t *time.Timer
}

func (t loopTimer) Stop() { t.t.Stop() }
