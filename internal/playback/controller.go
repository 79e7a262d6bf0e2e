package playback

import (
	"time"

	"github.com/san-kum/collatz/internal/collatz"
)

const (
	DefaultIntervalMs = 250
)

// Listener receives a snapshot after each state change.
type Listener func(Snapshot)

type listenerEntry struct {
	id int
	fn Listener
}

// Controller is the single source of truth for the cursor and play state.
type Controller struct {
	seq        collatz.Sequence
	cursor     int
	playing    bool
	intervalMs int
	scale      ScaleMode

	sched Scheduler
	timer Timer
	// gen invalidates ticks that were already in flight when their timer
	// was stopped.
	gen uint64

	listeners []listenerEntry
	nextID    int
}

type Option func(*Controller)

func WithInterval(ms int) Option {
	return func(c *Controller) {
		if ms > 0 {
			c.intervalMs = ms
		}
	}
}

func WithScaleMode(m ScaleMode) Option {
	return func(c *Controller) { c.scale = m }
}

func WithListener(fn Listener) Option {
	return func(c *Controller) { c.Subscribe(fn) }
}

// New returns an empty controller. sched must run its callbacks on the
// same execution context as every other call into the controller.
func New(sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		intervalMs: DefaultIntervalMs,
		scale:      Logarithmic,
		sched:      sched,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Sequence:   c.seq,
		Cursor:     c.cursor,
		Playing:    c.playing,
		Scale:      c.scale,
		IntervalMs: c.intervalMs,
	}
}

func (c *Controller) State() State {
	return c.Snapshot().State()
}

// Load replaces the sequence, rewinds to 0 and stops any animation.
func (c *Controller) Load(seq collatz.Sequence) error {
	if seq.IsEmpty() {
		return ErrInvalidInput
	}
	c.stop()
	c.seq = seq
	c.cursor = 0
	c.notify()
	return nil
}

// Play starts animating from the cursor. At the last index it rewinds to 0
// first. A one-element sequence has nothing to animate and stays Idle.
func (c *Controller) Play() error {
	if c.seq.IsEmpty() {
		return ErrNoSequence
	}
	if c.playing {
		return nil
	}
	last := c.seq.Len() - 1
	rewound := false
	if c.cursor >= last {
		rewound = c.cursor != 0
		c.cursor = 0
	}
	if c.cursor >= last {
		if rewound {
			c.notify()
		}
		return nil
	}
	c.playing = true
	c.schedule()
	c.notify()
	return nil
}

// Pause stops the animation. It is a no-op outside Playing.
func (c *Controller) Pause() {
	if !c.playing {
		return
	}
	c.stop()
	c.notify()
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle() error {
	if c.playing {
		c.Pause()
		return nil
	}
	return c.Play()
}

// Tick advances the cursor by one. The scheduler calls it; at the last index
// the controller returns to Idle instead of scheduling another tick.
func (c *Controller) Tick() error {
	if !c.playing {
		return ErrNotPlaying
	}
	c.cancelTimer()
	c.cursor++
	if c.cursor >= c.seq.Len()-1 {
		c.cursor = c.seq.Len() - 1
		c.playing = false
	} else {
		c.schedule()
	}
	c.notify()
	return nil
}

// Step moves the cursor by direction (+1 or -1), pausing first. Moves past
// either end are clamped.
func (c *Controller) Step(direction int) error {
	if direction != 1 && direction != -1 {
		return ErrInvalidInput
	}
	if c.seq.IsEmpty() {
		return ErrNoSequence
	}
	c.stop()
	c.cursor = c.clamp(c.cursor + direction)
	c.notify()
	return nil
}

// SeekToStep pauses and moves the cursor to index, clamped to the sequence.
func (c *Controller) SeekToStep(index int) error {
	if c.seq.IsEmpty() {
		return ErrNoSequence
	}
	c.stop()
	c.cursor = c.clamp(index)
	c.notify()
	return nil
}

// Reset pauses and rewinds to the first element.
func (c *Controller) Reset() error {
	return c.SeekToStep(0)
}

// SetStepIntervalMs changes the pacing used by the next scheduled tick.
// A tick already in flight keeps its delay.
func (c *Controller) SetStepIntervalMs(ms int) error {
	if ms <= 0 {
		return ErrInvalidInput
	}
	c.intervalMs = ms
	c.notify()
	return nil
}

func (c *Controller) SetScaleMode(m ScaleMode) {
	c.scale = m
	c.notify()
}

func (c *Controller) ToggleScale() {
	if c.scale == Linear {
		c.SetScaleMode(Logarithmic)
		return
	}
	c.SetScaleMode(Linear)
}

func (c *Controller) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if last := c.seq.Len() - 1; i > last {
		return last
	}
	return i
}

func (c *Controller) schedule() {
	c.gen++
	gen := c.gen
	c.timer = c.sched.Schedule(time.Duration(c.intervalMs)*time.Millisecond, func() {
		if gen != c.gen || !c.playing {
			return
		}
		_ = c.Tick()
	})
}

// stop leaves Playing and cancels the pending tick, if any.
func (c *Controller) stop() {
	c.gen++
	c.cancelTimer()
	c.playing = false
}

// cancelTimer releases the pending tick handle. Stopping a timer that has
// already fired is harmless.
func (c *Controller) cancelTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify() {
	snap := c.Snapshot()
	for _, l := range c.listeners {
		l.fn(snap)
	}
}
