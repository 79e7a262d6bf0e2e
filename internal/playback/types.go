package playback

import (
	"fmt"
	"strings"

	"github.com/san-kum/collatz/internal/collatz"
)

type State int

const (
	Empty State = iota
	Idle
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "empty"
	}
}

// ScaleMode selects the y-axis scale of the chart. It survives Load.
type ScaleMode int

const (
	Linear ScaleMode = iota
	Logarithmic
)

func (m ScaleMode) String() string {
	if m == Logarithmic {
		return "log"
	}
	return "linear"
}

// ParseScaleMode accepts "linear"/"lin" and "log"/"logarithmic".
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return Linear, nil
	case "log", "logarithmic":
		return Logarithmic, nil
	}
	return Linear, fmt.Errorf("%w: unknown scale %q", ErrInvalidInput, s)
}

// Snapshot is the read-only view handed to listeners.
type Snapshot struct {
	Sequence   collatz.Sequence
	Cursor     int
	Playing    bool
	Scale      ScaleMode
	IntervalMs int
}

func (s Snapshot) State() State {
	switch {
	case s.Sequence.IsEmpty():
		return Empty
	case s.Playing:
		return Playing
	default:
		return Idle
	}
}

// Current is the value under the cursor, 0 when empty.
func (s Snapshot) Current() int64 {
	if s.Sequence.IsEmpty() {
		return 0
	}
	return s.Sequence.At(s.Cursor)
}

// Progress is cursor/(len-1), in [0, 1]. A one-element sequence is complete.
func (s Snapshot) Progress() float64 {
	switch n := s.Sequence.Len(); {
	case n == 0:
		return 0
	case n == 1:
		return 1
	default:
		return float64(s.Cursor) / float64(n-1)
	}
}

// Visible returns the values up to and including the cursor.
func (s Snapshot) Visible() []float64 {
	if s.Sequence.IsEmpty() {
		return nil
	}
	return s.Sequence.Floats(s.Cursor + 1)
}

// NextOp describes the transition leaving the cursor.
func (s Snapshot) NextOp() (collatz.Op, bool) {
	return collatz.Operation(s.Sequence, s.Cursor)
}

// AtEnd reports whether the cursor sits on the last element.
func (s Snapshot) AtEnd() bool {
	return !s.Sequence.IsEmpty() && s.Cursor == s.Sequence.Len()-1
}
