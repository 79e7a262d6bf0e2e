package playback

import "errors"

var (
	// ErrNoSequence indicates a playback operation before any Load.
	ErrNoSequence = errors.New("playback: no sequence loaded")

	// ErrInvalidInput indicates a non-positive interval, an empty sequence
	// or a step direction other than +1/-1.
	ErrInvalidInput = errors.New("playback: invalid input")

	// ErrNotPlaying is returned by Tick outside the Playing state.
	ErrNotPlaying = errors.New("playback: tick while not playing")
)
