package collatz

import (
	"errors"
	"fmt"
)

// Domain errors for sequence computation.
var (
	// ErrInvalidInput indicates a non-positive start or cap.
	ErrInvalidInput = errors.New("collatz: invalid input (must be a positive integer)")

	// ErrOverflow indicates 3n+1 would exceed the int64 range.
	ErrOverflow = errors.New("collatz: value overflows int64")

	// ErrTruncated is informational. Compute reports truncation through its
	// bool result; shells use this to word the warning.
	ErrTruncated = errors.New("collatz: step cap reached before the sequence reached 1")
)

// OverflowError records where a trajectory left the int64 range.
type OverflowError struct {
	Step  int
	Value int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: 3*%d+1 at step %d", ErrOverflow.Error(), e.Value, e.Step)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
