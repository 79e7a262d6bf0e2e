// Package playback owns the cursor over a computed Collatz sequence and the
// play/pause state that animates it.
//
// A [Controller] is a small state machine with three states:
//
//	Empty   --Load-->  Idle
//	Idle    --Play-->  Playing
//	Playing --Pause/Step/SeekToStep/Reset/Load--> Idle
//	Playing --Tick at last index--> Idle
//
// Only Tick self-schedules. It does so through a [Scheduler], and the
// controller keeps at most one pending [Timer], stopped on every exit from
// Playing.
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. Every call, including the
// scheduled ticks, must run on one execution context. The Bubble Tea shell
// gets this for free from its Update loop; other callers can use [Loop],
// which runs posted functions and fired timers on a single goroutine.
package playback
