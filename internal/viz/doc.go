// Package viz is the terminal front end for the Collatz visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: number entry, chart, sequence list, statistics and progress
//   - [Canvas]: Braille-based pixel canvas for the whole-trajectory overview
//   - Theme selection with 4 built-in color schemes
//
// Playback state lives in a playback.Controller. Its ticks are scheduled as
// tea.Tick commands and delivered back through Update, so the controller is
// only ever touched from the Bubble Tea event loop.
//
// # Key Bindings
//
//	Space - Play/Pause animation
//	←/→   - Previous/next step
//	R     - Reset to the first step
//	S     - Toggle linear/log scale
//	I     - Enter a starting number, N picks a random one
//	E/O/C - Export CSV, JSON, SVG chart
//	T     - Cycle color themes
//	?     - Show full help
//
// Clicking a row of the sequence list, or a column of the overview, seeks
// to that step.
package viz
