// Package collatz computes Collatz trajectories.
//
// The map is f(n) = n/2 for even n and f(n) = 3n+1 for odd n. [Compute]
// applies it from a starting value until the trajectory reaches 1 or the
// length cap is hit:
//
//	seq, truncated, err := collatz.Compute(27, collatz.DefaultCap)
//	// seq.Len() == 112, seq.Max() == 9232, truncated == false
//
// # Numeric range
//
// Values are int64. The 3n+1 branch is checked before it is taken, so a
// trajectory that would leave the int64 range fails with [ErrOverflow]
// instead of wrapping. In practice every start below 2^60 stays in range;
// the check only fires for starts close to math.MaxInt64/3.
//
// The package is pure: no I/O, no logging, no shared state.
package collatz
