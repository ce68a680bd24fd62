// Package stopwatch provides the emulation duration source used in place of
// a hardware timer.
package stopwatch

import "time"

// Nominal is the duration a Fixed stopwatch reports.
const Nominal = 100 * time.Millisecond

// Fixed reports the same elapsed time on every call.
type Fixed struct{}

// Measure returns Nominal.
func (Fixed) Measure() time.Duration { return Nominal }
