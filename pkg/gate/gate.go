// Package gate implements the admission logic that paces sampling:
// a single elapsed-interval check over a wrapping 32-bit microsecond
// counter.
package gate

import "time"

// Gate decides, for each scheduler tick, whether the sampling interval
// has elapsed since the last admitted tick. It owns the last-fire
// timestamp and is its sole writer. Ticks are microseconds on a counter
// that wraps at 2^32, the native width of MCU microsecond counters.
type Gate struct {
	interval uint32
	last     uint32
}

// New creates a Gate with the given interval in microsecond ticks.
// A zero interval is coerced to 1.
func New(intervalMicros uint32) *Gate {
	if intervalMicros == 0 {
		intervalMicros = 1
	}
	return &Gate{interval: intervalMicros}
}

// FromDuration creates a Gate from a duration, truncated to whole
// microseconds.
func FromDuration(d time.Duration) *Gate {
	return New(uint32(d.Microseconds()))
}

// ShouldFire reports whether a full interval has elapsed at tick now.
// On true it records now as the last admission in the same call, so the
// next interval is measured from the admission instant rather than from
// whatever read/format/transmit work follows.
//
// The subtraction is unsigned and modular: it yields the true elapsed
// tick count even after now has wrapped past the counter maximum, so a
// wrap is absorbed rather than stalling the gate.
func (g *Gate) ShouldFire(now uint32) bool {
	if now-g.last >= g.interval {
		g.last = now
		return true
	}
	return false
}

// Interval returns the gate interval in microsecond ticks.
func (g *Gate) Interval() uint32 {
	return g.interval
}

// Last returns the tick of the most recent admission (zero if the gate
// has never fired).
func (g *Gate) Last() uint32 {
	return g.last
}
