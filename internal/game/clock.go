package game

import "time"

// Clock gates logical updates to a fixed rate regardless of how fast the
// render loop polls. It is a bare time accumulator: one timestamp and one
// interval.
type Clock struct {
	interval time.Duration
	last     time.Time
}

// NewClock derives the tick interval from a logical updates-per-second rate
// and anchors the first interval at now.
func NewClock(updatesPerSecond int, now time.Time) *Clock {
	return &Clock{
		interval: time.Second / time.Duration(updatesPerSecond),
		last:     now,
	}
}

// Due reports whether a logical update should fire at now, consuming the
// interval when it does. At most one update fires per poll: when polling
// falls behind, missed intervals are dropped rather than queued, so a slow
// renderer slows the game instead of producing a burst of catch-up moves.
func (c *Clock) Due(now time.Time) bool {
	if now.Sub(c.last) >= c.interval {
		c.last = now
		return true
	}
	return false
}

// Interval returns the logical tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}
