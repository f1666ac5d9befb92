package core

import "time"

// Repeat turns a held input into discrete actions at a steady rate: one on
// press, then one every interval after an initial delay.
type Repeat struct {
	delay    time.Duration
	interval time.Duration
	next     time.Time
	held     bool
}

// NewRepeat constructs a Repeat firing rate times per second once the delay
// has passed. Non-positive rates fall back to 10.
func NewRepeat(delay time.Duration, rate int) *Repeat {
	if rate <= 0 {
		rate = 10
	}
	if delay < 0 {
		delay = 0
	}
	return &Repeat{delay: delay, interval: time.Second / time.Duration(rate)}
}

// Fire reports whether the input held at now should trigger an action.
func (r *Repeat) Fire(now time.Time, held bool) bool {
	if !held {
		r.held = false
		return false
	}
	if !r.held {
		r.held = true
		r.next = now.Add(r.delay)
		return true
	}
	if now.Before(r.next) {
		return false
	}
	r.next = r.next.Add(r.interval)
	// Resync after long stalls instead of firing a burst.
	if r.next.Before(now) {
		r.next = now.Add(r.interval)
	}
	return true
}
