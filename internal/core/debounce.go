package core

import "time"

// DefaultDebounce is the minimum spacing between accepted button events.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer drops events that arrive closer together than its window.
type Debouncer struct {
	window time.Duration
	last   time.Duration
	seen   bool
}

// NewDebouncer returns a Debouncer with the given window.
func NewDebouncer(window time.Duration) *Debouncer {
	if window < 0 {
		window = 0
	}
	return &Debouncer{window: window}
}

// Allow reports whether an event at now should be accepted and, if so,
// records it as the latest accepted event.
func (d *Debouncer) Allow(now time.Duration) bool {
	if d.seen && now-d.last < d.window {
		return false
	}
	d.last = now
	d.seen = true
	return true
}
