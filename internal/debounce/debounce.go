// Package debounce provides a cancellable-timer debouncer for search input:
// each trigger resets a quiet-period timer, and only a timer that fires
// uninterrupted delivers the latest value.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period applied to search input.
const DefaultDelay = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation with
// the most recent value. Safe for concurrent use.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a debouncer that calls fn with the latest triggered value once
// the quiet period elapses. A zero delay selects DefaultDelay.
func New(delay time.Duration, fn func(value string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Trigger records value and restarts the quiet-period timer. A still-pending
// timer is canceled; only the last value within a burst is delivered.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(value)
	})
}

// Stop cancels any pending fire. Further triggers start a fresh timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
