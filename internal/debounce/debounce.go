// Package debounce provides a trailing-edge debouncer: rapid repeated
// triggers are coalesced into a single deferred call, and every new trigger
// cancels and replaces the pending one.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a function to run after a quiescence window. Calling
// Do again before the window elapses discards the previously scheduled
// function. The zero value is not usable; construct with New.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

// New creates a Debouncer with the given quiescence window
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Do schedules fn to run once the window elapses with no further calls.
// fn runs on the timer goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels any pending call. It does not wait for a call that has
// already started.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
