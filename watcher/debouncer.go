package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default debounce window. Editors often
// write a file in several steps; one reload per burst is enough.
const DefaultDebounceDuration = 150 * time.Millisecond

// Debouncer runs fire once after a burst of Trigger calls has been quiet
// for the debounce window.
type Debouncer struct {
	window time.Duration
	fire   func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer returns a debouncer for fire. A non-positive window uses
// DefaultDebounceDuration.
func NewDebouncer(window time.Duration, fire func()) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceDuration
	}
	return &Debouncer{window: window, fire: fire}
}

// Trigger restarts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.expire(gen) })
}

// expire runs fire unless a later Trigger or Cancel superseded gen. A
// stopped timer can still fire, so the generation decides.
func (d *Debouncer) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fire()
}

// Cancel drops a pending fire.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a fire is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.window
}
