package watcher

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer coalesces rapid file events into one callback per quiet window.
type debouncer struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	window  time.Duration
	timer   clockwork.Timer
	stopped bool
	fire    func()
}

func newDebouncer(clock clockwork.Clock, window time.Duration, fire func()) *debouncer {
	return &debouncer{clock: clock, window: window, fire: fire}
}

// touch restarts the quiet window.
func (d *debouncer) touch() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.window, d.expire)
}

func (d *debouncer) expire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	// fire runs under the lock so stop can guarantee no callback follows it.
	if d.stopped || d.timer == nil {
		return
	}
	d.timer = nil
	d.fire()
}

// stop drops any pending callback. After stop returns, fire is never called.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
