package utils

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid successive events into a single callback. Each
// Trigger cancels any pending callback and schedules the new one after the
// configured delay.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, replacing any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		if err := WaitFor(ctx, d.delay); err != nil {
			return
		}
		fn()
	}()
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
