package config

import (
	"sync"
	"time"
)

const defaultDebounce = 200 * time.Millisecond

// debouncer coalesces bursts of file events into one reload. Only the most
// recently scheduled callback runs.
type debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(d time.Duration) *debouncer {
	if d <= 0 {
		d = defaultDebounce
	}
	return &debouncer{duration: d}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
