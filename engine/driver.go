package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Driver runs the frame loop on a single goroutine
// Input events are handled between frames, so a frame never overlaps another frame or an event
type Driver[E any] struct {
	interval time.Duration
	events   <-chan E

	// newTicker is replaceable in tests
	newTicker func(time.Duration) (<-chan time.Time, func())

	frames atomic.Int64
}

// NewDriver creates a driver firing frames every interval and consuming events
func NewDriver[E any](interval time.Duration, events <-chan E) *Driver[E] {
	return &Driver[E]{
		interval: interval,
		events:   events,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Frames returns the number of frames dispatched so far
func (d *Driver[E]) Frames() int64 {
	return d.frames.Load()
}

// Run blocks until ctx is cancelled, the event channel closes, or a handler returns false
// Returns ctx.Err() on cancellation and nil otherwise
func (d *Driver[E]) Run(ctx context.Context, onEvent func(E) bool, onFrame func() bool) error {
	ticks, stop := d.newTicker(d.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-d.events:
			if !ok {
				return nil
			}
			if !onEvent(ev) {
				return nil
			}

		case <-ticks:
			d.frames.Add(1)
			if !onFrame() {
				return nil
			}
		}
	}
}
