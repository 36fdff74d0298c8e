package input

import "github.com/lixenwraith/vi-snake/core"

// Buffer arbitrates direction changes between steps
// Requests are last-write-wins: only the most recent request before a step is honored
type Buffer struct {
	applied core.Direction
	pending core.Direction
}

// NewBuffer creates a buffer moving in the given direction
func NewBuffer(initial core.Direction) *Buffer {
	return &Buffer{applied: initial, pending: initial}
}

// Request records the latest desired direction, replacing any earlier request
func (b *Buffer) Request(d core.Direction) {
	if d.IsZero() {
		return
	}
	b.pending = d
}

// Resolve promotes the pending request to the applied direction and returns it
// A request exactly opposite the applied direction is discarded
func (b *Buffer) Resolve() core.Direction {
	if b.pending.Opposite(b.applied) {
		b.pending = b.applied
		return b.applied
	}
	b.applied = b.pending
	return b.applied
}

// Applied returns the direction the snake is currently moving in
func (b *Buffer) Applied() core.Direction {
	return b.applied
}

// Pending returns the most recent request
func (b *Buffer) Pending() core.Direction {
	return b.pending
}

// Reset sets both applied and pending to d
func (b *Buffer) Reset(d core.Direction) {
	b.applied = d
	b.pending = d
}
