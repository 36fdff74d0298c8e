package engine

import "github.com/lixenwraith/vi-snake/core"

// EventKind classifies visual events for the presentation layer
type EventKind int

const (
	EventFood EventKind = iota
	EventExplosion
	EventSuccess
)

func (k EventKind) String() string {
	switch k {
	case EventFood:
		return "food"
	case EventExplosion:
		return "explosion"
	case EventSuccess:
		return "success"
	}
	return "unknown"
}

// Event is a transient decorative event anchored at a board cell
type Event struct {
	Kind   EventKind
	Origin core.Cell
}
