package input

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestBufferStartsWithInitialDirection(t *testing.T) {
	b := NewBuffer(core.Right)
	if b.Applied() != core.Right || b.Pending() != core.Right {
		t.Errorf("Expected applied=pending=right, got %v/%v", b.Applied(), b.Pending())
	}
	if got := b.Resolve(); got != core.Right {
		t.Errorf("Expected resolve without request to keep right, got %v", got)
	}
}

// TestBufferReversalGuard verifies an opposite request keeps the applied direction
func TestBufferReversalGuard(t *testing.T) {
	b := NewBuffer(core.Right)
	b.Request(core.Left)

	if got := b.Resolve(); got != core.Right {
		t.Fatalf("Expected reversal to be rejected, applied %v", got)
	}
	if b.Pending() != core.Right {
		t.Errorf("Expected stale reversal request to be discarded, pending %v", b.Pending())
	}
}

// TestBufferLastWriteWins verifies only the latest request before a step counts
func TestBufferLastWriteWins(t *testing.T) {
	b := NewBuffer(core.Right)
	b.Request(core.Up)
	b.Request(core.Down)
	b.Request(core.Up)

	if got := b.Resolve(); got != core.Up {
		t.Errorf("Expected last request up, got %v", got)
	}
}

// TestBufferReversalAfterTurn verifies the guard compares against the applied direction
func TestBufferReversalAfterTurn(t *testing.T) {
	b := NewBuffer(core.Right)
	b.Request(core.Up)
	b.Resolve()

	// Left is no longer a reversal once moving up
	b.Request(core.Left)
	if got := b.Resolve(); got != core.Left {
		t.Errorf("Expected left after up, got %v", got)
	}

	// Right is now the reversal
	b.Request(core.Right)
	if got := b.Resolve(); got != core.Left {
		t.Errorf("Expected right to be rejected while moving left, got %v", got)
	}
}

// TestBufferLatestRequestMayBeReversal verifies a reversal overrides an earlier legal request
func TestBufferLatestRequestMayBeReversal(t *testing.T) {
	b := NewBuffer(core.Right)
	b.Request(core.Up)
	b.Request(core.Left)

	if got := b.Resolve(); got != core.Right {
		t.Errorf("Expected latest (reversal) request to be discarded, applied %v", got)
	}
}

func TestBufferIgnoresZeroRequest(t *testing.T) {
	b := NewBuffer(core.Right)
	b.Request(core.Up)
	b.Request(core.Direction{})
	if b.Pending() != core.Up {
		t.Errorf("Expected zero request to be ignored, pending %v", b.Pending())
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(core.Up)
	b.Request(core.Left)
	b.Reset(core.Right)
	if b.Applied() != core.Right || b.Pending() != core.Right {
		t.Errorf("Expected reset to right, got %v/%v", b.Applied(), b.Pending())
	}
}
