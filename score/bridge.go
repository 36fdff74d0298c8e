package score

import "log"

// Bridge connects a Store to the engine's game-over hook
// The stored value is read once; later comparisons use the cached copy
type Bridge struct {
	store Store
	high  int
}

// NewBridge loads the current high score; load failures degrade to 0
func NewBridge(store Store) *Bridge {
	high, err := store.Load()
	if err != nil {
		log.Printf("high score load failed, starting from 0: %v", err)
		high = 0
	}
	return &Bridge{store: store, high: high}
}

// HighScore returns the best score seen so far
func (b *Bridge) HighScore() int {
	return b.high
}

// Submit records final if it strictly beats the high score
// A failed save is logged; the in-memory value still updates
func (b *Bridge) Submit(final int) bool {
	if final <= b.high {
		return false
	}
	b.high = final
	if err := b.store.Save(final); err != nil {
		log.Printf("high score save failed: %v", err)
	}
	return true
}
