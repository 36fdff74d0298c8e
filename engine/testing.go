package engine

import "time"

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ScriptedRand replays a fixed sequence of values, cycling when exhausted
// Used by tests to place food deterministically
type ScriptedRand struct {
	Values []int
	pos    int
}

// Intn returns the next scripted value reduced modulo n
func (r *ScriptedRand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// NewTestGame creates a medium-difficulty game with scripted food placement and a mock clock
func NewTestGame(scores ScoreKeeper, placement ...int) *Game {
	return NewGame(Config{
		Difficulty:   DifficultyMedium,
		Rand:         &ScriptedRand{Values: placement},
		Scores:       scores,
		TimeProvider: NewMockTimeProvider(testEpoch),
	})
}
