package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// View is the read-only snapshot the presentation layer consumes once per frame
type View struct {
	State           State
	Difficulty      Difficulty
	DifficultyLabel string
	TileCount       int

	Snake     []core.Cell // head first
	Direction core.Direction
	Food      core.Cell
	HasFood   bool

	Score        int
	HighScore    int
	FoodEaten    int
	Outcome      Outcome
	NewHighScore bool

	SessionID string
	Frame     int
	Elapsed   time.Duration
}

// View captures the current game state
func (g *Game) View() View {
	v := View{
		State:           g.state,
		Difficulty:      g.difficulty,
		DifficultyLabel: g.difficulty.Label(),
		TileCount:       g.tileCount,
		Snake:           g.Snake(),
		Direction:       g.input.Applied(),
		Food:            g.food,
		HasFood:         g.hasFood,
		Score:           g.score,
		FoodEaten:       g.foodEaten,
		Outcome:         g.outcome,
		NewHighScore:    g.newHigh,
		SessionID:       g.sessionID,
		Frame:           g.frame,
		Elapsed:         g.clock.Elapsed(),
	}
	if g.scores != nil {
		v.HighScore = g.scores.HighScore()
	}
	return v
}
