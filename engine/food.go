package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Rand is the randomness source used for food placement
type Rand interface {
	Intn(n int) int
}

// NewRand returns a time-seeded source; sessions are not reproducible
func NewRand() Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// PlaceFood picks a cell uniformly among cells not covered by the snake
// Returns false when the snake covers the whole board
func PlaceFood(snake []core.Cell, tileCount int, rng Rand) (core.Cell, bool) {
	occupied := make(map[core.Cell]struct{}, len(snake))
	for _, segment := range snake {
		occupied[segment] = struct{}{}
	}

	total := tileCount * tileCount
	if len(occupied) >= total {
		return core.Cell{}, false
	}

	// Rejection sampling over the full board
	for attempt := 0; attempt < constants.MaxFoodAttempts; attempt++ {
		c := core.Cell{X: rng.Intn(tileCount), Y: rng.Intn(tileCount)}
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}

	// Near saturation: choose directly among the remaining free cells
	free := make([]core.Cell, 0, total-len(occupied))
	for y := 0; y < tileCount; y++ {
		for x := 0; x < tileCount; x++ {
			c := core.Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	return free[rng.Intn(len(free))], true
}
