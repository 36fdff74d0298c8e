package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/constants"
)

// Difficulty selects the simulation advance rate for a session
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Speed returns the difficulty's speed parameter
func (d Difficulty) Speed() int {
	switch d {
	case DifficultyEasy:
		return constants.SpeedEasy
	case DifficultyHard:
		return constants.SpeedHard
	default:
		return constants.SpeedMedium
	}
}

// Label returns the display name
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

func (d Difficulty) String() string {
	return strings.ToLower(d.Label())
}

// TicksPerStep returns how many driver frames pass between simulation steps
// floor(TicksBase / (speed / SpeedDivisor)), never below 1
func (d Difficulty) TicksPerStep() int {
	ticks := constants.TicksBase * constants.SpeedDivisor / d.Speed()
	if ticks < 1 {
		return 1
	}
	return ticks
}

// ScorePerFood returns the points awarded per food: base × speed / divisor
func (d Difficulty) ScorePerFood() int {
	return constants.ScoreBase * d.Speed() / constants.SpeedDivisor
}

// ParseDifficulty accepts easy, medium or hard in any case
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}
