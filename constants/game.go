package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the driver frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval and MaxFrameInterval bound the configurable frame interval
	MinFrameInterval = 1 * time.Millisecond
	MaxFrameInterval = 1000 * time.Millisecond
)

// Board Constants
const (
	// TileCount is the number of tiles per board side (400px canvas / 20px grid unit)
	TileCount = 20

	// InitialHeadX and InitialY place the starting snake, head first, growing leftward
	InitialHeadX  = 5
	InitialY      = 10
	InitialLength = 3
)

// Difficulty Speeds (steps per unit time, higher is faster)
const (
	SpeedEasy   = 5
	SpeedMedium = 8
	SpeedHard   = 12
)

// Scoring and Tick Scaling
const (
	// ScoreBase is the points per food before speed scaling
	ScoreBase = 10

	// SpeedDivisor normalizes a difficulty speed into a scaling factor (speed / SpeedDivisor)
	SpeedDivisor = 5

	// TicksBase is the frame count per step at scaling factor 1
	// ticks-per-step = floor(TicksBase / (speed / SpeedDivisor))
	TicksBase = 10
)

// Food Placement
const (
	// MaxFoodAttempts bounds rejection sampling before falling back to scanning free cells
	MaxFoodAttempts = 64
)
