package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// ScoreKeeper owns the persisted high score
type ScoreKeeper interface {
	HighScore() int
	// Submit offers a final session score and reports whether it became the new high score
	Submit(final int) bool
}

// Config holds the collaborators injected into a Game
type Config struct {
	Difficulty   Difficulty
	Rand         Rand         // nil: time-seeded source
	Scores       ScoreKeeper  // nil: high score is not tracked
	TimeProvider TimeProvider // nil: monotonic system time
}

// Game is the snake simulation
// It holds only game data; terminal, audio and storage handles live in adapters
type Game struct {
	tileCount  int
	difficulty Difficulty
	state      State

	// Session entities
	snake     []core.Cell // head at index 0
	food      core.Cell
	hasFood   bool
	score     int
	foodEaten int
	outcome   Outcome
	newHigh   bool
	sessionID string

	// Step gating
	frame int
	input *input.Buffer

	// Transient visual events, drained once per rendered frame
	events []Event

	rng    Rand
	scores ScoreKeeper
	clock  *SessionClock
}

// NewGame creates a game in the Menu state
func NewGame(cfg Config) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}

	return &Game{
		tileCount:  constants.TileCount,
		difficulty: cfg.Difficulty,
		state:      StateMenu,
		input:      input.NewBuffer(core.Right),
		rng:        rng,
		scores:     cfg.Scores,
		clock:      NewSessionClock(tp),
	}
}

// ===== COMMANDS =====
// Each returns false and changes nothing when illegal in the current state

// Start begins a new session from the menu
func (g *Game) Start() bool {
	if !g.transition(CommandStart) {
		return false
	}
	g.reset()
	return true
}

// Restart begins a new session after game over
func (g *Game) Restart() bool {
	if !g.transition(CommandRestart) {
		return false
	}
	g.reset()
	return true
}

// Pause suspends stepping without touching session entities
func (g *Game) Pause() bool {
	if !g.transition(CommandPause) {
		return false
	}
	g.clock.Pause()
	return true
}

// Resume continues a paused session
func (g *Game) Resume() bool {
	if !g.transition(CommandResume) {
		return false
	}
	g.clock.Resume()
	return true
}

// TogglePause pauses while playing and resumes while paused
func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePlaying:
		return g.Pause()
	case StatePaused:
		return g.Resume()
	}
	return false
}

// Menu abandons the current session and returns to the menu
func (g *Game) Menu() bool {
	prev := g.state
	if !g.transition(CommandMenu) {
		return false
	}
	if prev == StatePlaying || prev == StatePaused {
		log.Printf("session %s abandoned: score=%d length=%d", g.sessionID, g.score, len(g.snake))
	}
	g.clock.Stop()
	return true
}

// SelectDifficulty changes difficulty; only legal in the menu
func (g *Game) SelectDifficulty(d Difficulty) bool {
	if !g.transition(CommandSelectDifficulty) {
		return false
	}
	g.difficulty = d
	return true
}

// Apply dispatches a command that takes no argument
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case CommandStart:
		return g.Start()
	case CommandPause:
		return g.Pause()
	case CommandResume:
		return g.Resume()
	case CommandRestart:
		return g.Restart()
	case CommandMenu:
		return g.Menu()
	case CommandSelectDifficulty:
		return g.SelectDifficulty(g.difficulty)
	}
	return false
}

// RequestDirection records a steering request, honored at the next step
func (g *Game) RequestDirection(d core.Direction) {
	g.input.Request(d)
}

func (g *Game) transition(cmd Command) bool {
	next, ok := NextState(g.state, cmd)
	if !ok {
		return false
	}
	g.state = next
	return true
}

// reset restores initial session values
func (g *Game) reset() {
	g.snake = g.snake[:0]
	for i := 0; i < constants.InitialLength; i++ {
		g.snake = append(g.snake, core.Cell{X: constants.InitialHeadX - i, Y: constants.InitialY})
	}
	g.score = 0
	g.foodEaten = 0
	g.frame = 0
	g.outcome = OutcomeNone
	g.newHigh = false
	g.events = g.events[:0]
	g.input.Reset(core.Right)
	g.sessionID = uuid.NewString()
	g.food, g.hasFood = PlaceFood(g.snake, g.tileCount, g.rng)
	g.clock.Start()

	log.Printf("session %s started: difficulty=%s", g.sessionID, g.difficulty)
}

// ===== SIMULATION =====

// Tick advances the driver frame counter and steps when the difficulty divisor is reached
// Returns true when a step ran
func (g *Game) Tick() bool {
	if g.state != StatePlaying {
		return false
	}
	g.frame++
	if g.frame%g.difficulty.TicksPerStep() != 0 {
		return false
	}
	g.Step()
	return true
}

// Step advances the snake by one cell
func (g *Game) Step() {
	if g.state != StatePlaying {
		return
	}

	dir := g.input.Resolve()
	head := g.snake[0]
	newHead := head.Add(dir)

	if WallCollision(newHead, g.tileCount) {
		g.end(OutcomeWall)
		return
	}
	if SelfCollision(newHead, g.snake) {
		g.end(OutcomeSelf)
		return
	}

	g.snake = append(g.snake, core.Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	if g.hasFood && AteFood(newHead, g.food) {
		g.score += g.difficulty.ScorePerFood()
		g.foodEaten++
		g.emit(EventFood, g.food)

		g.food, g.hasFood = PlaceFood(g.snake, g.tileCount, g.rng)
		if !g.hasFood {
			g.end(OutcomeBoardFilled)
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// end moves the session to GameOver and settles the high score
func (g *Game) end(outcome Outcome) {
	g.state = StateGameOver
	g.outcome = outcome
	g.clock.Stop()

	if outcome == OutcomeBoardFilled {
		g.emit(EventSuccess, g.snake[0])
	} else {
		g.emit(EventExplosion, g.snake[0])
	}

	if g.scores != nil && g.scores.Submit(g.score) {
		g.newHigh = true
		g.emit(EventSuccess, core.Cell{X: g.tileCount / 2, Y: g.tileCount / 2})
		log.Printf("session %s set new high score %d", g.sessionID, g.score)
	}

	log.Printf("session %s ended: outcome=%s score=%d length=%d food=%d elapsed=%s",
		g.sessionID, outcome, g.score, len(g.snake), g.foodEaten, g.clock.Elapsed())
}

func (g *Game) emit(kind EventKind, origin core.Cell) {
	g.events = append(g.events, Event{Kind: kind, Origin: origin})
}

// DrainEvents returns pending visual events and clears the list
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// ===== ACCESSORS =====

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

// Difficulty returns the selected difficulty
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Score returns the current session score
func (g *Game) Score() int {
	return g.score
}

// Snake returns a copy of the snake cells, head first
func (g *Game) Snake() []core.Cell {
	out := make([]core.Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food cell and whether one is placed
func (g *Game) Food() (core.Cell, bool) {
	return g.food, g.hasFood
}

// Outcome returns why the last session ended
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// SessionID returns the identifier of the current or last session
func (g *Game) SessionID() string {
	return g.sessionID
}
