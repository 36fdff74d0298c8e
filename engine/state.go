package engine

// State is the session lifecycle state
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Command is an externally issued state change request
type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandResume
	CommandRestart
	CommandMenu
	CommandSelectDifficulty
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandRestart:
		return "restart"
	case CommandMenu:
		return "menu"
	case CommandSelectDifficulty:
		return "select_difficulty"
	}
	return "unknown"
}

// transitions lists every legal command per state
// Playing -> GameOver is internal (collision or full board) and not reachable by command
var transitions = map[State]map[Command]State{
	StateMenu: {
		CommandStart:            StatePlaying,
		CommandMenu:             StateMenu,
		CommandSelectDifficulty: StateMenu,
	},
	StatePlaying: {
		CommandPause: StatePaused,
		CommandMenu:  StateMenu,
	},
	StatePaused: {
		CommandResume: StatePlaying,
		CommandMenu:   StateMenu,
	},
	StateGameOver: {
		CommandRestart: StatePlaying,
		CommandMenu:    StateMenu,
	},
}

// NextState returns the target state for cmd issued in from, and whether the command is legal
func NextState(from State, cmd Command) (State, bool) {
	next, ok := transitions[from][cmd]
	if !ok {
		return from, false
	}
	return next, true
}

// Outcome records why a session reached GameOver
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFilled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFilled:
		return "board_filled"
	}
	return "none"
}
