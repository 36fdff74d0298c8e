package input

import "github.com/lixenwraith/vi-snake/core"

// Intent is the semantic action a key maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// Directional intents
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Session control
	IntentStart       // Enter: start from menu, restart after game over
	IntentTogglePause // Space, p
	IntentMenu        // Esc, m

	// Difficulty selection (menu only)
	IntentEasy
	IntentMedium
	IntentHard

	// System
	IntentToggleSound // x
	IntentQuit        // q, Ctrl+C, Ctrl+Q
)

var intentNames = map[Intent]string{
	IntentNone:        "none",
	IntentUp:          "up",
	IntentDown:        "down",
	IntentLeft:        "left",
	IntentRight:       "right",
	IntentStart:       "start",
	IntentTogglePause: "toggle_pause",
	IntentMenu:        "menu",
	IntentEasy:        "easy",
	IntentMedium:      "medium",
	IntentHard:        "hard",
	IntentToggleSound: "toggle_sound",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the grid direction for a directional intent
func (i Intent) Direction() (core.Direction, bool) {
	switch i {
	case IntentUp:
		return core.Up, true
	case IntentDown:
		return core.Down, true
	case IntentLeft:
		return core.Left, true
	case IntentRight:
		return core.Right, true
	}
	return core.Direction{}, false
}
