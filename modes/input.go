package modes

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
)

// SoundToggler is the audio control the handler needs
type SoundToggler interface {
	ToggleMute() bool
}

// InputHandler translates terminal events into game commands
type InputHandler struct {
	game   *engine.Game
	keys   *input.KeyTable
	screen tcell.Screen
	sound  SoundToggler
}

// NewInputHandler creates a handler; keys nil uses the default table, sound may be nil
func NewInputHandler(game *engine.Game, screen tcell.Screen, keys *input.KeyTable, sound SoundToggler) *InputHandler {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &InputHandler{
		game:   game,
		keys:   keys,
		screen: screen,
		sound:  sound,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
		return true
	}
	return true
}

// HandleKey dispatches one key press; returns false on quit
func (h *InputHandler) HandleKey(key tcell.Key, r rune) bool {
	intent := h.keys.Lookup(key, r)

	// Steering is buffered in every state; Start resets it
	if dir, ok := intent.Direction(); ok {
		h.game.RequestDirection(dir)
		return true
	}

	switch intent {
	case input.IntentQuit:
		return false

	case input.IntentStart:
		if h.game.State() == engine.StateGameOver {
			h.game.Restart()
		} else {
			h.game.Start()
		}

	case input.IntentTogglePause:
		h.game.TogglePause()

	case input.IntentMenu:
		h.game.Menu()

	case input.IntentEasy:
		h.game.SelectDifficulty(engine.DifficultyEasy)
	case input.IntentMedium:
		h.game.SelectDifficulty(engine.DifficultyMedium)
	case input.IntentHard:
		h.game.SelectDifficulty(engine.DifficultyHard)

	case input.IntentToggleSound:
		if h.sound != nil {
			muted := h.sound.ToggleMute()
			log.Printf("sound muted=%v", muted)
		}
	}

	return true
}
