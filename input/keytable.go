package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeySet selects which physical keys steer the snake
type KeySet uint8

const (
	KeySetArrows KeySet = iota
	KeySetLetters
)

// KeyTable maps keys to intents; lookups are fixed tables, no dispatch
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// arrowDirections and letterDirections are the two steering key sets
var arrowDirections = map[tcell.Key]Intent{
	tcell.KeyUp:    IntentUp,
	tcell.KeyDown:  IntentDown,
	tcell.KeyLeft:  IntentLeft,
	tcell.KeyRight: IntentRight,
}

var letterDirections = map[rune]Intent{
	'w': IntentUp,
	's': IntentDown,
	'a': IntentLeft,
	'd': IntentRight,
}

// NewKeyTable builds control bindings plus the requested steering key sets
func NewKeyTable(sets ...KeySet) *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEnter:  IntentStart,
			tcell.KeyEscape: IntentMenu,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]Intent{
			' ': IntentTogglePause,
			'p': IntentTogglePause,
			'm': IntentMenu,
			'1': IntentEasy,
			'2': IntentMedium,
			'3': IntentHard,
			'x': IntentToggleSound,
			'q': IntentQuit,
		},
	}

	for _, set := range sets {
		switch set {
		case KeySetArrows:
			for k, v := range arrowDirections {
				kt.SpecialKeys[k] = v
			}
		case KeySetLetters:
			for r, v := range letterDirections {
				kt.Runes[r] = v
			}
		}
	}

	return kt
}

// DefaultKeyTable returns bindings with both arrow keys and WASD steering
func DefaultKeyTable() *KeyTable {
	return NewKeyTable(KeySetArrows, KeySetLetters)
}

// Lookup resolves a key event to an intent, IntentNone when unbound
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if intent, ok := kt.Runes[unicode.ToLower(r)]; ok {
			return intent
		}
		return IntentNone
	}
	if intent, ok := kt.SpecialKeys[key]; ok {
		return intent
	}
	return IntentNone
}
