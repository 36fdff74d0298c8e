package audio

import (
	"errors"

	"github.com/lixenwraith/vi-snake/engine"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundFood      SoundType = iota // Food eaten
	SoundExplosion                  // Collision
	SoundSuccess                    // New high score or full board
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFood:
		return "food"
	case SoundExplosion:
		return "explosion"
	case SoundSuccess:
		return "success"
	}
	return "unknown"
}

// SoundForEvent maps a visual event to its audio cue
func SoundForEvent(kind engine.EventKind) (SoundType, bool) {
	switch kind {
	case engine.EventFood:
		return SoundFood, true
	case engine.EventExplosion:
		return SoundExplosion, true
	case engine.EventSuccess:
		return SoundSuccess, true
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
