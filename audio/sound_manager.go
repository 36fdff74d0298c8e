package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays one-shot effects through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Speaker hooks, replaced in tests
	initSpeaker   func(beep.SampleRate, int) error
	startSpeaker  func(beep.Streamer)
	lockSpeaker   func()
	unlockSpeaker func()
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:           cfg,
		mixer:         &beep.Mixer{},
		muted:         !cfg.Enabled,
		initSpeaker:   speaker.Init,
		startSpeaker:  func(s beep.Streamer) { speaker.Play(s) },
		lockSpeaker:   speaker.Lock,
		unlockSpeaker: speaker.Unlock,
	}
}

// Initialize opens the audio device; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.initSpeaker(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.startSpeaker(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a sound effect; no-op when uninitialized or muted
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}

	sm.lockSpeaker()
	sm.mixer.Add(streamer)
	sm.unlockSpeaker()
}

// ToggleMute flips mute and returns the new muted state
// Muting also cuts sounds already playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		sm.lockSpeaker()
		sm.mixer.Clear()
		sm.unlockSpeaker()
	}
	return sm.muted
}

// IsMuted reports whether effects are suppressed
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the audio device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Active returns the number of effects currently in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lockSpeaker()
	defer sm.unlockSpeaker()
	return sm.mixer.Len()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lockSpeaker()
	sm.mixer.Clear()
	sm.unlockSpeaker()

	// beep has no speaker close; an empty mixer plays silence
	sm.initialized = false
}
