package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/engine"
)

// newTestManager returns a manager whose speaker hooks never touch a device
func newTestManager(cfg *AudioConfig) (*SoundManager, *bool) {
	sm := NewSoundManager(cfg)
	started := false
	sm.initSpeaker = func(beep.SampleRate, int) error { return nil }
	sm.startSpeaker = func(beep.Streamer) { started = true }
	sm.lockSpeaker = func() {}
	sm.unlockSpeaker = func() {}
	return sm, &started
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundFood)
	sm.Play(SoundExplosion)
	sm.Play(SoundSuccess)
	sm.Cleanup()

	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

func TestSoundManagerPlay(t *testing.T) {
	sm, started := newTestManager(DefaultAudioConfig())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !*started {
		t.Error("Expected mixer to be handed to the speaker")
	}

	sm.Play(SoundFood)
	sm.Play(SoundSuccess)
	if sm.Active() != 2 {
		t.Errorf("Expected 2 active effects, got %d", sm.Active())
	}

	sm.Cleanup()
	if sm.Active() != 0 || sm.IsInitialized() {
		t.Error("Expected cleanup to clear the mixer")
	}
}

func TestSoundManagerDoubleInitialization(t *testing.T) {
	sm, _ := newTestManager(DefaultAudioConfig())
	calls := 0
	sm.initSpeaker = func(beep.SampleRate, int) error {
		calls++
		return nil
	}

	sm.Initialize()
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected one speaker init, got %d", calls)
	}
}

func TestSoundManagerInitFailure(t *testing.T) {
	sm, _ := newTestManager(DefaultAudioConfig())
	sm.initSpeaker = func(beep.SampleRate, int) error { return errors.New("no device") }

	if err := sm.Initialize(); err == nil {
		t.Fatal("Expected init error")
	}
	sm.Play(SoundFood)
	if sm.Active() != 0 {
		t.Error("Expected no playback after failed init")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	sm, _ := newTestManager(NewAudioConfig(false, 0.5))

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if !sm.IsMuted() {
		t.Error("Expected disabled audio to start muted")
	}
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm, _ := newTestManager(DefaultAudioConfig())
	sm.Initialize()
	sm.Play(SoundExplosion)

	if !sm.ToggleMute() {
		t.Fatal("Expected muted after first toggle")
	}
	if sm.Active() != 0 {
		t.Error("Expected mute to cut playing effects")
	}
	sm.Play(SoundFood)
	if sm.Active() != 0 {
		t.Error("Expected no playback while muted")
	}

	if sm.ToggleMute() {
		t.Fatal("Expected unmuted after second toggle")
	}
	sm.Play(SoundFood)
	if sm.Active() != 1 {
		t.Errorf("Expected playback after unmute, got %d", sm.Active())
	}
}

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		kind engine.EventKind
		want SoundType
	}{
		{engine.EventFood, SoundFood},
		{engine.EventExplosion, SoundExplosion},
		{engine.EventSuccess, SoundSuccess},
	}
	for _, tt := range tests {
		got, ok := SoundForEvent(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("SoundForEvent(%v) = %v/%v, want %v", tt.kind, got, ok, tt.want)
		}
	}
	if _, ok := SoundForEvent(engine.EventKind(99)); ok {
		t.Error("Expected unknown event kind to have no sound")
	}
}
