package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is used when configuration does not override it
	DefaultMasterVolume = 0.5
)

// Food Sound Timing (short bell)
const (
	FoodSoundDuration = 180 * time.Millisecond
	FoodSoundAttack   = 5 * time.Millisecond
	FoodSoundRelease  = 150 * time.Millisecond
)

// Explosion Sound Timing (noise burst)
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 400 * time.Millisecond
)

// Success Sound Timing (two-note chime)
const (
	SuccessSoundAttack        = 5 * time.Millisecond
	SuccessSoundNote1Duration = 120 * time.Millisecond
	SuccessSoundNote1Release  = 60 * time.Millisecond
	SuccessSoundNote2Duration = 400 * time.Millisecond
	SuccessSoundNote2Release  = 350 * time.Millisecond
)
