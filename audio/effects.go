package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand // noise only
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack/release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFoodSound generates a short bell for eating food
func CreateFoodSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 plus octave overtone
	fund := NewEnvelope(NewOscillator(880.0, constants.FoodSoundDuration, WaveSine, rate),
		constants.FoodSoundDuration, constants.FoodSoundAttack, constants.FoodSoundRelease, rate)
	over := NewEnvelope(NewOscillator(1760.0, constants.FoodSoundDuration, WaveSine, rate),
		constants.FoodSoundDuration, constants.FoodSoundAttack, constants.FoodSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.effectVolume(SoundFood))
}

// CreateExplosionSound generates a decaying noise burst over a low rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, constants.ExplosionSoundDuration, WaveNoise, rate),
		constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewOscillator(70.0, constants.ExplosionSoundDuration, WaveSaw, rate),
		constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, cfg.effectVolume(SoundExplosion))
}

// CreateSuccessSound generates a rising two-note chime
func CreateSuccessSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6 then E6
	n1 := NewEnvelope(NewOscillator(1046.50, constants.SuccessSoundNote1Duration, WaveSquare, rate),
		constants.SuccessSoundNote1Duration, constants.SuccessSoundAttack, constants.SuccessSoundNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, constants.SuccessSoundNote2Duration, WaveSquare, rate),
		constants.SuccessSoundNote2Duration, constants.SuccessSoundAttack, constants.SuccessSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.effectVolume(SoundSuccess))
}

// GetSoundEffect returns a fresh streamer for the sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFood:
		return CreateFoodSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundSuccess:
		return CreateSuccessSound(cfg)
	default:
		return nil
	}
}
