package main

import (
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// soundPlayer is the audio surface used per frame
type soundPlayer interface {
	Play(audio.SoundType)
	IsMuted() bool
}

// frameLoop advances the simulation and presentation once per driver frame
type frameLoop struct {
	game      *engine.Game
	particles *render.ParticleSystem
	sound     soundPlayer
	renderer  *render.TerminalRenderer
}

// frame runs one tick: simulate, turn events into particles and sounds, draw
func (f *frameLoop) frame() bool {
	f.game.Tick()

	for _, ev := range f.game.DrainEvents() {
		f.particles.Spawn(ev.Kind, ev.Origin)
		if s, ok := audio.SoundForEvent(ev.Kind); ok {
			f.sound.Play(s)
		}
	}

	f.particles.Update()
	f.renderer.SetMuted(f.sound.IsMuted())
	f.renderer.Render(f.game.View(), f.particles.Particles())
	return true
}
