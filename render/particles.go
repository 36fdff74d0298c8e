package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Particle is a decorative point in board coordinates (cells, fractional)
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   tcell.Color
	Life    int
	MaxLife int
}

// Alpha returns remaining life as a fraction
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// ParticleRand is the randomness the particle system needs
type ParticleRand interface {
	Float64() float64
	Intn(n int) int
}

// ParticleSystem owns transient particles; it never feeds back into the simulation
type ParticleSystem struct {
	particles []Particle
	rng       ParticleRand
}

// NewParticleSystem creates an empty system; nil rng uses a time-seeded source
func NewParticleSystem(rng ParticleRand) *ParticleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &ParticleSystem{rng: rng}
}

type burst struct {
	count    int
	life     int
	speedMin float64
	spread   float64
	colors   []tcell.Color
}

func burstFor(kind engine.EventKind) (burst, bool) {
	switch kind {
	case engine.EventFood:
		return burst{constants.ParticleCountFood, constants.ParticleLifeFood,
			constants.ParticleSpeedMin, constants.ParticleSpeedSpread,
			[]tcell.Color{RgbMagenta}}, true
	case engine.EventExplosion:
		return burst{constants.ParticleCountExplosion, constants.ParticleLifeExplosion,
			constants.ParticleExplosionSpeedMin, constants.ParticleExplosionSpread,
			[]tcell.Color{RgbFood, RgbMagenta}}, true
	case engine.EventSuccess:
		return burst{constants.ParticleCountSuccess, constants.ParticleLifeSuccess,
			constants.ParticleSpeedMin, constants.ParticleSpeedSpread,
			[]tcell.Color{RgbSnakeBody, RgbSnakeHead}}, true
	}
	return burst{}, false
}

// Spawn emits a ring of particles from the centre of origin
func (ps *ParticleSystem) Spawn(kind engine.EventKind, origin core.Cell) {
	b, ok := burstFor(kind)
	if !ok {
		return
	}

	cx := float64(origin.X) + 0.5
	cy := float64(origin.Y) + 0.5
	for i := 0; i < b.count; i++ {
		if len(ps.particles) >= constants.MaxParticles {
			return
		}
		angle := 2 * math.Pi * float64(i) / float64(b.count)
		speed := b.speedMin + ps.rng.Float64()*b.spread
		ps.particles = append(ps.particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Color:   b.colors[ps.rng.Intn(len(b.colors))],
			Life:    b.life,
			MaxLife: b.life,
		})
	}
}

// Update advances every particle one frame and drops expired ones
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += constants.ParticleGravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Particles returns the live particles; the slice is reused by the next Update
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops all particles
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
