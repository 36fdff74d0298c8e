package constants

// Particle counts per visual event
const (
	ParticleCountFood      = 5
	ParticleCountExplosion = 20
	ParticleCountSuccess   = 30
)

// Particle lifetimes in frames
const (
	ParticleLifeFood      = 40
	ParticleLifeExplosion = 60
	ParticleLifeSuccess   = 80
)

// Particle motion, in board cells per frame
const (
	ParticleSpeedMin          = 0.05
	ParticleSpeedSpread       = 0.10
	ParticleExplosionSpeedMin = 0.10
	ParticleExplosionSpread   = 0.15
	ParticleGravity           = 0.005

	// MaxParticles caps live particles regardless of event rate
	MaxParticles = 512
)
