package parameter

import "time"

// Screen Shake
const (
	ShakeIntensity = 8
	// ShakeWallIntensity is used for wall bounces
	ShakeWallIntensity = 6
	ShakeDuration      = 150 * time.Millisecond
)

// Glitch
const (
	GlitchDuration = 300 * time.Millisecond
)

// Particles
const (
	// ParticleMaxLife is particle lifetime in seconds
	ParticleMaxLife  = 0.5
	ParticleBaseSize = 4

	// ParticleDrag is the per-tick velocity retention
	ParticleDrag = 0.98

	// ParticleMaxCount caps live particles
	ParticleMaxCount = 512

	BounceParticleCount  = 8
	PaddleParticleCount  = 10
	CollectParticleCount = 12
)
