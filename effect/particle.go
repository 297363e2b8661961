package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/parameter"
	"github.com/lixenwraith/neon-pong/vmath"
)

// BounceBurst sprays sparks from a wall contact back into the field
func (s *Scheduler) BounceBurst(m *core.Match, pos vmath.Vec2, top bool) {
	spread := math.Pi / 3
	sy := 1.0
	if !top {
		sy = -1
	}
	for i := 0; i < parameter.BounceParticleCount; i++ {
		angle := math.Pi/2 + (s.rng.Float64()-0.5)*spread
		speed := 2 + s.rng.Float64()*3
		sx := 1.0
		if s.rng.Float64() <= 0.5 {
			sx = -1
		}
		s.emit(m, core.Particle{
			Pos:  pos,
			Vel:  vmath.V(math.Cos(angle)*speed*sx, math.Sin(angle)*speed*sy),
			Tint: core.TintCyan,
			Size: s.cfg.ParticleBaseSize + s.rng.Float64()*4,
		})
	}
}

// PaddleBurst fans sparks out from a paddle face toward the field
func (s *Scheduler) PaddleBurst(m *core.Match, pos vmath.Vec2, side core.Side) {
	tint := core.TintCyan
	if side == core.SideRight {
		tint = core.TintRed
	}
	dir := side.Dir()
	for i := 0; i < parameter.PaddleParticleCount; i++ {
		angle := (s.rng.Float64() - 0.5) * math.Pi / 2
		speed := 3 + s.rng.Float64()*4
		s.emit(m, core.Particle{
			Pos:  pos,
			Vel:  vmath.V(math.Cos(angle)*speed*dir, math.Sin(angle)*speed),
			Tint: tint,
			Size: s.cfg.ParticleBaseSize + s.rng.Float64()*3,
		})
	}
}

// CollectBurst emits an evenly spaced ring of sparks
func (s *Scheduler) CollectBurst(m *core.Match, pos vmath.Vec2, tint core.Tint) {
	n := parameter.CollectParticleCount
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		speed := 3 + s.rng.Float64()*3
		s.emit(m, core.Particle{
			Pos:  pos,
			Vel:  vmath.FromAngle(angle, speed),
			Tint: tint,
			Size: 6 + s.rng.Float64()*4,
		})
	}
}

// emit appends a fresh particle, dropping the oldest when at capacity
func (s *Scheduler) emit(m *core.Match, p core.Particle) {
	if s.cfg.MaxParticles <= 0 {
		return
	}
	p.Life = 1
	p.MaxLife = s.cfg.ParticleMaxLife
	if len(m.Particles) >= s.cfg.MaxParticles {
		over := len(m.Particles) - s.cfg.MaxParticles + 1
		m.Particles = append(m.Particles[:0], m.Particles[over:]...)
	}
	m.Particles = append(m.Particles, p)
}

// StepParticles moves, drags and ages particles, compacting out the dead ones in place
func (s *Scheduler) StepParticles(m *core.Match, dt time.Duration) {
	factor := float64(dt) / float64(s.frameTime)
	seconds := dt.Seconds()

	live := m.Particles[:0]
	for _, p := range m.Particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(factor))
		p.Vel = p.Vel.Scale(s.cfg.ParticleDrag)
		if p.MaxLife > 0 {
			p.Life -= seconds / p.MaxLife
		} else {
			p.Life = 0
		}
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(m.Particles[len(live):])
	m.Particles = live
}
