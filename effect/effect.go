// Package effect schedules cosmetic feedback: screen shake, glitch and particles
// Nothing here is gameplay-authoritative; the engine stamps timers and frontends query them
package effect

import (
	"time"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Scheduler owns effect tuning and the particle randomness source
type Scheduler struct {
	cfg       config.EffectConfig
	frameTime time.Duration
	rng       vmath.Rand
}

func New(cfg config.Config, rng vmath.Rand) *Scheduler {
	return &Scheduler{
		cfg:       cfg.Effect,
		frameTime: cfg.Match.FrameTime,
		rng:       rng,
	}
}

// TriggerShake restarts the shake timer; intensity <= 0 uses the configured default
func (s *Scheduler) TriggerShake(m *core.Match, intensity float64, now time.Time) {
	if intensity <= 0 {
		intensity = s.cfg.ShakeIntensity
	}
	m.Shake = core.ScreenShake{
		Active:    true,
		Intensity: intensity,
		Duration:  s.cfg.ShakeDuration,
		Start:     now,
	}
}

// TriggerGlitch restarts the glitch timer
func (s *Scheduler) TriggerGlitch(m *core.Match, now time.Time) {
	m.Glitch = core.Glitch{
		Active:   true,
		Duration: s.cfg.GlitchDuration,
		Start:    now,
	}
}

// Update deactivates timers whose duration has elapsed
func (s *Scheduler) Update(m *core.Match, now time.Time) {
	if m.Shake.Active && now.Sub(m.Shake.Start) >= m.Shake.Duration {
		m.Shake.Active = false
	}
	if m.Glitch.Active && now.Sub(m.Glitch.Start) >= m.Glitch.Duration {
		m.Glitch.Active = false
	}
}

// progress returns elapsed/duration in [0, 1]
func progress(start time.Time, d time.Duration, now time.Time) float64 {
	if d <= 0 {
		return 1
	}
	return vmath.Clamp(float64(now.Sub(start))/float64(d), 0, 1)
}

// ShakeIntensity decays linearly from full to zero over the shake duration
func ShakeIntensity(sh core.ScreenShake, now time.Time) float64 {
	if !sh.Active {
		return 0
	}
	return sh.Intensity * (1 - progress(sh.Start, sh.Duration, now))
}

// ShakeOffset returns a fresh jitter per call, each axis in ±ShakeIntensity
func ShakeOffset(sh core.ScreenShake, now time.Time, rng vmath.Rand) vmath.Vec2 {
	i := ShakeIntensity(sh, now)
	if i == 0 {
		return vmath.Vec2{}
	}
	return vmath.V(vmath.Jitter(rng)*i, vmath.Jitter(rng)*i)
}

// GlitchIntensity decays linearly from 1 to 0 over the glitch duration
func GlitchIntensity(g core.Glitch, now time.Time) float64 {
	if !g.Active {
		return 0
	}
	return 1 - progress(g.Start, g.Duration, now)
}
