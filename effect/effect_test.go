package effect

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/parameter"
	"github.com/lixenwraith/neon-pong/vmath"
)

var t0 = time.Unix(1000, 0)

func newScheduler(values ...float64) *Scheduler {
	return New(config.Default(), vmath.NewSeqRand(values...))
}

func TestShakeLifecycle(t *testing.T) {
	s := newScheduler()
	m := &core.Match{}

	s.TriggerShake(m, 6, t0)
	if !m.Shake.Active || m.Shake.Intensity != 6 || m.Shake.Duration != parameter.ShakeDuration {
		t.Fatalf("shake not stamped: %+v", m.Shake)
	}

	s.Update(m, t0.Add(149*time.Millisecond))
	if !m.Shake.Active {
		t.Fatal("shake ended early")
	}
	s.Update(m, t0.Add(150*time.Millisecond))
	if m.Shake.Active {
		t.Fatal("shake still active at elapsed == duration")
	}
}

func TestTriggerShakeDefaultIntensity(t *testing.T) {
	s := newScheduler()
	m := &core.Match{}
	s.TriggerShake(m, 0, t0)
	if m.Shake.Intensity != parameter.ShakeIntensity {
		t.Errorf("intensity = %v, want default %v", m.Shake.Intensity, parameter.ShakeIntensity)
	}
}

func TestGlitchLifecycle(t *testing.T) {
	s := newScheduler()
	m := &core.Match{}

	s.TriggerGlitch(m, t0)
	if got := GlitchIntensity(m.Glitch, t0); got != 1 {
		t.Errorf("fresh glitch intensity = %v", got)
	}
	if got := GlitchIntensity(m.Glitch, t0.Add(150*time.Millisecond)); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("half-way glitch intensity = %v", got)
	}

	s.Update(m, t0.Add(parameter.GlitchDuration))
	if m.Glitch.Active {
		t.Error("glitch still active after duration")
	}
	if got := GlitchIntensity(m.Glitch, t0.Add(parameter.GlitchDuration)); got != 0 {
		t.Errorf("inactive glitch intensity = %v", got)
	}
}

func TestShakeIntensityDecay(t *testing.T) {
	sh := core.ScreenShake{Active: true, Intensity: 8, Duration: 100 * time.Millisecond, Start: t0}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 8},
		{25 * time.Millisecond, 6},
		{50 * time.Millisecond, 4},
		{100 * time.Millisecond, 0},
		{200 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		if got := ShakeIntensity(sh, t0.Add(tt.at)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("at %v: intensity = %v, want %v", tt.at, got, tt.want)
		}
	}

	sh.Active = false
	if got := ShakeIntensity(sh, t0); got != 0 {
		t.Errorf("inactive shake intensity = %v", got)
	}
}

func TestShakeOffsetFreshPerQuery(t *testing.T) {
	sh := core.ScreenShake{Active: true, Intensity: 8, Duration: 100 * time.Millisecond, Start: t0}
	rng := vmath.NewSeqRand(0, 1, 0.25, 0.75)

	a := ShakeOffset(sh, t0, rng)
	b := ShakeOffset(sh, t0, rng)

	if a != vmath.V(-8, 8) {
		t.Errorf("first offset = %v", a)
	}
	if b != vmath.V(-4, 4) {
		t.Errorf("second offset = %v", b)
	}

	sh.Active = false
	if off := ShakeOffset(sh, t0, rng); off != (vmath.Vec2{}) {
		t.Errorf("inactive shake offset = %v", off)
	}
}

func TestBursts(t *testing.T) {
	s := newScheduler(0.3, 0.7, 0.1, 0.9)
	m := &core.Match{}

	s.BounceBurst(m, vmath.V(100, 0), true)
	if len(m.Particles) != parameter.BounceParticleCount {
		t.Fatalf("bounce emitted %d", len(m.Particles))
	}
	for _, p := range m.Particles {
		if p.Vel.Y <= 0 {
			t.Errorf("top wall spark should move down into the field, vel %v", p.Vel)
		}
		if p.Life != 1 || p.MaxLife != parameter.ParticleMaxLife {
			t.Errorf("particle life not initialized: %+v", p)
		}
	}

	m.Particles = nil
	s.PaddleBurst(m, vmath.V(755, 300), core.SideRight)
	if len(m.Particles) != parameter.PaddleParticleCount {
		t.Fatalf("paddle emitted %d", len(m.Particles))
	}
	for _, p := range m.Particles {
		if p.Vel.X >= 0 || p.Tint != core.TintRed {
			t.Errorf("right paddle spark should move left in red: %+v", p)
		}
	}

	m.Particles = nil
	s.CollectBurst(m, vmath.V(400, 300), core.TintGreen)
	if len(m.Particles) != parameter.CollectParticleCount {
		t.Fatalf("collect emitted %d", len(m.Particles))
	}
	if m.Particles[0].Vel.X <= 0 || math.Abs(m.Particles[0].Vel.Y) > 1e-9 {
		t.Errorf("first ring spark should point along +X: %v", m.Particles[0].Vel)
	}
}

func TestEmitCap(t *testing.T) {
	cfg := config.Default()
	cfg.Effect.MaxParticles = 10
	s := New(cfg, vmath.NewSeqRand())
	m := &core.Match{}

	s.CollectBurst(m, vmath.V(0, 0), core.TintGreen)

	if len(m.Particles) != 10 {
		t.Fatalf("len = %d, want capped 10", len(m.Particles))
	}
	// oldest two dropped, newest kept
	want := vmath.FromAngle(float64(11)/12*2*math.Pi, 4.5)
	if got := m.Particles[9].Vel; math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("newest particle vel = %v, want %v", got, want)
	}
}

func TestStepParticles(t *testing.T) {
	s := newScheduler()
	m := &core.Match{Particles: []core.Particle{
		{Pos: vmath.V(0, 0), Vel: vmath.V(10, 0), Life: 1, MaxLife: 0.5},
		{Pos: vmath.V(0, 0), Vel: vmath.V(0, 0), Life: 0.01, MaxLife: 0.5},
	}}

	s.StepParticles(m, parameter.FrameTime)

	if len(m.Particles) != 1 {
		t.Fatalf("dead particle not removed, len = %d", len(m.Particles))
	}
	p := m.Particles[0]
	if math.Abs(p.Pos.X-10) > 1e-9 {
		t.Errorf("pos = %v, want x 10", p.Pos)
	}
	if math.Abs(p.Vel.X-9.8) > 1e-9 {
		t.Errorf("vel = %v, want drag to 9.8", p.Vel)
	}
	wantLife := 1 - parameter.FrameTime.Seconds()/0.5
	if math.Abs(p.Life-wantLife) > 1e-9 {
		t.Errorf("life = %v, want %v", p.Life, wantLife)
	}
}
