package physics

import (
	"time"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Profile collects the field geometry and motion rules used by every physics call
// Built once from config; zero value is not usable
type Profile struct {
	Width, Height float64

	// FrameTime is the reference step that velocities are expressed against
	FrameTime time.Duration

	BallRadius   float64
	TrailLength  int
	Acceleration float64
	MaxSpeed     float64

	// MaxHitOffset clamps normalized paddle offset, MaxBounce is radians at that clamp
	MaxHitOffset float64
	MaxBounce    float64

	// ServeSpread is the half-width of the random serve angle in radians
	ServeSpread float64
}

// NewProfile derives a Profile from config
func NewProfile(cfg config.Config) Profile {
	return Profile{
		Width:        cfg.Field.Width,
		Height:       cfg.Field.Height,
		FrameTime:    cfg.Match.FrameTime,
		BallRadius:   cfg.Ball.Radius,
		TrailLength:  cfg.Ball.TrailLength,
		Acceleration: cfg.Ball.Acceleration,
		MaxSpeed:     cfg.Ball.MaxSpeed,
		MaxHitOffset: cfg.Ball.MaxHitOffset,
		MaxBounce:    vmath.Radians(cfg.Ball.MaxBounceDeg),
		ServeSpread:  vmath.Radians(cfg.Ball.ServeSpreadDeg),
	}
}

// StepFactor converts elapsed time into reference frames
func (p Profile) StepFactor(dt time.Duration) float64 {
	return float64(dt) / float64(p.FrameTime)
}

// Center returns the field midpoint
func (p Profile) Center() vmath.Vec2 {
	return vmath.V(p.Width/2, p.Height/2)
}
