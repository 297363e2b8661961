package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Advance moves the ball by its velocity scaled to elapsed reference frames
// and records the new position at the front of the trail
func (p Profile) Advance(b *core.Ball, dt time.Duration) {
	b.Pos = b.Pos.Add(b.Vel.Scale(p.StepFactor(dt)))

	if p.TrailLength <= 0 {
		b.Trail = b.Trail[:0]
		return
	}
	if len(b.Trail) < p.TrailLength {
		b.Trail = append(b.Trail, vmath.Vec2{})
	}
	copy(b.Trail[1:], b.Trail[:len(b.Trail)-1])
	b.Trail[0] = b.Pos
}

// AdvancePaddle moves the paddle in the intent direction and clamps it to the field
func (p Profile) AdvancePaddle(pd *core.Paddle, intent core.Intent, speed float64, dt time.Duration) {
	move := speed * p.StepFactor(dt)
	switch intent {
	case core.IntentUp:
		pd.Pos.Y -= move
	case core.IntentDown:
		pd.Pos.Y += move
	default:
		return
	}
	p.ClampPaddle(pd)
}

// ClampPaddle keeps the whole paddle inside the field vertically
func (p Profile) ClampPaddle(pd *core.Paddle) {
	pd.Pos.Y = vmath.Clamp(pd.Pos.Y, 0, p.Height-pd.Height)
}

// SpawnBall creates a non-ghost ball at origin with a random serve angle
// dir selects horizontal direction (+1/-1); 0 picks one at random
func (p Profile) SpawnBall(origin vmath.Vec2, speed, dir float64, rng vmath.Rand) core.Ball {
	angle := (rng.Float64() - 0.5) * 2 * p.ServeSpread
	if dir == 0 {
		dir = 1
		if rng.Float64() <= 0.5 {
			dir = -1
		}
	}

	return core.Ball{
		Pos: origin,
		Vel: vmath.V(
			math.Cos(angle)*speed*vmath.Sign(dir),
			math.Sin(angle)*speed,
		),
		Radius: p.BallRadius,
		Trail:  make([]vmath.Vec2, 0, p.TrailLength),
	}
}

// Exited reports whether the ball is fully outside the field horizontally
func (p Profile) Exited(b *core.Ball) bool {
	return b.Pos.X < -b.Radius*2 || b.Pos.X > p.Width+b.Radius*2
}
