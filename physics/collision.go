package physics

import (
	"math"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/vmath"
)

// ReflectOffPaddle deflects the ball by where it struck the paddle
// Center hits leave nearly horizontal, edge hits approach MaxBounce
// Speed grows by Acceleration up to MaxSpeed; the ball is moved clear of the paddle face
func (p Profile) ReflectOffPaddle(b *core.Ball, pd *core.Paddle) {
	half := pd.Height / 2
	offset := 0.0
	if half > 0 {
		offset = (b.Pos.Y - pd.CenterY()) / half
	}
	offset = vmath.Clamp(offset, -p.MaxHitOffset, p.MaxHitOffset)
	angle := offset * p.MaxBounce

	speed := math.Min(b.Speed()*p.Acceleration, p.MaxSpeed)
	dir := pd.Side.Dir()

	b.Vel = vmath.V(math.Cos(angle)*speed*dir, math.Sin(angle)*speed)

	if pd.Side == core.SideLeft {
		b.Pos.X = pd.Pos.X + pd.Width + b.Radius + 1
	} else {
		b.Pos.X = pd.Pos.X - b.Radius - 1
	}
	b.Pos.Y = vmath.Clamp(b.Pos.Y, b.Radius, p.Height-b.Radius)
}

// ReflectOffWall negates vertical velocity and places the ball just inside the wall
func (p Profile) ReflectOffWall(b *core.Ball, top bool) {
	b.Vel = vmath.ReflectAxisY(b.Vel)
	if top {
		b.Pos.Y = b.Radius + 1
	} else {
		b.Pos.Y = p.Height - b.Radius - 1
	}
}
