// Package ai drives the opponent paddle
// The opponent reads the match, not input: difficulty and reaction time follow the player's score
package ai

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Controller moves the opponent paddle toward a predicted, deliberately imperfect intercept
type Controller struct {
	cfg       config.AIConfig
	height    float64
	frameTime time.Duration
	rng       vmath.Rand
}

// New creates a controller; rng supplies aim error
func New(cfg config.Config, rng vmath.Rand) *Controller {
	return &Controller{
		cfg:       cfg.AI,
		height:    cfg.Field.Height,
		frameTime: cfg.Match.FrameTime,
		rng:       rng,
	}
}

// Update advances opponent state in m.AI and moves m.Opponent
// No balls is a no-op beyond refreshing difficulty
func (c *Controller) Update(m *core.Match, dt time.Duration) {
	st := &m.AI
	st.Difficulty = 1 + float64(m.PlayerScore)*c.cfg.DifficultyPerPoint
	st.ReactionDelay = c.reactionDelay(m.PlayerScore)

	target := TargetBall(m.Balls)
	if target == nil {
		return
	}

	delayFactor := math.Min(1, float64(st.ReactionDelay)/float64(c.cfg.FullDelay))
	perceived := DelayedPosition(target.Pos, st.LastBallPos, delayFactor)

	seen := target.Pos
	st.LastBallPos = &seen

	predicted := c.PredictY(perceived, target.Vel, m.Opponent.Pos.X)

	margin := math.Max(c.cfg.ErrorMarginMin, c.cfg.ErrorMarginBase-st.Difficulty*c.cfg.ErrorMarginDecrement)
	aim := predicted + (c.rng.Float64()-0.5)*margin

	st.TargetY = st.TargetY*c.cfg.Smoothing + aim*(1-c.cfg.Smoothing)

	speed := c.cfg.BaseSpeed + st.Difficulty*c.cfg.SpeedIncrement
	maxMove := speed * float64(dt) / float64(c.frameTime)

	pd := &m.Opponent
	dist := st.TargetY - pd.CenterY()
	if math.Abs(dist) > c.cfg.DeadZone {
		pd.Pos.Y += vmath.Sign(dist) * math.Min(maxMove, math.Abs(dist))
	}
	pd.Pos.Y = vmath.Clamp(pd.Pos.Y, 0, c.height-pd.Height)
}

func (c *Controller) reactionDelay(playerScore int) time.Duration {
	d := c.cfg.BaseReactionDelay - time.Duration(playerScore)*c.cfg.ReactionDelayDecrement
	if d < c.cfg.MinReactionDelay {
		d = c.cfg.MinReactionDelay
	}
	return d
}

// TargetBall picks the ball the opponent tracks: among balls moving toward it (Vel.X > 0)
// the one with greatest X, otherwise the ball with greatest X overall. Nil when empty
func TargetBall(balls []core.Ball) *core.Ball {
	var best, bestApproaching *core.Ball
	for i := range balls {
		b := &balls[i]
		if best == nil || b.Pos.X > best.Pos.X {
			best = b
		}
		if b.Vel.X > 0 && (bestApproaching == nil || b.Pos.X > bestApproaching.Pos.X) {
			bestApproaching = b
		}
	}
	if bestApproaching != nil {
		return bestApproaching
	}
	return best
}

// PredictY extrapolates the ball's y at targetX, mirroring off the walls
// A ball not moving toward targetX keeps its current y
func (c *Controller) PredictY(pos, vel vmath.Vec2, targetX float64) float64 {
	if vel.X <= 0 {
		return pos.Y
	}
	t := (targetX - pos.X) / vel.X
	y, _ := vmath.Fold(pos.Y+vel.Y*t, c.height, c.cfg.MaxFolds)
	return vmath.Clamp(y, 0, c.height)
}

// DelayedPosition blends the last observation toward the current one
// factor 0 sees the true position, 1 sees only the last observation
func DelayedPosition(current vmath.Vec2, last *vmath.Vec2, factor float64) vmath.Vec2 {
	if last == nil {
		return current
	}
	return last.Lerp(current, 1-factor)
}
