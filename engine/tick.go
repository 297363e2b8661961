package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/neon-pong/collision"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/event"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Tick advances the match to now
// Timing is recorded in every status; simulation runs only while playing
func (e *Engine) Tick(now time.Time) {
	m := e.match

	dt := e.cfg.Match.FrameTime
	if !m.LastFrame.IsZero() {
		dt = now.Sub(m.LastFrame)
	}
	if dt > e.cfg.Match.MaxDelta {
		dt = e.cfg.Match.MaxDelta
	}
	if dt < 0 {
		dt = 0
	}
	m.LastFrame = now
	m.Delta = dt
	m.Tick++

	if m.Status != core.StatusPlaying {
		return
	}
	e.step(now, dt)
}

func (e *Engine) step(now time.Time, dt time.Duration) {
	m := e.match

	e.profile.AdvancePaddle(&m.Player, e.Intent(), e.cfg.Paddle.Speed, dt)
	e.opponent.Update(m, dt)
	for i := range m.Balls {
		e.profile.Advance(&m.Balls[i], dt)
	}

	playerScored, opponentScored := e.resolve(e.detector.Detect(m, now), now)

	if playerScored || opponentScored {
		e.score(playerScored, opponentScored, now)
	}

	if winner := m.Winner(); winner != core.SideNone {
		e.setStatus(core.StatusGameOver, now)
		e.emit(event.EventMatchOver, now, &event.MatchOverPayload{
			Winner:        winner,
			PlayerScore:   m.PlayerScore,
			OpponentScore: m.OpponentScore,
		})
		return
	}

	e.pruneBalls()

	res := e.powerups.Update(m, now)
	for _, pu := range res.Spawned {
		e.emit(event.EventPowerUpSpawned, now, &event.PowerUpPayload{ID: pu.ID, Kind: pu.Kind})
	}
	for _, kind := range res.Expired {
		e.emit(event.EventPowerUpExpired, now, &event.PowerUpPayload{Kind: kind})
	}

	e.fx.StepParticles(m, dt)
	e.fx.Update(m, now)
}

// resolve applies collision events in detection order and reports which sides scored
func (e *Engine) resolve(events []collision.Event, now time.Time) (playerScored, opponentScored bool) {
	m := e.match

	for _, ev := range events {
		switch ev.Kind {
		case collision.KindWallTop, collision.KindWallBottom:
			top := ev.Kind == collision.KindWallTop
			b := &m.Balls[ev.Ball]
			e.profile.ReflectOffWall(b, top)
			e.fx.TriggerShake(m, e.cfg.Effect.ShakeWallIntensity, now)
			wallY := e.cfg.Field.Height
			if top {
				wallY = 0
			}
			e.fx.BounceBurst(m, vmath.V(b.Pos.X, wallY), top)
			e.emit(event.EventWallBounce, now, &event.WallBouncePayload{Top: top})

		case collision.KindPaddleLeft, collision.KindPaddleRight:
			pd := &m.Player
			if ev.Kind == collision.KindPaddleRight {
				pd = &m.Opponent
			}
			b := &m.Balls[ev.Ball]
			e.profile.ReflectOffPaddle(b, pd)
			e.fx.PaddleBurst(m, vmath.V(pd.Face(), b.Pos.Y), pd.Side)
			e.emit(event.EventPaddleHit, now, &event.PaddleHitPayload{Side: pd.Side, Speed: b.Speed()})

		case collision.KindPowerUp:
			pu := m.PowerUps[ev.PowerUp]
			if e.powerups.Collect(m, ev.PowerUp, ev.Ball, now) {
				e.emit(event.EventPowerUpCollected, now, &event.PowerUpPayload{ID: pu.ID, Kind: pu.Kind})
			}

		case collision.KindScoreLeft:
			m.Balls[ev.Ball].Scored = true
			playerScored = true

		case collision.KindScoreRight:
			m.Balls[ev.Ball].Scored = true
			opponentScored = true

		default:
			panic(fmt.Sprintf("engine: unhandled collision kind %v", ev.Kind))
		}
	}
	return playerScored, opponentScored
}

// score increments each scoring side once; the player wins LastScorer on a double score
func (e *Engine) score(playerScored, opponentScored bool, now time.Time) {
	m := e.match

	if opponentScored {
		m.OpponentScore++
		m.LastScorer = core.SideRight
		e.emit(event.EventScore, now, &event.ScorePayload{
			Scorer: core.SideRight, PlayerScore: m.PlayerScore, OpponentScore: m.OpponentScore,
		})
	}
	if playerScored {
		m.PlayerScore++
		m.LastScorer = core.SideLeft
		e.emit(event.EventScore, now, &event.ScorePayload{
			Scorer: core.SideLeft, PlayerScore: m.PlayerScore, OpponentScore: m.OpponentScore,
		})
	}
	e.fx.TriggerGlitch(m, now)
}

// pruneBalls drops balls fully outside the field and serves a new one toward the last scorer if none remain
// Detect already saw these post-advance positions, and the exit bound lies past the goal line,
// so every dropped ball has latched Scored in this tick or an earlier one
func (e *Engine) pruneBalls() {
	m := e.match

	kept := m.Balls[:0]
	for i := range m.Balls {
		if !e.profile.Exited(&m.Balls[i]) {
			kept = append(kept, m.Balls[i])
		}
	}
	clear(m.Balls[len(kept):])
	m.Balls = kept

	if len(m.Balls) > 0 {
		return
	}

	dir := 0.0
	if m.LastScorer != core.SideNone {
		dir = -m.LastScorer.Dir()
	}
	m.Balls = append(m.Balls, e.profile.SpawnBall(e.profile.Center(), e.cfg.Ball.InitialSpeed, dir, e.rng))
}
