// Package powerup runs the power-up lifecycle: spawn schedule, collection, expiry and cleanup
package powerup

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/effect"
	"github.com/lixenwraith/neon-pong/physics"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Manager applies power-up rules to a match
type Manager struct {
	cfg              config.PowerUpConfig
	extendMultiplier float64
	maxBalls         int

	profile physics.Profile
	fx      *effect.Scheduler
	rng     vmath.Rand

	// NewID generates power-up identifiers
	NewID func() string
}

// Result reports what a single Update changed
type Result struct {
	Spawned []core.PowerUp
	Expired []core.PowerUpKind
}

func New(cfg config.Config, profile physics.Profile, fx *effect.Scheduler, rng vmath.Rand) *Manager {
	return &Manager{
		cfg:              cfg.PowerUp,
		extendMultiplier: cfg.Paddle.ExtendMultiplier,
		maxBalls:         cfg.Match.MaxBalls,
		profile:          profile,
		fx:               fx,
		rng:              rng,
		NewID:            uuid.NewString,
	}
}

// Schedule returns the next spawn deadline counted from now
func (mg *Manager) Schedule(now time.Time) time.Time {
	span := mg.cfg.SpawnMax - mg.cfg.SpawnMin
	return now.Add(mg.cfg.SpawnMin + time.Duration(mg.rng.Float64()*float64(span)))
}

// Update spawns when due, expires timed effects and drops collected power-ups past the grace window
func (mg *Manager) Update(m *core.Match, now time.Time) Result {
	var res Result

	if !now.Before(m.NextSpawn) && m.UncollectedPowerUps() < mg.cfg.MaxActive {
		pu := mg.spawn(now)
		m.PowerUps = append(m.PowerUps, pu)
		m.NextSpawn = mg.Schedule(now)
		res.Spawned = append(res.Spawned, pu)
	}

	pd := &m.Player
	if pd.Extended && !pd.ExtendedEnd.IsZero() && !now.Before(pd.ExtendedEnd) {
		pd.Height = pd.BaseHeight
		pd.Extended = false
		pd.ExtendedEnd = time.Time{}
		res.Expired = append(res.Expired, core.PowerUpExtendPaddle)
	}

	for i := range m.Balls {
		b := &m.Balls[i]
		if b.Ghost && !b.GhostEnd.IsZero() && !now.Before(b.GhostEnd) {
			b.Ghost = false
			b.GhostEnd = time.Time{}
			res.Expired = append(res.Expired, core.PowerUpGhostBall)
		}
	}

	// Grace is measured from spawn, so a power-up collected long after spawning vanishes at once
	kept := m.PowerUps[:0]
	for _, pu := range m.PowerUps {
		if !pu.Collected || now.Sub(pu.Spawned) < mg.cfg.Grace {
			kept = append(kept, pu)
		}
	}
	clear(m.PowerUps[len(kept):])
	m.PowerUps = kept

	return res
}

func (mg *Manager) spawn(now time.Time) core.PowerUp {
	kind := core.PowerUpKinds[vmath.Pick(mg.rng, len(core.PowerUpKinds))]
	area := mg.cfg.Area
	return core.PowerUp{
		ID:   mg.NewID(),
		Kind: kind,
		Pos: vmath.V(
			vmath.Range(mg.rng, area.XMin, area.XMax),
			vmath.Range(mg.rng, area.YMin, area.YMax),
		),
		Spawned: now,
	}
}

// Collect applies power-up puIdx to the match on behalf of ball ballIdx
// Returns false without side effects if the power-up was already collected
func (mg *Manager) Collect(m *core.Match, puIdx, ballIdx int, now time.Time) bool {
	pu := &m.PowerUps[puIdx]
	if pu.Collected {
		return false
	}
	pu.Collected = true

	switch pu.Kind {
	case core.PowerUpExtendPaddle:
		pd := &m.Player
		if !pd.Extended {
			pd.Height = pd.BaseHeight * mg.extendMultiplier
			pd.Extended = true
			mg.profile.ClampPaddle(pd)
		}
		pd.ExtendedEnd = now.Add(mg.cfg.ExtendDuration)

	case core.PowerUpDuplicateBall:
		if len(m.Balls) < mg.maxBalls {
			src := m.Balls[ballIdx]
			m.Balls = append(m.Balls, core.Ball{
				Pos:    src.Pos,
				Vel:    vmath.V(src.Vel.X, -src.Vel.Y),
				Radius: src.Radius,
				Trail:  make([]vmath.Vec2, 0, mg.profile.TrailLength),
			})
		}

	case core.PowerUpGhostBall:
		b := &m.Balls[ballIdx]
		b.Ghost = true
		b.GhostEnd = now.Add(mg.cfg.GhostDuration)

	default:
		panic("powerup: unknown kind " + pu.Kind.String())
	}

	mg.fx.CollectBurst(m, pu.Pos, pu.Kind.Tint())
	return true
}
