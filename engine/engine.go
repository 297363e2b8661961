// Package engine owns the match and sequences one simulation step per tick
//
// Engine is single-goroutine: Tick, Start, TogglePause and Reset must be called
// from the goroutine driving the Loop. SetIntent is safe from any goroutine.
package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-pong/ai"
	"github.com/lixenwraith/neon-pong/collision"
	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/effect"
	"github.com/lixenwraith/neon-pong/event"
	"github.com/lixenwraith/neon-pong/physics"
	"github.com/lixenwraith/neon-pong/powerup"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Engine is the frame orchestrator
type Engine struct {
	cfg      config.Config
	profile  physics.Profile
	detector collision.Detector
	opponent *ai.Controller
	powerups *powerup.Manager
	fx       *effect.Scheduler
	rng      vmath.Rand
	queue    *event.Queue

	match  *core.Match
	intent atomic.Int32
}

// Option configures an Engine at construction
type Option func(*engineOptions)

type engineOptions struct {
	rng   vmath.Rand
	queue *event.Queue
	newID func() string
}

// WithRand replaces the seeded default random source
func WithRand(r vmath.Rand) Option {
	return func(o *engineOptions) { o.rng = r }
}

// WithQueue sets the queue receiving game events; nil disables events
func WithQueue(q *event.Queue) Option {
	return func(o *engineOptions) { o.queue = q }
}

// WithIDs replaces the power-up ID generator
func WithIDs(fn func() string) Option {
	return func(o *engineOptions) { o.newID = fn }
}

// New builds an engine holding an idle match
func New(cfg config.Config, now time.Time, opts ...Option) *Engine {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = vmath.NewFastRand(cfg.Seed)
	}

	profile := physics.NewProfile(cfg)
	fx := effect.New(cfg, o.rng)
	pm := powerup.New(cfg, profile, fx, o.rng)
	if o.newID != nil {
		pm.NewID = o.newID
	}

	e := &Engine{
		cfg:     cfg,
		profile: profile,
		detector: collision.Detector{
			Width:         cfg.Field.Width,
			Height:        cfg.Field.Height,
			PowerUpRadius: cfg.PowerUp.Radius,
		},
		opponent: ai.New(cfg, o.rng),
		powerups: pm,
		fx:       fx,
		rng:      o.rng,
		queue:    o.queue,
	}
	e.match = e.freshMatch(now)
	return e
}

// freshMatch builds the initial state: one centered ball, centered paddles, zero score
// The tick counter carries over so event ticks stay monotonic across resets
func (e *Engine) freshMatch(now time.Time) *core.Match {
	w, h := e.cfg.Field.Width, e.cfg.Field.Height
	pc := e.cfg.Paddle
	paddle := func(side core.Side, x float64) core.Paddle {
		return core.Paddle{
			Side:       side,
			Pos:        vmath.V(x, h/2-pc.Height/2),
			Width:      pc.Width,
			Height:     pc.Height,
			BaseHeight: pc.Height,
		}
	}

	var tick uint64
	if e.match != nil {
		tick = e.match.Tick
	}

	return &core.Match{
		Status:       core.StatusIdle,
		Tick:         tick,
		Balls:        []core.Ball{e.profile.SpawnBall(e.profile.Center(), e.cfg.Ball.InitialSpeed, 0, e.rng)},
		Player:       paddle(core.SideLeft, pc.Margin),
		Opponent:     paddle(core.SideRight, w-pc.Margin-pc.Width),
		WinningScore: e.cfg.Match.WinningScore,
		NextSpawn:    e.powerups.Schedule(now),
		AI: core.OpponentState{
			Difficulty:    1,
			ReactionDelay: e.cfg.AI.BaseReactionDelay,
			TargetY:       h / 2,
		},
	}
}

// Status returns the current lifecycle state
func (e *Engine) Status() core.Status {
	return e.match.Status
}

// Snapshot returns a deep copy of the match
func (e *Engine) Snapshot() core.Match {
	return e.match.Clone()
}

// SetIntent records the latest player intent; last write before a tick wins
func (e *Engine) SetIntent(i core.Intent) {
	e.intent.Store(int32(i))
}

func (e *Engine) Intent() core.Intent {
	return core.Intent(e.intent.Load())
}

// Start begins a new match from idle or gameover, or resumes from paused
func (e *Engine) Start(now time.Time) {
	switch e.match.Status {
	case core.StatusIdle, core.StatusGameOver:
		from := e.match.Status
		e.match = e.freshMatch(now)
		e.match.Status = core.StatusPlaying
		e.emit(event.EventStatusChange, now, &event.StatusChangePayload{From: from, To: core.StatusPlaying})
	case core.StatusPaused:
		e.setStatus(core.StatusPlaying, now)
	}
}

// TogglePause flips between playing and paused; other states are unaffected
func (e *Engine) TogglePause(now time.Time) {
	switch e.match.Status {
	case core.StatusPlaying:
		e.setStatus(core.StatusPaused, now)
	case core.StatusPaused:
		e.setStatus(core.StatusPlaying, now)
	}
}

// Reset discards the match and returns to a fresh idle state
func (e *Engine) Reset(now time.Time) {
	from := e.match.Status
	e.match = e.freshMatch(now)
	if from != core.StatusIdle {
		e.emit(event.EventStatusChange, now, &event.StatusChangePayload{From: from, To: core.StatusIdle})
	}
}

func (e *Engine) setStatus(to core.Status, now time.Time) {
	from := e.match.Status
	if from == to {
		return
	}
	e.match.Status = to
	e.emit(event.EventStatusChange, now, &event.StatusChangePayload{From: from, To: to})
}

func (e *Engine) emit(t event.EventType, now time.Time, payload any) {
	if e.queue == nil {
		return
	}
	e.queue.Push(event.GameEvent{Type: t, Tick: e.match.Tick, Time: now, Payload: payload})
}
