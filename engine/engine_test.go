package engine

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/event"
	"github.com/lixenwraith/neon-pong/vmath"
)

var t0 = time.Unix(10000, 0)

type harness struct {
	cfg   config.Config
	e     *Engine
	clock *ManualClock
	queue *event.Queue
}

func newHarness(t *testing.T, cfg config.Config, rng vmath.Rand) *harness {
	t.Helper()
	n := 0
	q := event.NewQueue()
	e := New(cfg, t0,
		WithRand(rng),
		WithQueue(q),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	return &harness{cfg: cfg, e: e, clock: NewManualClock(t0), queue: q}
}

// started returns a playing harness with a quiet power-up schedule and drained events
func started(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t, config.Default(), vmath.NewSeqRand(0.5))
	h.e.Start(h.clock.Now())
	h.e.match.NextSpawn = t0.Add(time.Hour)
	h.queue.Consume()
	return h
}

func (h *harness) tick() {
	h.e.Tick(h.clock.Advance(h.cfg.Match.FrameTime))
}

func countType(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func TestStart_FreshMatch(t *testing.T) {
	h := newHarness(t, config.Default(), vmath.NewSeqRand(0.5))

	if h.e.Status() != core.StatusIdle {
		t.Fatalf("new engine status = %v", h.e.Status())
	}

	h.e.Start(h.clock.Now())
	m := h.e.Snapshot()

	if m.Status != core.StatusPlaying {
		t.Errorf("status = %v, want playing", m.Status)
	}
	if len(m.Balls) != 1 {
		t.Errorf("balls = %d, want 1", len(m.Balls))
	}
	if m.PlayerScore != 0 || m.OpponentScore != 0 {
		t.Errorf("score = %d-%d", m.PlayerScore, m.OpponentScore)
	}
	for _, pd := range []core.Paddle{m.Player, m.Opponent} {
		if pd.Height != pd.BaseHeight || pd.Extended {
			t.Errorf("%s paddle not at base height: %+v", pd.Side, pd)
		}
		if pd.CenterY() != h.cfg.Field.Height/2 {
			t.Errorf("%s paddle not centered: %v", pd.Side, pd.CenterY())
		}
	}
	if m.Balls[0].Pos != vmath.V(400, 300) || m.Balls[0].Speed() != h.cfg.Ball.InitialSpeed {
		t.Errorf("ball = %+v", m.Balls[0])
	}
	if m.Player.Pos.X != 30 || m.Opponent.Pos.X != 755 {
		t.Errorf("paddle x = %v / %v", m.Player.Pos.X, m.Opponent.Pos.X)
	}

	events := h.queue.Consume()
	if len(events) != 1 || events[0].Type != event.EventStatusChange {
		t.Fatalf("events = %+v", events)
	}
	p := events[0].Payload.(*event.StatusChangePayload)
	if p.From != core.StatusIdle || p.To != core.StatusPlaying {
		t.Errorf("transition = %v -> %v", p.From, p.To)
	}
}

func TestStatusMachine(t *testing.T) {
	h := newHarness(t, config.Default(), vmath.NewSeqRand(0.5))
	now := h.clock.Now()

	h.e.TogglePause(now)
	if h.e.Status() != core.StatusIdle {
		t.Fatal("pause from idle must be a no-op")
	}

	h.e.Start(now)
	h.e.TogglePause(now)
	if h.e.Status() != core.StatusPaused {
		t.Fatal("pause from playing")
	}
	h.e.TogglePause(now)
	if h.e.Status() != core.StatusPlaying {
		t.Fatal("resume via toggle")
	}

	h.e.TogglePause(now)
	h.e.match.PlayerScore = 4
	h.e.Start(now)
	if h.e.Status() != core.StatusPlaying || h.e.match.PlayerScore != 4 {
		t.Fatal("start from paused should resume without reset")
	}

	h.e.Reset(now)
	if h.e.Status() != core.StatusIdle || h.e.match.PlayerScore != 0 {
		t.Fatal("reset should return to fresh idle match")
	}

	h.e.match.Status = core.StatusGameOver
	h.e.match.OpponentScore = 11
	h.e.Start(now)
	if h.e.Status() != core.StatusPlaying || h.e.match.OpponentScore != 0 {
		t.Fatal("start from gameover should reset")
	}
}

func TestTick_DeltaAndTimingWhenNotPlaying(t *testing.T) {
	h := newHarness(t, config.Default(), vmath.NewSeqRand(0.5))
	ball := h.e.match.Balls[0]

	h.e.Tick(t0)
	if h.e.match.Delta != h.cfg.Match.FrameTime {
		t.Errorf("first delta = %v, want frame time", h.e.match.Delta)
	}

	h.e.Tick(t0.Add(time.Second))
	if h.e.match.Delta != h.cfg.Match.MaxDelta {
		t.Errorf("stall delta = %v, want clamp %v", h.e.match.Delta, h.cfg.Match.MaxDelta)
	}
	if !h.e.match.LastFrame.Equal(t0.Add(time.Second)) {
		t.Error("last frame not recorded while idle")
	}
	if h.e.match.Balls[0].Pos != ball.Pos {
		t.Error("ball moved while idle")
	}
	if h.e.match.Tick != 2 {
		t.Errorf("tick = %d", h.e.match.Tick)
	}
}

func TestTick_AdvanceExactFrame(t *testing.T) {
	h := started(t)
	h.e.match.Balls[0].Vel = vmath.V(6, 0)

	h.tick()

	if got := h.e.match.Balls[0].Pos.X; got != 406 {
		t.Errorf("x = %v, want 406", got)
	}
}

func TestTick_PlayerIntent(t *testing.T) {
	h := started(t)
	h.e.SetIntent(core.IntentUp)
	h.tick()
	if got := h.e.match.Player.Pos.Y; got != 250-8 {
		t.Errorf("up: y = %v", got)
	}

	h.e.SetIntent(core.IntentDown)
	h.e.SetIntent(core.IntentNone)
	h.tick()
	if got := h.e.match.Player.Pos.Y; got != 242 {
		t.Errorf("last write should win: y = %v", got)
	}
}

func TestTick_CenterHitLeavesFlat(t *testing.T) {
	h := started(t)
	h.e.match.Balls[0] = core.Ball{Pos: vmath.V(62, 300), Vel: vmath.V(-6, 0), Radius: 10}

	h.tick()
	h.tick()

	b := h.e.match.Balls[0]
	if b.Vel.X <= 0 || math.Abs(b.Vel.Y) > 1e-9 {
		t.Errorf("center hit velocity = %v", b.Vel)
	}
	if math.Abs(b.Speed()-6*h.cfg.Ball.Acceleration) > 1e-9 {
		t.Errorf("speed = %v", b.Speed())
	}

	events := h.queue.Consume()
	if countType(events, event.EventPaddleHit) != 1 {
		t.Errorf("paddle hits = %d", countType(events, event.EventPaddleHit))
	}
	if len(h.e.match.Particles) == 0 {
		t.Error("paddle hit should emit particles")
	}
}

func TestTick_WallBounceShakes(t *testing.T) {
	h := started(t)
	h.e.match.Balls[0] = core.Ball{Pos: vmath.V(400, 14), Vel: vmath.V(0, -6), Radius: 10}

	h.tick()

	m := h.e.match
	if m.Balls[0].Vel.Y != 6 || m.Balls[0].Pos.Y != 11 {
		t.Errorf("ball after wall = %+v", m.Balls[0])
	}
	if !m.Shake.Active || m.Shake.Intensity != h.cfg.Effect.ShakeWallIntensity {
		t.Errorf("shake = %+v", m.Shake)
	}
	if m.Glitch.Active {
		t.Error("wall bounce must not glitch")
	}
	if countType(h.queue.Consume(), event.EventWallBounce) != 1 {
		t.Error("missing wall bounce event")
	}
}

func TestTick_GhostPassesPaddleAndScores(t *testing.T) {
	h := started(t)
	h.e.match.Balls[0] = core.Ball{
		Pos:      vmath.V(60, 300),
		Vel:      vmath.V(-6, 0),
		Radius:   10,
		Ghost:    true,
		GhostEnd: t0.Add(time.Hour),
	}

	var events []event.GameEvent
	for i := 0; i < 12 && h.e.match.OpponentScore == 0; i++ {
		h.tick()
		events = append(events, h.queue.Consume()...)
	}

	if countType(events, event.EventPaddleHit) != 0 {
		t.Error("ghost ball hit the paddle")
	}
	if h.e.match.OpponentScore != 1 {
		t.Fatalf("ghost ball did not score, score %d-%d", h.e.match.PlayerScore, h.e.match.OpponentScore)
	}
	if !h.e.match.Glitch.Active {
		t.Error("score should trigger glitch")
	}
}

func TestTick_ScoredBallCountsOnce(t *testing.T) {
	h := started(t)
	h.e.match.Balls[0] = core.Ball{Pos: vmath.V(795, 100), Vel: vmath.V(1, 0), Radius: 10}

	for i := 0; i < 10; i++ {
		h.tick()
	}

	if h.e.match.PlayerScore != 1 {
		t.Errorf("lingering ball scored %d times", h.e.match.PlayerScore)
	}
}

func TestTick_ExitInOneTickStillScores(t *testing.T) {
	h := started(t)
	h.e.match.LastFrame = h.clock.Now()
	h.e.match.Balls[0] = core.Ball{Pos: vmath.V(15, 100), Vel: vmath.V(-15, 0), Radius: 10}

	// a stalled frame is clamped to MaxDelta, carrying the ball past the exit bound at once
	h.e.Tick(h.clock.Advance(h.cfg.Match.MaxDelta))
	m := h.e.match

	if m.OpponentScore != 1 || m.LastScorer != core.SideRight {
		t.Fatalf("score = %d-%d, last scorer %v", m.PlayerScore, m.OpponentScore, m.LastScorer)
	}
	if len(m.Balls) != 1 || m.Balls[0].Vel.X <= 0 {
		t.Errorf("replacement should head toward the opponent, balls %+v", m.Balls)
	}
	if countType(h.queue.Consume(), event.EventScore) != 1 {
		t.Error("expected a single score event")
	}
}

func TestTick_DoubleScoreSingleRespawn(t *testing.T) {
	h := started(t)
	h.e.match.Balls = []core.Ball{
		{Pos: vmath.V(-25, 300), Vel: vmath.V(-6, 0), Radius: 10},
		{Pos: vmath.V(825, 300), Vel: vmath.V(6, 0), Radius: 10},
	}

	h.tick()
	m := h.e.match

	if m.PlayerScore != 1 || m.OpponentScore != 1 {
		t.Fatalf("score = %d-%d, want 1-1", m.PlayerScore, m.OpponentScore)
	}
	if len(m.Balls) != 1 {
		t.Fatalf("balls = %d, want exactly one replacement", len(m.Balls))
	}
	if m.LastScorer != core.SideLeft {
		t.Errorf("last scorer = %v, want player precedence", m.LastScorer)
	}
	b := m.Balls[0]
	if b.Vel.X >= 0 {
		t.Errorf("replacement should head toward the player, vel %v", b.Vel)
	}
	if b.Pos != vmath.V(400, 300) || b.Scored || b.Ghost {
		t.Errorf("replacement = %+v", b)
	}
	if countType(h.queue.Consume(), event.EventScore) != 2 {
		t.Error("expected one score event per side")
	}
}

func TestTick_RespawnTowardOpponent(t *testing.T) {
	h := started(t)
	h.e.match.Balls = []core.Ball{{Pos: vmath.V(-25, 300), Vel: vmath.V(-6, 0), Radius: 10}}

	h.tick()

	if h.e.match.LastScorer != core.SideRight || h.e.match.Balls[0].Vel.X <= 0 {
		t.Errorf("serve should head toward the opponent: %+v", h.e.match.Balls[0])
	}
}

func TestTick_GameOverFreezes(t *testing.T) {
	h := started(t)
	h.e.match.PlayerScore = h.cfg.Match.WinningScore - 1
	h.e.match.Balls = []core.Ball{
		{Pos: vmath.V(805, 300), Vel: vmath.V(6, 0), Radius: 10},
		{Pos: vmath.V(400, 300), Vel: vmath.V(6, 0), Radius: 10},
	}

	h.tick()

	m := h.e.match
	if m.Status != core.StatusGameOver || m.Winner() != core.SideLeft {
		t.Fatalf("status = %v winner = %v", m.Status, m.Winner())
	}
	if m.PlayerScore != h.cfg.Match.WinningScore {
		t.Errorf("final score = %d", m.PlayerScore)
	}
	if len(m.Balls) != 2 {
		t.Error("ball pruning must not run on the deciding tick")
	}
	events := h.queue.Consume()
	if countType(events, event.EventMatchOver) != 1 {
		t.Error("missing match over event")
	}

	frozen := m.Clone()
	h.tick()
	if m.Balls[1].Pos != frozen.Balls[1].Pos || m.PlayerScore != frozen.PlayerScore {
		t.Error("match mutated after gameover")
	}
}

func TestTick_ExtendPaddleLifecycle(t *testing.T) {
	h := started(t)
	m := h.e.match
	m.Balls[0].Vel = vmath.Vec2{}
	m.PowerUps = []core.PowerUp{{ID: "a", Kind: core.PowerUpExtendPaddle, Pos: m.Balls[0].Pos}}

	h.tick()
	collected := h.clock.Now()

	if m.Player.Height != m.Player.BaseHeight*h.cfg.Paddle.ExtendMultiplier || !m.Player.Extended {
		t.Fatalf("paddle not extended: %+v", m.Player)
	}
	if countType(h.queue.Consume(), event.EventPowerUpCollected) != 1 {
		t.Error("missing collect event")
	}

	// second extend refreshes expiry only
	second := collected.Add(4 * time.Second)
	m.PowerUps = append(m.PowerUps, core.PowerUp{ID: "b", Kind: core.PowerUpExtendPaddle, Pos: m.Balls[0].Pos, Spawned: second})
	h.e.Tick(second)
	if m.Player.Height != 150 {
		t.Errorf("height after second extend = %v", m.Player.Height)
	}
	end := second.Add(h.cfg.PowerUp.ExtendDuration)
	if !m.Player.ExtendedEnd.Equal(end) {
		t.Fatalf("expiry = %v, want %v", m.Player.ExtendedEnd, end)
	}

	h.e.Tick(end.Add(-time.Millisecond))
	if m.Player.Height != 150 {
		t.Fatal("reverted before expiry")
	}
	h.e.Tick(end)
	if m.Player.Height != m.Player.BaseHeight || m.Player.Extended {
		t.Errorf("not reverted at first tick past expiry: %+v", m.Player)
	}
}

func TestSimulation_Invariants(t *testing.T) {
	cfg := config.Default()
	cfg.Match.WinningScore = 3
	h := newHarness(t, cfg, vmath.NewFastRand(42))
	h.e.Start(h.clock.Now())

	prevPlayer, prevOpponent := 0, 0
	for i := 0; i < 60*60*5; i++ {
		h.tick()
		m := h.e.match

		if m.PlayerScore < prevPlayer || m.OpponentScore < prevOpponent {
			t.Fatalf("tick %d: score decreased", i)
		}
		if m.PlayerScore > cfg.Match.WinningScore || m.OpponentScore > cfg.Match.WinningScore {
			t.Fatalf("tick %d: score past threshold %d-%d", i, m.PlayerScore, m.OpponentScore)
		}
		if m.PlayerScore-prevPlayer > 1 || m.OpponentScore-prevOpponent > 1 {
			t.Fatalf("tick %d: side scored twice in one tick", i)
		}
		prevPlayer, prevOpponent = m.PlayerScore, m.OpponentScore

		for _, pd := range []core.Paddle{m.Player, m.Opponent} {
			if pd.Height != pd.BaseHeight && pd.Height != pd.BaseHeight*cfg.Paddle.ExtendMultiplier {
				t.Fatalf("tick %d: %s paddle height %v", i, pd.Side, pd.Height)
			}
			if pd.Pos.Y < 0 || pd.Pos.Y+pd.Height > cfg.Field.Height+1e-9 {
				t.Fatalf("tick %d: %s paddle out of field y=%v", i, pd.Side, pd.Pos.Y)
			}
		}
		if len(m.Balls) == 0 || len(m.Balls) > cfg.Match.MaxBalls {
			t.Fatalf("tick %d: ball count %d", i, len(m.Balls))
		}
		for _, b := range m.Balls {
			if b.Speed() > cfg.Ball.MaxSpeed+1e-9 {
				t.Fatalf("tick %d: ball speed %v", i, b.Speed())
			}
		}

		for _, ev := range h.queue.Consume() {
			if p, ok := ev.Payload.(*event.PaddleHitPayload); ok {
				if p.Speed > cfg.Ball.MaxSpeed+1e-9 || p.Speed < cfg.Ball.InitialSpeed-1e-9 {
					t.Fatalf("tick %d: paddle speed %v out of range", i, p.Speed)
				}
			}
		}

		if m.Status == core.StatusGameOver {
			break
		}
	}
}

func TestActiveEffectLabel(t *testing.T) {
	tests := []struct {
		name string
		m    core.Match
		want string
	}{
		{"none", core.Match{Balls: []core.Ball{{}}}, ""},
		{"double", core.Match{Balls: []core.Ball{{}, {}}}, "DOUBLE BALL"},
		{"ghost beats double", core.Match{Balls: []core.Ball{{}, {Ghost: true}}}, "GHOST BALL"},
		{"extend beats all", core.Match{Player: core.Paddle{Extended: true}, Balls: []core.Ball{{Ghost: true}, {}}}, "LONG PADDLE"},
	}
	for _, tt := range tests {
		if got := ActiveEffectLabel(&tt.m); got != tt.want {
			t.Errorf("%s: label = %q, want %q", tt.name, got, tt.want)
		}
	}
}
