package core

import (
	"time"

	"github.com/lixenwraith/neon-pong/vmath"
)

// Status is the match lifecycle state
type Status uint8

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	}
	return "unknown"
}

// Intent is the player's desired paddle direction, sampled once per tick
type Intent int32

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	}
	return "none"
}

// OpponentState is carried by the opponent controller across ticks
type OpponentState struct {
	Difficulty    float64       `json:"difficulty" msgpack:"difficulty"`
	ReactionDelay time.Duration `json:"reactionDelay" msgpack:"reactionDelay"`
	// LastBallPos is nil until the first observation
	LastBallPos *vmath.Vec2 `json:"lastBallPos,omitempty" msgpack:"lastBallPos,omitempty"`
	TargetY     float64     `json:"targetY" msgpack:"targetY"`
}

// Match is the root aggregate, owned and mutated only by the engine
type Match struct {
	Status Status `json:"status" msgpack:"status"`
	Tick   uint64 `json:"tick" msgpack:"tick"`

	Balls    []Ball `json:"balls" msgpack:"balls"`
	Player   Paddle `json:"player" msgpack:"player"`
	Opponent Paddle `json:"opponent" msgpack:"opponent"`

	PlayerScore   int  `json:"playerScore" msgpack:"playerScore"`
	OpponentScore int  `json:"opponentScore" msgpack:"opponentScore"`
	WinningScore  int  `json:"winningScore" msgpack:"winningScore"`
	LastScorer    Side `json:"lastScorer" msgpack:"lastScorer"`

	PowerUps  []PowerUp `json:"powerUps" msgpack:"powerUps"`
	NextSpawn time.Time `json:"nextSpawn" msgpack:"nextSpawn"`

	Particles []Particle  `json:"particles" msgpack:"particles"`
	Shake     ScreenShake `json:"shake" msgpack:"shake"`
	Glitch    Glitch      `json:"glitch" msgpack:"glitch"`

	AI OpponentState `json:"ai" msgpack:"ai"`

	LastFrame time.Time     `json:"lastFrame" msgpack:"lastFrame"`
	Delta     time.Duration `json:"delta" msgpack:"delta"`
}

// Winner returns the side that reached the winning score, SideNone otherwise
func (m *Match) Winner() Side {
	switch {
	case m.PlayerScore >= m.WinningScore:
		return SideLeft
	case m.OpponentScore >= m.WinningScore:
		return SideRight
	}
	return SideNone
}

// UncollectedPowerUps counts power-ups still on the field
func (m *Match) UncollectedPowerUps() int {
	n := 0
	for i := range m.PowerUps {
		if !m.PowerUps[i].Collected {
			n++
		}
	}
	return n
}

// Clone returns a deep copy safe to hand to readers outside the engine
func (m *Match) Clone() Match {
	c := *m
	if m.Balls != nil {
		c.Balls = make([]Ball, len(m.Balls))
		for i, b := range m.Balls {
			c.Balls[i] = b.clone()
		}
	}
	if m.PowerUps != nil {
		c.PowerUps = append([]PowerUp(nil), m.PowerUps...)
	}
	if m.Particles != nil {
		c.Particles = append([]Particle(nil), m.Particles...)
	}
	if m.AI.LastBallPos != nil {
		p := *m.AI.LastBallPos
		c.AI.LastBallPos = &p
	}
	return c
}
