// Package collision scans a match for contacts without mutating it
package collision

import (
	"time"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/vmath"
)

// Kind discriminates collision events
type Kind uint8

const (
	KindWallTop Kind = iota
	KindWallBottom
	KindPaddleLeft
	KindPaddleRight
	KindPowerUp
	// KindScoreLeft means the left side (player) scored: ball crossed the right goal line
	KindScoreLeft
	// KindScoreRight means the right side (opponent) scored: ball crossed the left goal line
	KindScoreRight
)

func (k Kind) String() string {
	switch k {
	case KindWallTop:
		return "wall_top"
	case KindWallBottom:
		return "wall_bottom"
	case KindPaddleLeft:
		return "paddle_left"
	case KindPaddleRight:
		return "paddle_right"
	case KindPowerUp:
		return "powerup"
	case KindScoreLeft:
		return "score_left"
	case KindScoreRight:
		return "score_right"
	}
	return "unknown"
}

// Event is one detected contact
// Ball indexes Match.Balls; PowerUp indexes Match.PowerUps for KindPowerUp and is -1 otherwise
type Event struct {
	Kind    Kind
	Ball    int
	PowerUp int
}

// Detector holds the geometry needed for the scan
type Detector struct {
	Width, Height float64
	PowerUpRadius float64
}

// Detect returns collision events in ball order; per ball: wall, paddle, score, power-ups
// A ball may produce several events in one scan and they are independent of each other
func (d Detector) Detect(m *core.Match, now time.Time) []Event {
	var events []Event

	for i := range m.Balls {
		b := &m.Balls[i]

		// Top takes precedence when a ball somehow touches both
		if b.Pos.Y-b.Radius <= 0 {
			events = append(events, Event{Kind: KindWallTop, Ball: i, PowerUp: -1})
		} else if b.Pos.Y+b.Radius >= d.Height {
			events = append(events, Event{Kind: KindWallBottom, Ball: i, PowerUp: -1})
		}

		if !b.GhostActive(now) {
			if b.Vel.X < 0 && hitsPaddle(b, &m.Player) {
				events = append(events, Event{Kind: KindPaddleLeft, Ball: i, PowerUp: -1})
			}
			if b.Vel.X > 0 && hitsPaddle(b, &m.Opponent) {
				events = append(events, Event{Kind: KindPaddleRight, Ball: i, PowerUp: -1})
			}
		}

		// Goal lines ignore ghost state; a ball is counted once
		if !b.Scored {
			if b.Pos.X-b.Radius <= 0 {
				events = append(events, Event{Kind: KindScoreRight, Ball: i, PowerUp: -1})
			} else if b.Pos.X+b.Radius >= d.Width {
				events = append(events, Event{Kind: KindScoreLeft, Ball: i, PowerUp: -1})
			}
		}

		for j := range m.PowerUps {
			pu := &m.PowerUps[j]
			if pu.Collected {
				continue
			}
			if vmath.CirclesOverlap(b.Pos, b.Radius, pu.Pos, d.PowerUpRadius) {
				events = append(events, Event{Kind: KindPowerUp, Ball: i, PowerUp: j})
			}
		}
	}

	return events
}

func hitsPaddle(b *core.Ball, p *core.Paddle) bool {
	return vmath.CircleRectOverlap(b.Pos, b.Radius, p.Pos.X, p.Pos.Y, p.Width, p.Height)
}
