package core

import (
	"time"

	"github.com/lixenwraith/neon-pong/vmath"
)

// Ball is a single ball in play
type Ball struct {
	Pos    vmath.Vec2 `json:"pos" msgpack:"pos"`
	Vel    vmath.Vec2 `json:"vel" msgpack:"vel"`
	Radius float64    `json:"radius" msgpack:"radius"`

	// Ghost passes through paddles until GhostEnd; zero GhostEnd means no window
	Ghost    bool      `json:"ghost" msgpack:"ghost"`
	GhostEnd time.Time `json:"ghostEnd" msgpack:"ghostEnd"`

	// Trail holds recent positions, most recent first
	Trail []vmath.Vec2 `json:"trail" msgpack:"trail"`

	// Scored latches once the ball has crossed a goal line and been counted
	Scored bool `json:"scored" msgpack:"scored"`
}

// GhostActive reports whether the ghost window is open at now
func (b *Ball) GhostActive(now time.Time) bool {
	return b.Ghost && !b.GhostEnd.IsZero() && now.Before(b.GhostEnd)
}

// Speed returns velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

func (b Ball) clone() Ball {
	if b.Trail != nil {
		b.Trail = append([]vmath.Vec2(nil), b.Trail...)
	}
	return b
}
