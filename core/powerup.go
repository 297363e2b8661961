package core

import (
	"time"

	"github.com/lixenwraith/neon-pong/vmath"
)

// PowerUpKind is the closed set of power-up effects
type PowerUpKind uint8

const (
	PowerUpExtendPaddle PowerUpKind = iota
	PowerUpDuplicateBall
	PowerUpGhostBall

	powerUpKindCount
)

// PowerUpKinds lists every kind in declaration order
var PowerUpKinds = [powerUpKindCount]PowerUpKind{
	PowerUpExtendPaddle,
	PowerUpDuplicateBall,
	PowerUpGhostBall,
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpExtendPaddle:
		return "LONG PADDLE"
	case PowerUpDuplicateBall:
		return "DOUBLE BALL"
	case PowerUpGhostBall:
		return "GHOST BALL"
	}
	return "UNKNOWN"
}

// Tint returns the display tint associated with a kind
func (k PowerUpKind) Tint() Tint {
	switch k {
	case PowerUpExtendPaddle:
		return TintGreen
	case PowerUpDuplicateBall:
		return TintYellow
	case PowerUpGhostBall:
		return TintPurple
	}
	return TintWhite
}

// PowerUp is a collectible on the field
// Uncollected power-ups never expire; collected ones linger for a grace window measured from Spawned
type PowerUp struct {
	ID        string      `json:"id" msgpack:"id"`
	Kind      PowerUpKind `json:"kind" msgpack:"kind"`
	Pos       vmath.Vec2  `json:"pos" msgpack:"pos"`
	Spawned   time.Time   `json:"spawned" msgpack:"spawned"`
	Collected bool        `json:"collected" msgpack:"collected"`
}
