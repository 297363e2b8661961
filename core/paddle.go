package core

import (
	"time"

	"github.com/lixenwraith/neon-pong/vmath"
)

// Side identifies a half of the field; the player owns the left side
type Side int8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Dir returns the +X/-X egress sign for a ball leaving this side's paddle
func (s Side) Dir() float64 {
	if s == SideRight {
		return -1
	}
	return 1
}

// Paddle is one of the two paddles; Pos is the top-left corner
type Paddle struct {
	Side       Side       `json:"side" msgpack:"side"`
	Pos        vmath.Vec2 `json:"pos" msgpack:"pos"`
	Width      float64    `json:"width" msgpack:"width"`
	Height     float64    `json:"height" msgpack:"height"`
	BaseHeight float64    `json:"baseHeight" msgpack:"baseHeight"`

	// Height is BaseHeight*multiplier while Extended, BaseHeight otherwise
	Extended    bool      `json:"extended" msgpack:"extended"`
	ExtendedEnd time.Time `json:"extendedEnd" msgpack:"extendedEnd"`
}

// CenterY returns the vertical center
func (p *Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// Face returns the X coordinate of the surface facing the field center
func (p *Paddle) Face() float64 {
	if p.Side == SideLeft {
		return p.Pos.X + p.Width
	}
	return p.Pos.X
}
