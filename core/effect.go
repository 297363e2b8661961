package core

import (
	"time"

	"github.com/lixenwraith/neon-pong/vmath"
)

// Tint is a logical color tag; frontends map it to their palette
type Tint uint8

const (
	TintCyan Tint = iota
	TintMagenta
	TintYellow
	TintRed
	TintGreen
	TintPurple
	TintWhite
)

// Particle is a cosmetic spark; Life decays from 1 to 0 over MaxLife seconds
type Particle struct {
	Pos     vmath.Vec2 `json:"pos" msgpack:"pos"`
	Vel     vmath.Vec2 `json:"vel" msgpack:"vel"`
	Tint    Tint       `json:"tint" msgpack:"tint"`
	Size    float64    `json:"size" msgpack:"size"`
	Life    float64    `json:"life" msgpack:"life"`
	MaxLife float64    `json:"maxLife" msgpack:"maxLife"`
}

// ScreenShake is a time-boxed camera jitter
type ScreenShake struct {
	Active    bool          `json:"active" msgpack:"active"`
	Intensity float64       `json:"intensity" msgpack:"intensity"`
	Duration  time.Duration `json:"duration" msgpack:"duration"`
	Start     time.Time     `json:"start" msgpack:"start"`
}

// Glitch is a time-boxed scanline distortion triggered on scoring
type Glitch struct {
	Active   bool          `json:"active" msgpack:"active"`
	Duration time.Duration `json:"duration" msgpack:"duration"`
	Start    time.Time     `json:"start" msgpack:"start"`
}
