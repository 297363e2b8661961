package event

import "github.com/lixenwraith/neon-pong/core"

type PaddleHitPayload struct {
	Side  core.Side
	Speed float64 // ball speed after reflection
}

type WallBouncePayload struct {
	Top bool
}

type ScorePayload struct {
	Scorer        core.Side
	PlayerScore   int
	OpponentScore int
}

type PowerUpPayload struct {
	ID   string // empty for expiry events
	Kind core.PowerUpKind
}

type StatusChangePayload struct {
	From, To core.Status
}

type MatchOverPayload struct {
	Winner        core.Side
	PlayerScore   int
	OpponentScore int
}
