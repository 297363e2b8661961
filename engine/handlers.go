package engine

import (
	"log"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/event"
	"github.com/lixenwraith/neon-pong/status"
)

// LogHandler writes match lifecycle events to the standard logger
type LogHandler struct{}

func (LogHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStatusChange,
		event.EventScore,
		event.EventMatchOver,
		event.EventPowerUpCollected,
	}
}

func (LogHandler) HandleEvent(_ *core.Match, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.StatusChangePayload:
		log.Printf("tick %d: status %s -> %s", ev.Tick, p.From, p.To)
	case *event.ScorePayload:
		log.Printf("tick %d: %s scored, %d-%d", ev.Tick, p.Scorer, p.PlayerScore, p.OpponentScore)
	case *event.MatchOverPayload:
		log.Printf("tick %d: match over, winner %s, %d-%d", ev.Tick, p.Winner, p.PlayerScore, p.OpponentScore)
	case *event.PowerUpPayload:
		log.Printf("tick %d: collected %s (%s)", ev.Tick, p.Kind, p.ID)
	}
}

// StatsHandler feeds event counts and per-frame observations into status.Stats
type StatsHandler struct {
	Stats *status.Stats
}

func (h StatsHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventWallBounce,
		event.EventPowerUpCollected,
	}
}

func (h StatsHandler) HandleEvent(_ *core.Match, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPaddleHit:
		h.Stats.PaddleHits.Add(1)
	case event.EventWallBounce:
		h.Stats.WallBounces.Add(1)
	case event.EventPowerUpCollected:
		h.Stats.PowerUpsCollected.Add(1)
	}
}

// ObserveFrame is an OnFrame hook
func (h StatsHandler) ObserveFrame(m *core.Match) {
	h.Stats.Ticks.Add(1)
	h.Stats.ObserveDelta(m.Delta)
	h.Stats.ObserveBalls(len(m.Balls))
}

// ActiveEffectLabel names the most prominent power-up effect on the field, "" when none
// Priority: extended paddle, then any ghost ball, then multiple balls
func ActiveEffectLabel(m *core.Match) string {
	if m.Player.Extended {
		return core.PowerUpExtendPaddle.String()
	}
	for i := range m.Balls {
		if m.Balls[i].Ghost {
			return core.PowerUpGhostBall.String()
		}
	}
	if len(m.Balls) > 1 {
		return core.PowerUpDuplicateBall.String()
	}
	return ""
}
