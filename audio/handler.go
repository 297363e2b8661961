package audio

import (
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/event"
)

// Player is the playback surface used by Handler
type Player interface {
	Play(Sound)
}

// Handler maps game events to sound cues
type Handler struct {
	Player Player
}

func (h Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventWallBounce,
		event.EventScore,
		event.EventPowerUpCollected,
		event.EventMatchOver,
	}
}

func (h Handler) HandleEvent(_ *core.Match, ev event.GameEvent) {
	if s, ok := SoundFor(ev.Type); ok {
		h.Player.Play(s)
	}
}

// SoundFor returns the cue for an event type
func SoundFor(t event.EventType) (Sound, bool) {
	switch t {
	case event.EventPaddleHit:
		return SoundPaddle, true
	case event.EventWallBounce:
		return SoundWall, true
	case event.EventScore:
		return SoundScore, true
	case event.EventPowerUpCollected:
		return SoundPowerUp, true
	case event.EventMatchOver:
		return SoundGameOver, true
	}
	return 0, false
}
