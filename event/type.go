package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventPaddleHit fires when a ball reflects off a paddle
	// Trigger: engine collision routing | Payload: *PaddleHitPayload
	EventPaddleHit EventType = iota

	// EventWallBounce fires when a ball reflects off the top or bottom wall
	// Trigger: engine collision routing | Payload: *WallBouncePayload
	EventWallBounce

	// EventScore fires once per side per tick that scored
	// Trigger: engine scoring | Payload: *ScorePayload
	EventScore

	// EventPowerUpSpawned fires when a power-up appears on the field
	// Trigger: powerup.Manager.Update | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected fires when a ball collects a power-up
	// Trigger: powerup.Manager.Collect | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerUpExpired fires when a timed power-up effect ends
	// Trigger: powerup.Manager.Update | Payload: *PowerUpPayload
	EventPowerUpExpired

	// EventStatusChange fires on every status transition
	// Trigger: Start, TogglePause, Reset, win check | Payload: *StatusChangePayload
	EventStatusChange

	// EventMatchOver fires when a side reaches the winning score
	// Trigger: win check | Payload: *MatchOverPayload
	EventMatchOver

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventPaddleHit:        "PaddleHit",
	EventWallBounce:       "WallBounce",
	EventScore:            "Score",
	EventPowerUpSpawned:   "PowerUpSpawned",
	EventPowerUpCollected: "PowerUpCollected",
	EventPowerUpExpired:   "PowerUpExpired",
	EventStatusChange:     "StatusChange",
	EventMatchOver:        "MatchOver",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, eventTypeCount)
	for i := range types {
		types[i] = EventType(i)
	}
	return types
}

// GameEvent is a single informational event
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Time    time.Time
	Payload any
}
