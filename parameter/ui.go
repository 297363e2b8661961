package parameter

import "time"

// Input
const (
	// Terminals report presses and auto-repeats but no releases
	// KeyRepeatDelay keeps a fresh press alive until auto-repeat starts; 500ms is the common desktop default
	// KeyHoldWindow keeps it alive between repeats once they arrive
	KeyRepeatDelay = 500 * time.Millisecond
	KeyHoldWindow  = 120 * time.Millisecond
)

// Spectate
const (
	// SpectateBroadcastEvery sends one snapshot per N ticks
	SpectateBroadcastEvery = 3

	SpectateWriteWait  = 2 * time.Second
	SpectateSendBuffer = 8
	SpectateReadLimit  = 512
	SpectatePongWait   = 30 * time.Second
	SpectatePingPeriod = SpectatePongWait * 9 / 10
)

// Event Queue
const (
	// EventQueueSize bounds the events one tick may emit before the oldest are overwritten
	EventQueueSize = 256
)

// Audio
const (
	AudioSampleRate = 44100
	AudioBufferTime = 100 * time.Millisecond
)
