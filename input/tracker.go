package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/neon-pong/core"
)

// Tracker turns key repeats into a held intent
// Terminals report presses and auto-repeats but no releases. A fresh press is held
// for the initial window, which covers the delay before auto-repeat begins; once
// repeats arrive each one only needs to land within the shorter repeat window
type Tracker struct {
	mu        sync.Mutex
	initial   time.Duration
	repeat    time.Duration
	intent    core.Intent
	last      time.Time
	repeating bool
}

func NewTracker(initial, repeat time.Duration) *Tracker {
	return &Tracker{initial: initial, repeat: repeat}
}

// Press records a movement key at now; a different direction starts a new hold
func (t *Tracker) Press(intent core.Intent, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expire(now)
	t.repeating = intent == t.intent
	t.intent = intent
	t.last = now
}

// Release forces neutral; used on focus loss and match commands
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.intent = core.IntentNone
	t.repeating = false
}

// Intent returns the held intent at now
func (t *Tracker) Intent(now time.Time) core.Intent {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expire(now)
	return t.intent
}

func (t *Tracker) expire(now time.Time) {
	if t.intent == core.IntentNone {
		return
	}
	window := t.initial
	if t.repeating {
		window = t.repeat
	}
	if now.Sub(t.last) > window {
		t.intent = core.IntentNone
		t.repeating = false
	}
}
