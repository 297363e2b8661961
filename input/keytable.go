// Package input maps terminal keys to paddle intents and match commands
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/engine"
)

// Action discriminates what a key press means
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionServe // start when idle or over, otherwise pause toggle
	ActionPause
	ActionReset
	ActionMute
	ActionQuit
)

// KeyTable holds key bindings; runes are matched case-insensitively
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEscape: ActionPause,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			'k': ActionUp,
			's': ActionDown,
			'j': ActionDown,
			' ': ActionServe,
			'p': ActionPause,
			'r': ActionReset,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// IntentFor returns the paddle direction for movement actions
func IntentFor(a Action) (core.Intent, bool) {
	switch a {
	case ActionUp:
		return core.IntentUp, true
	case ActionDown:
		return core.IntentDown, true
	}
	return core.IntentNone, false
}

// CommandFor returns the engine command for an action given the current status
func CommandFor(a Action, st core.Status) (engine.Command, bool) {
	switch a {
	case ActionServe:
		if st == core.StatusIdle || st == core.StatusGameOver {
			return engine.CmdStart, true
		}
		return engine.CmdPause, true
	case ActionPause:
		return engine.CmdPause, true
	case ActionReset:
		return engine.CmdReset, true
	case ActionQuit:
		return engine.CmdQuit, true
	}
	return 0, false
}
