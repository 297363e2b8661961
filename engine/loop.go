package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/event"
)

// Command is a discrete control input applied at the start of the next tick
type Command uint8

const (
	CmdStart Command = iota + 1
	CmdPause
	CmdReset
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdReset:
		return "reset"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

const commandBuffer = 16

// Loop drives an Engine: drain commands, tick, dispatch events, run frame hooks
// Everything except Send, Latest and Engine().SetIntent runs on the Run goroutine
type Loop struct {
	engine    *Engine
	clock     Clock
	frameTime time.Duration

	commands chan Command
	queue    *event.Queue
	router   *event.Router[*core.Match]
	hooks    []func(*core.Match)

	latest atomic.Pointer[core.Match]
}

// NewLoop binds a loop to an engine; queue should be the one passed to the engine via WithQueue
func NewLoop(e *Engine, clock Clock, queue *event.Queue) *Loop {
	if queue == nil {
		queue = event.NewQueue()
	}
	l := &Loop{
		engine:    e,
		clock:     clock,
		frameTime: e.cfg.Match.FrameTime,
		commands:  make(chan Command, commandBuffer),
		queue:     queue,
		router:    event.NewRouter[*core.Match](queue),
	}
	snap := e.Snapshot()
	l.latest.Store(&snap)
	return l
}

func (l *Loop) Engine() *Engine {
	return l.engine
}

// Router exposes handler registration; register before Run
func (l *Loop) Router() *event.Router[*core.Match] {
	return l.router
}

// OnFrame registers a hook receiving every post-tick snapshot; register before Run
func (l *Loop) OnFrame(fn func(*core.Match)) {
	l.hooks = append(l.hooks, fn)
}

// Send queues a command without blocking; false when the buffer is full
func (l *Loop) Send(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		return false
	}
}

// Latest returns the most recent published snapshot; safe from any goroutine, do not mutate
func (l *Loop) Latest() *core.Match {
	return l.latest.Load()
}

// Step runs one iteration at the clock's current time
// Returns false once CmdQuit has been received
func (l *Loop) Step() bool {
	now := l.clock.Now()

drain:
	for {
		select {
		case cmd := <-l.commands:
			if !l.apply(cmd, now) {
				return false
			}
		default:
			break drain
		}
	}

	l.engine.Tick(now)

	snap := l.engine.Snapshot()
	l.latest.Store(&snap)

	l.router.DispatchAll(&snap)
	for _, fn := range l.hooks {
		fn(&snap)
	}
	return true
}

func (l *Loop) apply(cmd Command, now time.Time) bool {
	switch cmd {
	case CmdStart:
		l.engine.Start(now)
	case CmdPause:
		l.engine.TogglePause(now)
	case CmdReset:
		l.engine.Reset(now)
	case CmdQuit:
		return false
	}
	return true
}

// Run ticks at FrameTime until ctx is cancelled or CmdQuit arrives
// Returns ctx.Err() on cancellation, nil on quit
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !l.Step() {
				return nil
			}
		}
	}
}
