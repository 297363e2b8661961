package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-pong/audio"
	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/engine"
	"github.com/lixenwraith/neon-pong/event"
	"github.com/lixenwraith/neon-pong/input"
	"github.com/lixenwraith/neon-pong/parameter"
	"github.com/lixenwraith/neon-pong/render"
	"github.com/lixenwraith/neon-pong/spectate"
	"github.com/lixenwraith/neon-pong/status"
	"github.com/lixenwraith/neon-pong/vmath"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)

	cfg, err := buildConfig(opts, time.Now())
	if err == nil {
		err = run(cfg, opts)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "neon-pong: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()

	// Goroutines started via core.Go restore the terminal before reporting a panic
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		// \r\n in case the terminal is still raw
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mNEON-PONG CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	queue := event.NewQueue()
	queue.CountDropsIn(reg.Ints.Get(status.KeyDroppedEvents))
	eng := engine.New(cfg, time.Now(), engine.WithQueue(queue))
	loop := engine.NewLoop(eng, engine.SystemClock{}, queue)

	stats := engine.StatsHandler{Stats: status.NewStats(reg)}
	loop.Router().Register(engine.LogHandler{})
	loop.Router().Register(stats)

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(opts.mute)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}
	loop.Router().Register(audio.Handler{Player: sound})

	tracker := input.NewTracker(parameter.KeyRepeatDelay, parameter.KeyHoldWindow)
	palette := render.NewPalette(useColor(opts.color, screen.Colors()))
	renderer := render.New(screen, cfg.Field.Width, cfg.Field.Height, palette, vmath.NewFastRand(cfg.Seed+1))

	loop.OnFrame(stats.ObserveFrame)
	loop.OnFrame(func(m *core.Match) {
		// Intent sampled after this tick drives the next one
		eng.SetIntent(tracker.Intent(time.Now()))

		hud := render.HUD{Muted: sound.Muted()}
		if opts.debug {
			hud.Debug = reg.Line()
		}
		renderer.Draw(m, m.LastFrame, hud)
	})

	if cfg.Spectate.Addr != "" {
		hub := spectate.NewHub(cfg.Spectate, reg)
		loop.OnFrame(hub.OnFrame)
		core.Go(func() {
			if err := hub.ListenAndServe(ctx, cfg.Spectate.Addr); err != nil {
				log.Printf("spectate: %v", err)
			}
		})
		log.Printf("spectate: serving %s%s", cfg.Spectate.Addr, spectate.Path)
	}

	core.Go(func() {
		pollInput(screen, input.DefaultKeyTable(), tracker, loop, sound)
	})

	log.Printf("neon-pong started: seed %d, first to %d", cfg.Seed, cfg.Match.WinningScore)
	err = loop.Run(ctx)
	log.Printf("neon-pong stopped after %d ticks", stats.Stats.Ticks.Load())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput feeds terminal events to handleEvent until the screen is finalized
func pollInput(screen tcell.Screen, keys *input.KeyTable, tracker *input.Tracker, loop *engine.Loop, sound *audio.SoundManager) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		handleEvent(ev, keys, tracker, loop, sound)
	}
}

// handleEvent routes one key or focus event
// Terminals never report key releases, so losing focus or issuing a command drops any held direction
func handleEvent(ev tcell.Event, keys *input.KeyTable, tracker *input.Tracker, loop *engine.Loop, sound *audio.SoundManager) {
	switch ev := ev.(type) {
	case *tcell.EventFocus:
		if !ev.Focused {
			tracker.Release()
		}
	case *tcell.EventKey:
		action := keys.Lookup(ev)
		if intent, ok := input.IntentFor(action); ok {
			tracker.Press(intent, ev.When())
			return
		}
		if action == input.ActionMute {
			log.Printf("muted: %t", sound.ToggleMute())
			return
		}
		if cmd, ok := input.CommandFor(action, loop.Latest().Status); ok {
			tracker.Release()
			if !loop.Send(cmd) {
				log.Printf("input: dropped %s, command buffer full", cmd)
			}
		}
	}
}
