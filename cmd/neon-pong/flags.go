package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lixenwraith/neon-pong/config"
)

type options struct {
	configPath   string
	seed         uint64
	debug        bool
	mute         bool
	spectate     string
	color        string
	winningScore int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("neon-pong", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "TOML file overriding the default tuning")
	fs.Uint64Var(&o.seed, "seed", 0, "Gameplay random seed (0: config value, else time-based)")
	fs.BoolVar(&o.debug, "debug", false, "Write logs/neon-pong.log and show the stats line")
	fs.BoolVar(&o.mute, "mute", false, "Start with sound muted")
	fs.StringVar(&o.spectate, "spectate", "", "Serve the spectator feed on this address, e.g. :8081")
	fs.StringVar(&o.color, "color", "auto", "Color mode: auto, truecolor, mono")
	fs.IntVar(&o.winningScore, "winning-score", 0, "Points needed to win (0: config value)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch o.color {
	case "auto", "truecolor", "mono":
	default:
		return options{}, fmt.Errorf("unknown color mode %q", o.color)
	}
	return o, nil
}

// buildConfig layers the config file, then flags, over the defaults
func buildConfig(o options, now time.Time) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(now.UnixNano())
	}
	if o.winningScore != 0 {
		cfg.Match.WinningScore = o.winningScore
	}
	if o.spectate != "" {
		cfg.Spectate.Addr = o.spectate
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// useColor resolves the color flag against what the terminal reports
func useColor(mode string, terminalColors int) bool {
	switch mode {
	case "truecolor":
		return true
	case "mono":
		return false
	}
	return terminalColors >= 256
}
