// Package config holds gameplay tuning with TOML overrides
// Defaults mirror the parameter package; a config file only needs the keys it changes
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/neon-pong/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete tuning set consumed by the engine and frontends
type Config struct {
	// Seed for the gameplay random source; 0 selects a time-based seed at startup
	Seed uint64 `toml:"seed"`

	Field    FieldConfig    `toml:"field"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Ball     BallConfig     `toml:"ball"`
	AI       AIConfig       `toml:"ai"`
	PowerUp  PowerUpConfig  `toml:"powerup"`
	Effect   EffectConfig   `toml:"effect"`
	Match    MatchConfig    `toml:"match"`
	Audio    AudioConfig    `toml:"audio"`
	Spectate SpectateConfig `toml:"spectate"`
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PaddleConfig struct {
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	Speed            float64 `toml:"speed"`
	Margin           float64 `toml:"margin"`
	ExtendMultiplier float64 `toml:"extend_multiplier"`
}

type BallConfig struct {
	Radius         float64 `toml:"radius"`
	InitialSpeed   float64 `toml:"initial_speed"`
	MaxSpeed       float64 `toml:"max_speed"`
	Acceleration   float64 `toml:"acceleration"`
	TrailLength    int     `toml:"trail_length"`
	MaxHitOffset   float64 `toml:"max_hit_offset"`
	MaxBounceDeg   float64 `toml:"max_bounce_deg"`
	ServeSpreadDeg float64 `toml:"serve_spread_deg"`
}

type AIConfig struct {
	BaseSpeed              float64       `toml:"base_speed"`
	SpeedIncrement         float64       `toml:"speed_increment"`
	BaseReactionDelay      time.Duration `toml:"base_reaction_delay"`
	ReactionDelayDecrement time.Duration `toml:"reaction_delay_decrement"`
	MinReactionDelay       time.Duration `toml:"min_reaction_delay"`
	FullDelay              time.Duration `toml:"full_delay"`
	ErrorMarginBase        float64       `toml:"error_margin_base"`
	ErrorMarginDecrement   float64       `toml:"error_margin_decrement"`
	ErrorMarginMin         float64       `toml:"error_margin_min"`
	DifficultyPerPoint     float64       `toml:"difficulty_per_point"`
	Smoothing              float64       `toml:"smoothing"`
	DeadZone               float64       `toml:"dead_zone"`
	MaxFolds               int           `toml:"max_folds"`
}

// Rect is an axis-aligned region in field units
type Rect struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

type PowerUpConfig struct {
	SpawnMin       time.Duration `toml:"spawn_min"`
	SpawnMax       time.Duration `toml:"spawn_max"`
	Radius         float64       `toml:"radius"`
	MaxActive      int           `toml:"max_active"`
	ExtendDuration time.Duration `toml:"extend_duration"`
	GhostDuration  time.Duration `toml:"ghost_duration"`
	Grace          time.Duration `toml:"grace"`
	Area           Rect          `toml:"area"`
}

type EffectConfig struct {
	ShakeIntensity     float64       `toml:"shake_intensity"`
	ShakeWallIntensity float64       `toml:"shake_wall_intensity"`
	ShakeDuration      time.Duration `toml:"shake_duration"`
	GlitchDuration     time.Duration `toml:"glitch_duration"`
	ParticleMaxLife    float64       `toml:"particle_max_life"`
	ParticleBaseSize   float64       `toml:"particle_base_size"`
	ParticleDrag       float64       `toml:"particle_drag"`
	MaxParticles       int           `toml:"max_particles"`
}

type MatchConfig struct {
	WinningScore int           `toml:"winning_score"`
	MaxBalls     int           `toml:"max_balls"`
	FrameTime    time.Duration `toml:"frame_time"`
	MaxDelta     time.Duration `toml:"max_delta"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type SpectateConfig struct {
	// Addr enables the spectator feed when non-empty, e.g. ":8081"
	Addr           string `toml:"addr"`
	BroadcastEvery int    `toml:"broadcast_every"`
}

// Default returns the stock tuning
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  parameter.FieldWidth,
			Height: parameter.FieldHeight,
		},
		Paddle: PaddleConfig{
			Width:            parameter.PaddleWidth,
			Height:           parameter.PaddleHeight,
			Speed:            parameter.PaddleSpeed,
			Margin:           parameter.PaddleMargin,
			ExtendMultiplier: parameter.PaddleExtendMultiplier,
		},
		Ball: BallConfig{
			Radius:         parameter.BallRadius,
			InitialSpeed:   parameter.BallInitialSpeed,
			MaxSpeed:       parameter.BallMaxSpeed,
			Acceleration:   parameter.BallAcceleration,
			TrailLength:    parameter.BallTrailLength,
			MaxHitOffset:   parameter.BallMaxHitOffset,
			MaxBounceDeg:   parameter.BallMaxBounceDeg,
			ServeSpreadDeg: parameter.BallServeSpreadDeg,
		},
		AI: AIConfig{
			BaseSpeed:              parameter.AIBaseSpeed,
			SpeedIncrement:         parameter.AISpeedIncrement,
			BaseReactionDelay:      parameter.AIBaseReactionDelay,
			ReactionDelayDecrement: parameter.AIReactionDelayDecrement,
			MinReactionDelay:       parameter.AIMinReactionDelay,
			FullDelay:              parameter.AIFullDelay,
			ErrorMarginBase:        parameter.AIErrorMarginBase,
			ErrorMarginDecrement:   parameter.AIErrorMarginDecrement,
			ErrorMarginMin:         parameter.AIErrorMarginMin,
			DifficultyPerPoint:     parameter.AIDifficultyPerPoint,
			Smoothing:              parameter.AITargetSmoothing,
			DeadZone:               parameter.AIDeadZone,
			MaxFolds:               parameter.AIMaxFolds,
		},
		PowerUp: PowerUpConfig{
			SpawnMin:       parameter.PowerUpSpawnMin,
			SpawnMax:       parameter.PowerUpSpawnMax,
			Radius:         parameter.PowerUpRadius,
			MaxActive:      parameter.PowerUpMaxActive,
			ExtendDuration: parameter.PowerUpExtendDuration,
			GhostDuration:  parameter.PowerUpGhostDuration,
			Grace:          parameter.PowerUpGrace,
			Area: Rect{
				XMin: parameter.PowerUpAreaXMin,
				XMax: parameter.PowerUpAreaXMax,
				YMin: parameter.PowerUpAreaYMin,
				YMax: parameter.PowerUpAreaYMax,
			},
		},
		Effect: EffectConfig{
			ShakeIntensity:     parameter.ShakeIntensity,
			ShakeWallIntensity: parameter.ShakeWallIntensity,
			ShakeDuration:      parameter.ShakeDuration,
			GlitchDuration:     parameter.GlitchDuration,
			ParticleMaxLife:    parameter.ParticleMaxLife,
			ParticleBaseSize:   parameter.ParticleBaseSize,
			ParticleDrag:       parameter.ParticleDrag,
			MaxParticles:       parameter.ParticleMaxCount,
		},
		Match: MatchConfig{
			WinningScore: parameter.WinningScore,
			MaxBalls:     parameter.MaxBalls,
			FrameTime:    parameter.FrameTime,
			MaxDelta:     parameter.MaxDelta,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1,
		},
		Spectate: SpectateConfig{
			BroadcastEvery: parameter.SpectateBroadcastEvery,
		},
	}
}

// Load decodes a TOML file over the defaults and validates the result
// Keys not known to Config are rejected so typos do not silently fall back to defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges the engine relies on
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive")
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.Height*c.Paddle.ExtendMultiplier <= c.Field.Height, "extended paddle must fit the field")
	check(c.Paddle.ExtendMultiplier >= 1, "paddle.extend_multiplier must be >= 1")
	check(c.Paddle.Speed >= 0, "paddle.speed must not be negative")
	check(c.Ball.Radius > 0, "ball.radius must be positive")
	check(c.Ball.InitialSpeed > 0 && c.Ball.InitialSpeed <= c.Ball.MaxSpeed, "ball speeds must satisfy 0 < initial <= max")
	check(c.Ball.Acceleration >= 1, "ball.acceleration must be >= 1")
	check(c.Ball.TrailLength >= 0, "ball.trail_length must not be negative")
	check(c.Ball.MaxHitOffset > 0 && c.Ball.MaxHitOffset < 1, "ball.max_hit_offset must be in (0, 1)")
	check(c.Ball.MaxBounceDeg > 0 && c.Ball.MaxBounceDeg < 90, "ball.max_bounce_deg must be in (0, 90)")
	check(c.AI.MinReactionDelay <= c.AI.BaseReactionDelay, "ai.min_reaction_delay must not exceed base")
	check(c.AI.FullDelay > 0, "ai.full_delay must be positive")
	check(c.AI.Smoothing >= 0 && c.AI.Smoothing < 1, "ai.smoothing must be in [0, 1)")
	check(c.AI.MaxFolds >= 0, "ai.max_folds must not be negative")
	check(c.PowerUp.SpawnMin > 0 && c.PowerUp.SpawnMin <= c.PowerUp.SpawnMax, "powerup spawn interval must satisfy 0 < min <= max")
	check(c.PowerUp.MaxActive >= 0, "powerup.max_active must not be negative")
	check(c.PowerUp.Area.XMin <= c.PowerUp.Area.XMax && c.PowerUp.Area.YMin <= c.PowerUp.Area.YMax, "powerup.area min must not exceed max")
	check(c.Effect.ShakeDuration > 0 && c.Effect.GlitchDuration > 0, "effect durations must be positive")
	check(c.Effect.ParticleMaxLife > 0, "effect.particle_max_life must be positive")
	check(c.Match.WinningScore >= 1, "match.winning_score must be >= 1")
	check(c.Match.MaxBalls >= 1, "match.max_balls must be >= 1")
	check(c.Match.FrameTime > 0 && c.Match.MaxDelta >= c.Match.FrameTime, "match timing must satisfy 0 < frame_time <= max_delta")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1]")
	check(c.Spectate.BroadcastEvery >= 1, "spectate.broadcast_every must be >= 1")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
