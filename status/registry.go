// Package status collects runtime counters written by the engine loop and read by the HUD
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Registry holds named metrics by kind
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Metric keys
const (
	KeyTicks             = "ticks"
	KeyPaddleHits        = "paddle_hits"
	KeyWallBounces       = "wall_bounces"
	KeyPowerUpsCollected = "powerups_collected"
	KeyMaxBalls          = "max_balls"
	KeyLastDeltaMs       = "last_delta_ms"
	KeyDroppedFrames     = "spectate_dropped"
	KeyDroppedEvents     = "events_dropped"
)

// Stats caches the match counters from a Registry
type Stats struct {
	Ticks             *atomic.Int64
	PaddleHits        *atomic.Int64
	WallBounces       *atomic.Int64
	PowerUpsCollected *atomic.Int64
	MaxBalls          *atomic.Int64
	LastDeltaMs       *AtomicFloat
}

func NewStats(r *Registry) *Stats {
	return &Stats{
		Ticks:             r.Ints.Get(KeyTicks),
		PaddleHits:        r.Ints.Get(KeyPaddleHits),
		WallBounces:       r.Ints.Get(KeyWallBounces),
		PowerUpsCollected: r.Ints.Get(KeyPowerUpsCollected),
		MaxBalls:          r.Ints.Get(KeyMaxBalls),
		LastDeltaMs:       r.Floats.Get(KeyLastDeltaMs),
	}
}

// ObserveBalls raises the high-water mark of simultaneous balls
func (s *Stats) ObserveBalls(n int) {
	for {
		cur := s.MaxBalls.Load()
		if int64(n) <= cur || s.MaxBalls.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}

func (s *Stats) ObserveDelta(d time.Duration) {
	s.LastDeltaMs.Set(float64(d) / float64(time.Millisecond))
}

// Line renders every metric as "key=value" pairs in key order
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
