package parameter

import "time"

// Field
const (
	// FieldWidth is the logical play field width in field units
	FieldWidth = 800

	// FieldHeight is the logical play field height in field units
	FieldHeight = 600
)

// Frame Timing
const (
	// TargetFPS is the reference update rate that motion constants are tuned for
	TargetFPS = 60

	// FrameTime is one reference frame; per-tick motion is scaled by delta/FrameTime
	FrameTime = time.Second / TargetFPS

	// MaxDelta caps a single simulated step so a stalled session cannot tunnel balls
	MaxDelta = 50 * time.Millisecond
)

// Match
const (
	// WinningScore ends the match when either side reaches it
	WinningScore = 11

	// MaxBalls caps balls in play; duplicate-ball is skipped at the cap
	MaxBalls = 8
)
