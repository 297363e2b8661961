package parameter

import "time"

// Paddle
const (
	PaddleWidth  = 15
	PaddleHeight = 100
	PaddleSpeed  = 8

	// PaddleMargin is the distance from the field edge to the paddle
	PaddleMargin = 30

	// PaddleExtendMultiplier scales base height while extend-paddle is active
	PaddleExtendMultiplier = 1.5
)

// Ball
const (
	BallRadius       = 10
	BallInitialSpeed = 6
	BallMaxSpeed     = 15

	// BallAcceleration is applied to speed on every paddle hit (5%)
	BallAcceleration = 1.05

	// BallTrailLength is the number of recent positions kept per ball
	BallTrailLength = 10

	// BallMaxHitOffset clamps normalized paddle hit offset to avoid degenerate deflection
	BallMaxHitOffset = 0.9

	// BallMaxBounceDeg is the deflection angle at the clamped paddle edge
	BallMaxBounceDeg = 60

	// BallServeSpreadDeg is the half-width of the random serve angle
	BallServeSpreadDeg = 45
)

// Opponent
const (
	AIBaseSpeed      = 4
	AISpeedIncrement = 0.3 // per difficulty level

	AIBaseReactionDelay      = 200 * time.Millisecond
	AIReactionDelayDecrement = 15 * time.Millisecond // per player point
	AIMinReactionDelay       = 50 * time.Millisecond

	// AIFullDelay is the reaction delay treated as full perception lag
	AIFullDelay = 200 * time.Millisecond

	AIErrorMarginBase      = 50 // field units
	AIErrorMarginDecrement = 5  // per difficulty level
	AIErrorMarginMin       = 10

	// AIDifficultyPerPoint is difficulty gained per player point
	AIDifficultyPerPoint = 0.15

	// AITargetSmoothing is the weight kept from the previous aim target
	AITargetSmoothing = 0.8

	// AIDeadZone is the distance within which the paddle holds still
	AIDeadZone = 5

	// AIMaxFolds bounds wall-bounce folding during trajectory prediction
	AIMaxFolds = 10
)

// Power-Ups
const (
	PowerUpSpawnMin = 8 * time.Second
	PowerUpSpawnMax = 13 * time.Second
	PowerUpRadius   = 20

	// PowerUpMaxActive is the uncollected count at which spawning pauses
	PowerUpMaxActive = 2

	// PowerUpExtendDuration is the extend-paddle lifetime, refreshed on re-collect
	PowerUpExtendDuration = 10 * time.Second

	// PowerUpGhostDuration is the ghost window of the collecting ball
	PowerUpGhostDuration = 1 * time.Second

	// PowerUpGrace keeps collected power-ups visible, measured from spawn time
	PowerUpGrace = 500 * time.Millisecond

	// Spawn rectangle, centered horizontally
	PowerUpAreaXMin = FieldWidth/2 - 75
	PowerUpAreaXMax = FieldWidth/2 + 75
	PowerUpAreaYMin = 100
	PowerUpAreaYMax = FieldHeight - 100
)
