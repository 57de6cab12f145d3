package game

import "fmt"

// Config holds the tuning constants for the table, paddles, ball and match flow.
// All lengths are in normalized table units, speeds in units per second.
type Config struct {
	// TableSize is the outer size of the table
	TableSize Vec2

	// WallSize is the thickness of the top and bottom walls
	WallSize float64

	// PaddleSize is the full width and height of a paddle
	PaddleSize Vec2

	// PaddleSpeed is the vertical paddle speed
	PaddleSpeed float64

	// PaddleOffset is the distance of each paddle's center from the table's vertical center line
	PaddleOffset float64

	// BallRadius is the ball's radius, also the maximum distance covered per sub-step
	BallRadius float64

	// StartSpeed is the ball speed after each serve
	StartSpeed float64

	// Speedup is added to the ball speed every SpeedupHits paddle hits
	Speedup     float64
	SpeedupHits int

	// CollisionCurveExponent shapes the elliptic paddle normal (larger is flatter)
	CollisionCurveExponent float64

	// CollisionCooldown suppresses paddle collisions for this many seconds after a paddle hit
	CollisionCooldown float64

	// MaxBounceAngle bounds the ball's deviation from horizontal after a paddle hit, in degrees
	MaxBounceAngle float64

	// ServeSpread is the half-width of the uniform serve angle distribution, in degrees
	ServeSpread float64

	// ScoreLimit is the score that wins the match
	ScoreLimit int

	// ServeDelay is the pause in seconds between a point and the next serve
	ServeDelay float64

	// BotDeadZone is the vertical distance within which a bot keeps its paddle still
	BotDeadZone float64
}

// DefaultConfig returns the standard match configuration
func DefaultConfig() Config {
	return Config{
		TableSize:              Vec2{X: 1.5, Y: 1},
		WallSize:               0.045,
		PaddleSize:             Vec2{X: 0.024, Y: 0.145},
		PaddleSpeed:            1.1,
		PaddleOffset:           0.6,
		BallRadius:             0.01,
		StartSpeed:             0.85,
		Speedup:                0.15,
		SpeedupHits:            10,
		CollisionCurveExponent: 4,
		CollisionCooldown:      0.1,
		MaxBounceAngle:         86,
		ServeSpread:            80,
		ScoreLimit:             9,
		ServeDelay:             3,
		BotDeadZone:            0.01,
	}
}

// Validate panics if the configuration cannot describe a playable table.
// A bad configuration is a construction bug, not a runtime condition.
func (c Config) Validate() {
	switch {
	case c.TableSize.X <= 0 || c.TableSize.Y <= 0:
		panic(fmt.Sprintf("game: table size must be positive, got %v", c.TableSize))
	case c.TableSize.Y-2*c.WallSize <= 0:
		panic(fmt.Sprintf("game: wall size %v leaves no inner table", c.WallSize))
	case c.BallRadius <= 0:
		panic(fmt.Sprintf("game: ball radius must be positive, got %v", c.BallRadius))
	case c.PaddleSize.X <= 0 || c.PaddleSize.Y <= 0:
		panic(fmt.Sprintf("game: paddle size must be positive, got %v", c.PaddleSize))
	case c.SpeedupHits <= 0:
		panic(fmt.Sprintf("game: speedup hits must be positive, got %d", c.SpeedupHits))
	case c.ServeSpread < 0 || c.ServeSpread >= 90:
		panic(fmt.Sprintf("game: serve spread must be in [0, 90), got %v", c.ServeSpread))
	case c.MaxBounceAngle <= 0 || c.MaxBounceAngle >= 90:
		panic(fmt.Sprintf("game: max bounce angle must be in (0, 90), got %v", c.MaxBounceAngle))
	case c.ScoreLimit <= 0:
		panic(fmt.Sprintf("game: score limit must be positive, got %d", c.ScoreLimit))
	}
}
