package game

import (
	"fmt"
	"math"
	"math/rand"
)

// Ball is the moving puck. It integrates in sub-steps no longer than its own
// radius and resolves at most one collision per update.
//
// A ball is parked (off the table, zero velocity) after Reset, in play after
// Serve, and stops dead the moment it crosses a goal line.
type Ball struct {
	table    *Table
	paddles  []*Paddle
	listener ScoreListener
	rng      *rand.Rand
	onEvent  func(Event)

	// Position is the ball center
	Position Vec2

	// Velocity is in table units per second
	Velocity Vec2

	radius      float64
	startSpeed  float64
	speedup     float64
	speedupHits int
	hitCount    int
	cooldown    float64

	cooldownDuration float64
	curveExponent    float64
	maxBounceAngle   float64
	serveSpread      float64
}

// NewBall creates a parked ball. The table and paddles are read, never owned;
// listener receives scoring notifications.
func NewBall(table *Table, paddles []*Paddle, listener ScoreListener, config Config, rng *rand.Rand) *Ball {
	if config.BallRadius <= 0 {
		panic(fmt.Sprintf("game: ball radius must be positive, got %v", config.BallRadius))
	}
	b := &Ball{
		table:            table,
		paddles:          paddles,
		listener:         listener,
		rng:              rng,
		radius:           config.BallRadius,
		startSpeed:       config.StartSpeed,
		speedup:          config.Speedup,
		speedupHits:      config.SpeedupHits,
		cooldownDuration: config.CollisionCooldown,
		curveExponent:    config.CollisionCurveExponent,
		maxBounceAngle:   config.MaxBounceAngle,
		serveSpread:      config.ServeSpread,
	}
	b.Reset()
	return b
}

// SetEventHandler registers a callback for bounce, hit and serve cues
func (b *Ball) SetEventHandler(fn func(Event)) {
	b.onEvent = fn
}

// Radius returns the ball radius
func (b *Ball) Radius() float64 { return b.radius }

// HalfSize returns the half extents of the ball's bounding square
func (b *Ball) HalfSize() Vec2 { return Vec2{X: b.radius, Y: b.radius} }

// HitCount returns the paddle hits since the last speed increase
func (b *Ball) HitCount() int { return b.hitCount }

// Cooldown returns the seconds left before paddle collisions are checked again
func (b *Ball) Cooldown() float64 { return b.cooldown }

// Parked reports whether the ball is waiting off the table for a serve
func (b *Ball) Parked() bool {
	return b.Velocity.IsZero() && math.Abs(b.Position.X) > b.table.Size().X/2+b.radius
}

// Reset parks the ball off the table with zero velocity
func (b *Ball) Reset() {
	b.Position = Vec2{X: -b.table.Size().X}
	b.Velocity = Vec2{}
	b.hitCount = 0
	b.cooldown = 0
}

// Serve launches the ball from the table center. Direction -1 serves left,
// +1 right and 0 picks a side at random. The launch angle is uniform within
// the serve spread around the horizontal.
func (b *Ball) Serve(direction int) {
	if direction < -1 || direction > 1 {
		panic(fmt.Sprintf("game: serve direction must be -1, 0 or 1, got %d", direction))
	}
	if direction == 0 {
		direction = 1
		if b.rng.Float64() < 0.5 {
			direction = -1
		}
	}

	angle := 0.0
	if direction < 0 {
		angle = 180
	}
	angle += (b.rng.Float64()*2 - 1) * b.serveSpread

	b.Position = Vec2{}
	b.Velocity = VectorFromPolar(b.startSpeed, angle)
	b.hitCount = 0
	b.cooldown = 0
	b.emit(EventServe)
}

// Update advances the ball by deltaTime seconds
func (b *Ball) Update(deltaTime float64) {
	count, step := subSteps(b.Velocity.Scale(deltaTime), b.radius)

	for i := 0; i < count; i++ {
		b.Position = b.Position.Add(step)
		if b.collide() {
			break
		}
	}

	b.cooldown -= deltaTime
}

// stepTolerance absorbs rounding when a move is an exact multiple of the step length
const stepTolerance = 1e-9

// subSteps splits move into the fewest equal steps no longer than maxLen
func subSteps(move Vec2, maxLen float64) (int, Vec2) {
	if move.IsZero() {
		return 0, Vec2{}
	}
	count := int(math.Ceil(move.Length()/maxLen - stepTolerance))
	if count < 1 {
		count = 1
	}
	return count, move.Scale(1 / float64(count))
}

// collide resolves walls, goal lines and paddles in that order and reports whether anything was hit
func (b *Ball) collide() bool {
	maxY := b.table.InnerSize().Y/2 - b.radius
	if b.Position.Y >= maxY {
		b.bounceWall(maxY)
		return true
	} else if b.Position.Y <= -maxY {
		b.bounceWall(-maxY)
		return true
	}

	maxX := b.table.Size().X/2 + b.radius
	if b.Position.X >= maxX {
		b.Velocity = Vec2{}
		b.listener.OnScore(PlayerLeft)
		return true
	} else if b.Position.X <= -maxX {
		b.Velocity = Vec2{}
		b.listener.OnScore(PlayerRight)
		return true
	}

	if b.cooldown > 0 {
		return false
	}

	for _, paddle := range b.paddles {
		projection, ok := RectOverlap(b.Position, b.HalfSize(), paddle.Position, paddle.HalfSize())
		if !ok {
			continue
		}
		b.Position = b.Position.Add(projection)
		b.Position.Y = math.Max(-maxY, math.Min(maxY, b.Position.Y))
		normal := EllipticNormal(b.Position, paddle.Position, b.curveExponent)
		b.Velocity = b.Velocity.Reflect(normal)
		b.hitPaddle(paddle)
		return true
	}

	return false
}

func (b *Ball) bounceWall(y float64) {
	b.Position.Y = y
	b.Velocity.Y = -b.Velocity.Y
	b.cooldown = 0
	b.emit(EventWallBounce)
}

func (b *Ball) hitPaddle(paddle *Paddle) {
	b.Velocity = b.clampBounce(b.Velocity, paddle)
	b.cooldown = b.cooldownDuration
	b.emit(EventPaddleHit)

	b.hitCount++
	if b.hitCount >= b.speedupHits {
		speed := b.Velocity.Length()
		b.Velocity = b.Velocity.ScaleToLength(speed + b.speedup)
		b.hitCount = 0
		b.emit(EventSpeedUp)
	}
}

// clampBounce keeps the velocity within maxBounceAngle of horizontal, preserving speed.
// A vertical velocity is sent away from the paddle.
func (b *Ball) clampBounce(v Vec2, paddle *Paddle) Vec2 {
	horizontal := 1.0
	switch {
	case v.X < 0:
		horizontal = -1
	case v.X == 0:
		horizontal = -float64(paddle.Side())
	}

	elevation := math.Atan2(v.Y, math.Abs(v.X)) * 180 / math.Pi
	if math.Abs(elevation) <= b.maxBounceAngle {
		return v
	}

	elevation = math.Copysign(b.maxBounceAngle, elevation)
	clamped := VectorFromPolar(v.Length(), elevation)
	clamped.X *= horizontal
	return clamped
}

func (b *Ball) emit(e Event) {
	if b.onEvent != nil {
		b.onEvent(e)
	}
}
