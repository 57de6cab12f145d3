package game

import "fmt"

// Side identifies which end of the table a paddle guards
type Side int

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

// Player returns the scoreboard index of the player on this side
func (s Side) Player() Player {
	if s < 0 {
		return PlayerLeft
	}
	return PlayerRight
}

// Paddle is a player's bat. Input only sets its direction; it moves in Update.
type Paddle struct {
	table *Table
	side  Side

	// Position is the paddle center
	Position Vec2

	halfSize  Vec2
	speed     float64
	offset    float64
	direction int
}

// NewPaddle creates a centered, stopped paddle on the given side of the table
func NewPaddle(table *Table, side Side, config Config) *Paddle {
	if side != SideLeft && side != SideRight {
		panic(fmt.Sprintf("game: invalid paddle side %d", side))
	}
	p := &Paddle{
		table:    table,
		side:     side,
		halfSize: config.PaddleSize.Scale(0.5),
		speed:    config.PaddleSpeed,
		offset:   config.PaddleOffset,
	}
	p.Reset()
	return p
}

// Side returns the side of the table this paddle guards
func (p *Paddle) Side() Side { return p.side }

// HalfSize returns half the paddle's width and height
func (p *Paddle) HalfSize() Vec2 { return p.halfSize }

// Size returns the full paddle width and height
func (p *Paddle) Size() Vec2 { return p.halfSize.Scale(2) }

// Direction returns the current vertical intent: +1 up, -1 down, 0 still
func (p *Paddle) Direction() int { return p.direction }

// Up starts moving the paddle up on the next update
func (p *Paddle) Up() { p.direction = 1 }

// Down starts moving the paddle down on the next update
func (p *Paddle) Down() { p.direction = -1 }

// Stop halts the paddle on the next update
func (p *Paddle) Stop() { p.direction = 0 }

// SetDirection sets the vertical intent directly. Values outside {-1, 0, 1} panic.
func (p *Paddle) SetDirection(direction int) {
	if direction < -1 || direction > 1 {
		panic(fmt.Sprintf("game: paddle direction must be -1, 0 or 1, got %d", direction))
	}
	p.direction = direction
}

// Reset re-centers the paddle on its side and stops it
func (p *Paddle) Reset() {
	p.Position = Vec2{X: p.offset * float64(p.side)}
	p.Stop()
}

// MaxOffset returns how far the paddle center may travel from the table's horizontal center line
func (p *Paddle) MaxOffset() float64 {
	return p.table.InnerSize().Y/2 - p.halfSize.Y
}

// Update moves the paddle by its direction and keeps it between the walls
func (p *Paddle) Update(deltaTime float64) {
	p.Position.Y += p.speed * deltaTime * float64(p.direction)

	maxDist := p.MaxOffset()
	if p.Position.Y > maxDist {
		p.Position.Y = maxDist
	} else if p.Position.Y < -maxDist {
		p.Position.Y = -maxDist
	}
}
