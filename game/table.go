package game

import "fmt"

// Table is the static arena: outer bounds plus the play area left after the walls.
type Table struct {
	size      Vec2
	wallSize  float64
	innerSize Vec2
}

// NewTable creates a table centered on the origin.
// It panics if the size is not positive or the walls leave no inner area.
func NewTable(size Vec2, wallSize float64) *Table {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("game: table size must be positive, got %v", size))
	}
	inner := Vec2{X: size.X - 2*wallSize, Y: size.Y - 2*wallSize}
	if inner.Y <= 0 {
		panic(fmt.Sprintf("game: wall size %v leaves no inner table", wallSize))
	}
	return &Table{
		size:      size,
		wallSize:  wallSize,
		innerSize: inner,
	}
}

// Size returns the outer size
func (t *Table) Size() Vec2 { return t.size }

// WallSize returns the wall thickness
func (t *Table) WallSize() float64 { return t.wallSize }

// InnerSize returns the size of the play area inside the walls
func (t *Table) InnerSize() Vec2 { return t.innerSize }
