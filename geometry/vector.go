package geometry

import (
	"errors"
	"fmt"
)

// ErrNotAligned is returned when two points do not share a row or a column.
var ErrNotAligned = errors.New("points are not axis-aligned")

// Vector is a directed, axis-aligned line segment.
// Magnitude counts cells and includes the origin, so a single point has magnitude 1.
type Vector struct {
	Origin    Position
	Direction Direction
	Magnitude int
}

// NewVector returns a vector starting at origin.
func NewVector(origin Position, direction Direction, magnitude int) Vector {
	return Vector{Origin: origin, Direction: direction, Magnitude: magnitude}
}

// VectorBetween builds the vector running from a to b inclusive.
// Equal points produce a single-cell vector pointing East.
func VectorBetween(a, b Position) (Vector, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 && dy != 0 {
		return Vector{}, fmt.Errorf("%w: %s to %s", ErrNotAligned, a, b)
	}

	var d Direction
	switch {
	case dx > 0:
		d = East
	case dx < 0:
		d = West
	case dy > 0:
		d = South
	case dy < 0:
		d = North
	default:
		d = East
	}
	return Vector{Origin: a, Direction: d, Magnitude: abs(dx) + abs(dy) + 1}, nil
}

// End returns the last cell covered by the vector.
func (v Vector) End() Position {
	return v.Origin.Advance(v.Direction, v.Magnitude-1)
}

// Reversed returns the same segment traversed from the other end.
func (v Vector) Reversed() Vector {
	return Vector{Origin: v.End(), Direction: v.Direction.Opposite(), Magnitude: v.Magnitude}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Rectangle is an axis-aligned box. Size counts cells, edges included.
type Rectangle struct {
	Origin Position
	Size   Size
}

// NewRectangle returns a rectangle whose top-left cell is origin.
func NewRectangle(origin Position, size Size) Rectangle {
	return Rectangle{Origin: origin, Size: size}
}

// Vectors returns the four edges clockwise from the top edge.
func (r Rectangle) Vectors() [4]Vector {
	top := NewVector(r.Origin, East, r.Size.Width)
	right := NewVector(top.End(), South, r.Size.Height)
	bottom := NewVector(right.End(), West, r.Size.Width)
	left := NewVector(bottom.End(), North, r.Size.Height)
	return [4]Vector{top, right, bottom, left}
}
