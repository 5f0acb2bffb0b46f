/*
Package geometry provides the grid coordinate and line-segment types shared by
maze generation, solving and rendering.

Coordinates are zero-indexed with the origin at the top-left; X grows east and
Y grows south.
*/
package geometry

// Axis identifies the horizontal or vertical axis of the grid.
type Axis int

const (
	Horizontal Axis = iota // East/West
	Vertical               // North/South
)

// String returns the name of the axis.
func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in a fixed order so that seeded runs are reproducible.
var Directions = [4]Direction{North, East, South, West}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Axis returns the axis the direction moves along.
func (d Direction) Axis() Axis {
	if d == East || d == West {
		return Horizontal
	}
	return Vertical
}

// Perpendiculars returns the two directions of the other axis, the negative one first.
func (d Direction) Perpendiculars() [2]Direction {
	if d.Axis() == Horizontal {
		return [2]Direction{North, South}
	}
	return [2]Direction{West, East}
}

// delta returns the unit step for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}
