/*
Package maze provides tools for creating, carving and solving rectangular mazes.

It defines the `Maze` structure, a row-major grid of `Cell` objects that track which
of their four sides are walled. A fresh maze is fully walled; the `Generator` carves
it into a perfect maze with a randomized iterative backtracker, and the `Solver`
finds a route from the entrance (0,0) to the exit in the bottom-right corner.

Walls are always opened in matched pairs so the two cells on either side of a wall
agree about it, and the outer boundary is never carved.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrOutOfBounds      = errors.New("position is outside the maze")
	ErrBoundaryWall     = errors.New("boundary walls cannot be opened")
)

// Maze is a rectangular grid of cells stored in a single row-major slice.
type Maze struct {
	size  geometry.Size
	cells []Cell
}

// New initializes a fully walled maze of the given size.
func New(size geometry.Size) (*Maze, error) {
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}

	cells := make([]Cell, size.Area())
	for i := range cells {
		cells[i] = NewCell(true)
	}

	return &Maze{size: size, cells: cells}, nil
}

// Size returns the extents of the maze.
func (m *Maze) Size() geometry.Size {
	return m.size
}

// Start returns the entrance cell.
func (m *Maze) Start() geometry.Position {
	return geometry.Position{}
}

// Goal returns the exit cell.
func (m *Maze) Goal() geometry.Position {
	return m.size.MaxPosition()
}

// InBound reports whether pos is a cell of the maze.
func (m *Maze) InBound(pos geometry.Position) bool {
	return m.size.Contains(pos)
}

func (m *Maze) index(pos geometry.Position) int {
	return pos.Y*m.size.Width + pos.X
}

// Cell returns a copy of the cell at pos.
func (m *Maze) Cell(pos geometry.Position) (Cell, error) {
	if !m.InBound(pos) {
		return Cell{}, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return m.cells[m.index(pos)], nil
}

// HasWall reports whether side d of the cell at pos is walled.
// Positions outside the maze are solid.
func (m *Maze) HasWall(pos geometry.Position, d geometry.Direction) bool {
	if !m.InBound(pos) {
		return true
	}
	return m.cells[m.index(pos)].HasWall(d)
}

// Neighbor returns the cell adjacent to pos in direction d, if it lies inside the maze.
func (m *Maze) Neighbor(pos geometry.Position, d geometry.Direction) (geometry.Position, bool) {
	if !m.InBound(pos) {
		return geometry.Position{}, false
	}
	switch {
	case d == geometry.North && pos.Y == 0,
		d == geometry.West && pos.X == 0,
		d == geometry.South && pos.Y == m.size.Height-1,
		d == geometry.East && pos.X == m.size.Width-1:
		return geometry.Position{}, false
	}
	return pos.Translate(d), true
}

// OpenWall removes the wall between pos and its neighbor in direction d on both sides.
func (m *Maze) OpenWall(pos geometry.Position, d geometry.Direction) error {
	if !m.InBound(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	next, ok := m.Neighbor(pos, d)
	if !ok {
		return fmt.Errorf("%w: %s side of %s", ErrBoundaryWall, d, pos)
	}

	m.cells[m.index(pos)].SetWall(d, false)
	m.cells[m.index(next)].SetWall(d.Opposite(), false)
	return nil
}

// IsValidMove checks if a step from pos in direction d stays inside the maze
// and crosses no wall on either side.
func (m *Maze) IsValidMove(pos geometry.Position, d geometry.Direction) bool {
	next, ok := m.Neighbor(pos, d)
	if !ok {
		return false
	}
	return !m.HasWall(pos, d) && !m.HasWall(next, d.Opposite())
}

// OpenCount returns the number of opened internal walls, each pair counted once.
func (m *Maze) OpenCount() int {
	n := 0
	for y := 0; y < m.size.Height; y++ {
		for x := 0; x < m.size.Width; x++ {
			pos := geometry.Position{X: x, Y: y}
			if m.IsValidMove(pos, geometry.East) {
				n++
			}
			if m.IsValidMove(pos, geometry.South) {
				n++
			}
		}
	}
	return n
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	wall := func(walled bool, solid, open string) string {
		if walled {
			return solid
		}
		return open
	}

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.size.Width; x++ {
		c := &m.cells[m.index(geometry.Position{X: x})]
		b.WriteString(wall(c.HasNorthWall(), "---+", "   +"))
	}
	b.WriteString("\n")

	for y := 0; y < m.size.Height; y++ {
		// Cell rows
		b.WriteString(wall(m.cells[m.index(geometry.Position{Y: y})].HasWestWall(), "|", " "))
		for x := 0; x < m.size.Width; x++ {
			c := &m.cells[m.index(geometry.Position{X: x, Y: y})]
			b.WriteString("   " + wall(c.HasEastWall(), "|", " "))
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < m.size.Width; x++ {
			c := &m.cells[m.index(geometry.Position{X: x, Y: y})]
			b.WriteString(wall(c.HasSouthWall(), "---+", "   +"))
		}
		b.WriteString("\n")
	}

	return b.String()
}
