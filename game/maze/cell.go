package maze

import "github.com/ByerDev/mazegeneratorsolver/geometry"

// Cell represents a single cell in a maze grid.
// It holds one wall flag per direction; a set flag means that side is impassable.
type Cell struct {
	walls [4]bool
}

// NewCell returns a cell with all four sides walled or all four open.
func NewCell(walled bool) Cell {
	return Cell{walls: [4]bool{walled, walled, walled, walled}}
}

// HasWall returns true if there is a wall on side d of the cell.
func (c *Cell) HasWall(d geometry.Direction) bool {
	return c.walls[d]
}

// SetWall sets the presence of a wall on side d of the cell.
func (c *Cell) SetWall(d geometry.Direction, hasWall bool) {
	c.walls[d] = hasWall
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool {
	return c.walls[geometry.North]
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool {
	return c.walls[geometry.South]
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool {
	return c.walls[geometry.East]
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool {
	return c.walls[geometry.West]
}

// WallCount returns how many sides are walled.
func (c *Cell) WallCount() int {
	n := 0
	for _, w := range c.walls {
		if w {
			n++
		}
	}
	return n
}
