package render

import (
	"fmt"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// Walls is the read-only view of a maze the renderer needs.
type Walls interface {
	Size() geometry.Size
	HasWall(pos geometry.Position, d geometry.Direction) bool
}

// wallSpan is the length of the segment drawn for one wall.
const wallSpan = 3

// CellToCanvas maps a maze cell to its canvas position.
func CellToCanvas(p geometry.Position) geometry.Position {
	return geometry.Position{X: p.X*2 + 1, Y: p.Y*2 + 1}
}

func (d *Display) checkSize(m Walls) error {
	if want := m.Size().Scaled(); d.size != want {
		return fmt.Errorf("%w: display is %s, maze %s needs %s", ErrSizeMismatch, d.size, m.Size(), want)
	}
	return nil
}

// DrawMaze draws the outer boundary and every walled side of every cell.
// The display must have been sized for m.
func (d *Display) DrawMaze(m Walls) error {
	if err := d.checkSize(m); err != nil {
		return err
	}

	if err := d.DrawRect(geometry.NewRectangle(geometry.Position{}, d.size), d.glyphs.Wall); err != nil {
		return err
	}

	size := m.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cell := geometry.Position{X: x, Y: y}
			for _, dir := range geometry.Directions {
				if !m.HasWall(cell, dir) {
					continue
				}
				if err := d.DrawLine(wallSegment(cell, dir), d.glyphs.Wall); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// wallSegment returns the segment crossing the boundary between cell and its
// neighbor in direction dir, centered on the point between them.
func wallSegment(cell geometry.Position, dir geometry.Direction) geometry.Vector {
	mid := CellToCanvas(cell).Translate(dir)
	perp := dir.Perpendiculars()
	return geometry.NewVector(mid.Translate(perp[0]), perp[1], wallSpan)
}

// DrawPath joins consecutive canvas positions with straight lines.
// A single position is drawn as a point.
func (d *Display) DrawPath(path []geometry.Position, symbol rune) error {
	if len(path) == 1 {
		return d.DrawPoint(path[0], symbol)
	}
	for i := 1; i < len(path); i++ {
		v, err := geometry.VectorBetween(path[i-1], path[i])
		if err != nil {
			return fmt.Errorf("path step %d: %w", i, err)
		}
		if err := d.DrawLine(v, symbol); err != nil {
			return fmt.Errorf("path step %d: %w", i, err)
		}
	}
	return nil
}

// DrawSolution draws a cell path through m and marks the entrance on the top
// border and the exit on the bottom border.
func (d *Display) DrawSolution(path []geometry.Position, m Walls) error {
	if err := d.checkSize(m); err != nil {
		return err
	}
	if len(path) == 0 {
		return nil
	}

	canvasPath := make([]geometry.Position, len(path))
	for i, p := range path {
		canvasPath[i] = CellToCanvas(p)
	}
	if err := d.DrawPath(canvasPath, d.glyphs.Path); err != nil {
		return err
	}

	entrance := CellToCanvas(geometry.Position{}).Translate(geometry.North)
	exit := CellToCanvas(m.Size().MaxPosition()).Translate(geometry.South)
	if err := d.DrawPoint(entrance, d.glyphs.Path); err != nil {
		return err
	}
	return d.DrawPoint(exit, d.glyphs.Path)
}
