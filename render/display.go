/*
Package render rasterizes mazes and their solutions onto a character canvas.

A `Display` holds a row-major rune buffer plus an origin offset used to pad the
printed output. Everything is drawn as axis-aligned vectors: lines, rectangles,
the maze walls and the solution path. Cell (x,y) of a maze lands on canvas
position (2x+1, 2y+1), leaving a row and a column between cells for walls.
*/
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

var (
	ErrOutOfBounds   = errors.New("drawing outside the display")
	ErrInvalidVector = errors.New("vector magnitude must be at least 1")
	ErrSizeMismatch  = errors.New("display was not sized for this maze")
)

// Display is a character canvas.
//
// Display is not safe for concurrent writes.
type Display struct {
	origin geometry.Position
	size   geometry.Size
	pixels []rune
	glyphs Glyphs
}

// NewDisplay returns a blank display of the given size.
// origin is the padding applied when printing, not a drawing offset.
func NewDisplay(origin geometry.Position, size geometry.Size, glyphs Glyphs) (*Display, error) {
	if size.Width < 1 || size.Height < 1 || size.Width > math.MaxInt/size.Height {
		return nil, fmt.Errorf("%w: %s", geometry.ErrInvalidSize, size)
	}
	if origin.X < 0 || origin.Y < 0 {
		return nil, fmt.Errorf("negative origin %s", origin)
	}
	if err := glyphs.Validate(); err != nil {
		return nil, err
	}

	pixels := make([]rune, size.Area())
	for i := range pixels {
		pixels[i] = glyphs.Blank
	}
	return &Display{origin: origin, size: size, pixels: pixels, glyphs: glyphs}, nil
}

// FromMaze returns a blank display sized to hold m.
func FromMaze(m Walls, origin geometry.Position, glyphs Glyphs) (*Display, error) {
	return NewDisplay(origin, m.Size().Scaled(), glyphs)
}

// Size returns the canvas extents.
func (d *Display) Size() geometry.Size {
	return d.size
}

// Origin returns the print padding.
func (d *Display) Origin() geometry.Position {
	return d.origin
}

// Glyphs returns the symbols the display was created with.
func (d *Display) Glyphs() Glyphs {
	return d.glyphs
}

// At returns the symbol at p.
func (d *Display) At(p geometry.Position) (rune, error) {
	if !d.size.Contains(p) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return d.pixels[p.Y*d.size.Width+p.X], nil
}

// DrawPoint writes a single symbol.
func (d *Display) DrawPoint(p geometry.Position, symbol rune) error {
	if !d.size.Contains(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	d.pixels[p.Y*d.size.Width+p.X] = symbol
	return nil
}

// DrawLine writes symbol on every cell of v, both endpoints included.
// Nothing is drawn unless the whole vector fits.
func (d *Display) DrawLine(v geometry.Vector, symbol rune) error {
	if v.Magnitude < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidVector, v.Magnitude)
	}
	start, end := v.Origin, v.End()
	if !d.size.Contains(start) || !d.size.Contains(end) {
		return fmt.Errorf("%w: %s to %s", ErrOutOfBounds, start, end)
	}

	if v.Direction.Axis() == geometry.Horizontal {
		x1, x2 := start.X, end.X
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		row := start.Y * d.size.Width
		for x := x1; x <= x2; x++ {
			d.pixels[row+x] = symbol
		}
		return nil
	}

	y1, y2 := start.Y, end.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.pixels[y*d.size.Width+start.X] = symbol
	}
	return nil
}

// DrawRect draws the four edges of r.
func (d *Display) DrawRect(r geometry.Rectangle, symbol rune) error {
	for _, v := range r.Vectors() {
		if err := d.DrawLine(v, symbol); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the canvas lines without padding.
func (d *Display) Rows() []string {
	rows := make([]string, d.size.Height)
	for y := range rows {
		rows[y] = string(d.pixels[y*d.size.Width : (y+1)*d.size.Width])
	}
	return rows
}

// String returns the canvas padded by the origin offset, one line per row.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((d.origin.Y + d.size.Height) * (d.origin.X + d.size.Width + 1))

	sb.WriteString(strings.Repeat("\n", d.origin.Y))
	pad := strings.Repeat(" ", d.origin.X)
	for _, row := range d.Rows() {
		sb.WriteString(pad)
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes the padded canvas to w.
func (d *Display) Print(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}
