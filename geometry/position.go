package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned when a size is malformed or has a non-positive dimension.
var ErrInvalidSize = errors.New("invalid size")

// Position is a grid coordinate.
type Position struct {
	X int `json:"x"` // Column
	Y int `json:"y"` // Row
}

// Translate returns the position one unit away in direction d.
// Callers bounds-check before translating toward X=0 or Y=0; the result is not clamped.
func (p Position) Translate(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Advance returns the position n units away in direction d.
func (p Position) Advance(d Direction, n int) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds grid extents.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewSize returns a size, rejecting non-positive dimensions.
func NewSize(width, height int) (Size, error) {
	s := Size{Width: width, Height: height}
	if err := s.Validate(); err != nil {
		return Size{}, err
	}
	return s, nil
}

// maxSide is the largest dimension whose rendered extent 2n+1 fits in an int.
const maxSide = (math.MaxInt - 1) / 2

// Validate checks both dimensions are positive and the rendered extents
// (2W+1)x(2H+1), and so the cell count, fit in an int.
func (s Size) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.Width > maxSide || s.Height > maxSide {
		return fmt.Errorf("%w: %dx%d is too large", ErrInvalidSize, s.Width, s.Height)
	}
	scaledW, scaledH := s.Width*2+1, s.Height*2+1
	if scaledW > math.MaxInt/scaledH {
		return fmt.Errorf("%w: %dx%d is too large", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// ParseSize parses the WxH form, e.g. "10x20".
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q is not of the form WxH", ErrInvalidSize, s)
	}
	width, err := parseDimension(w)
	if err != nil {
		return Size{}, fmt.Errorf("%w: width %q", ErrInvalidSize, w)
	}
	height, err := parseDimension(h)
	if err != nil {
		return Size{}, fmt.Errorf("%w: height %q", ErrInvalidSize, h)
	}
	return NewSize(width, height)
}

// parseDimension accepts plain decimal digits only, so "+3" and " 3" are rejected.
func parseDimension(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, ErrInvalidSize
	}
	return strconv.Atoi(s)
}

// MaxPosition returns the coordinate of the bottom-right cell.
func (s Size) MaxPosition() Position {
	return Position{X: s.Width - 1, Y: s.Height - 1}
}

// Area returns the number of cells.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether p lies inside the extents.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Scaled returns the rendered extents: one column/row per cell plus one per wall line.
func (s Size) Scaled() Size {
	return Size{Width: s.Width*2 + 1, Height: s.Height*2 + 1}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
