package render

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidGlyph is returned when a glyph would not occupy exactly one terminal column
// or two roles share a glyph.
var ErrInvalidGlyph = errors.New("invalid glyph")

// Default glyphs.
const (
	WallGlyph  = '█'
	PathGlyph  = '•'
	BlankGlyph = ' '
)

// Glyphs are the symbols a display is drawn with.
type Glyphs struct {
	Wall  rune
	Path  rune
	Blank rune
}

// DefaultGlyphs returns the solid block wall, bullet path and space background.
func DefaultGlyphs() Glyphs {
	return Glyphs{Wall: WallGlyph, Path: PathGlyph, Blank: BlankGlyph}
}

// widthCondition measures runes the same way regardless of the user's locale.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate checks every glyph is a single-column rune and the three are distinct.
func (g Glyphs) Validate() error {
	for name, r := range map[string]rune{"wall": g.Wall, "path": g.Path, "blank": g.Blank} {
		if w := widthCondition.RuneWidth(r); w != 1 {
			return fmt.Errorf("%w: %s glyph %q is %d columns wide", ErrInvalidGlyph, name, r, w)
		}
	}
	if g.Wall == g.Path || g.Wall == g.Blank || g.Path == g.Blank {
		return fmt.Errorf("%w: wall %q, path %q and blank %q must differ", ErrInvalidGlyph, g.Wall, g.Path, g.Blank)
	}
	return nil
}
