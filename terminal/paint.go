// Package terminal shows rendered mazes on a tcell screen.
package terminal

import (
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/ByerDev/mazegeneratorsolver/render"
	"github.com/gdamore/tcell/v2"
)

// Styles color each kind of glyph.
type Styles struct {
	Wall   tcell.Style
	Path   tcell.Style
	Blank  tcell.Style
	Status tcell.Style
}

// DefaultStyles paints walls white and the path green.
func DefaultStyles() Styles {
	return Styles{
		Wall:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Path:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Blank:  tcell.StyleDefault,
		Status: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

func (st Styles) of(g render.Glyphs, r rune) tcell.Style {
	switch r {
	case g.Wall:
		return st.Wall
	case g.Path:
		return st.Path
	default:
		return st.Blank
	}
}

// Paint draws d onto s at the display's origin. Pixels past the screen edge are
// clipped. It returns the first screen row below the canvas.
func Paint(s tcell.Screen, d *render.Display, st Styles) int {
	origin, size, glyphs := d.Origin(), d.Size(), d.Glyphs()
	w, h := s.Size()

	for y := 0; y < size.Height; y++ {
		sy := origin.Y + y
		if sy >= h {
			break
		}
		for x := 0; x < size.Width; x++ {
			sx := origin.X + x
			if sx >= w {
				break
			}
			r, err := d.At(geometry.Position{X: x, Y: y})
			if err != nil {
				continue
			}
			s.SetContent(sx, sy, r, nil, st.of(glyphs, r))
		}
	}
	return origin.Y + size.Height
}

// PrintLine writes text on row y starting at column x, clipped to the screen.
func PrintLine(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
