package terminal

import (
	"fmt"

	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/gdamore/tcell/v2"
)

// Builder builds a blueprint for a size and seed. A zero seed picks one.
type Builder interface {
	Build(size geometry.Size, seed int64) (*game.Blueprint, error)
}

// Viewer shows one maze at a time and regenerates it on request.
type Viewer struct {
	screen  tcell.Screen
	builder Builder
	size    geometry.Size
	styles  Styles
	current *game.Blueprint
}

// NewViewer creates a viewer over an initialized screen.
func NewViewer(s tcell.Screen, b Builder, size geometry.Size, st Styles) *Viewer {
	return &Viewer{screen: s, builder: b, size: size, styles: st}
}

// Current returns the blueprint on screen, nil before the first build.
func (v *Viewer) Current() *game.Blueprint {
	return v.current
}

// Regenerate builds a fresh maze with a new seed and repaints.
func (v *Viewer) Regenerate() error {
	bp, err := v.builder.Build(v.size, 0)
	if err != nil {
		return err
	}
	v.current = bp
	v.draw()
	return nil
}

func (v *Viewer) draw() {
	v.screen.Clear()
	if v.current != nil {
		row := Paint(v.screen, v.current.Display, v.styles)
		status := fmt.Sprintf("%s seed %d   r: regenerate   q: quit", v.size, v.current.Seed)
		PrintLine(v.screen, v.current.Display.Origin().X, row+1, status, v.styles.Status)
	}
	v.screen.Show()
}

// Run builds the first maze and handles keys until the user quits.
// r regenerates; q, Esc and Ctrl-C quit.
func (v *Viewer) Run() error {
	if err := v.Regenerate(); err != nil {
		return err
	}

	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
				if err := v.Regenerate(); err != nil {
					return err
				}
			}
		}
	}
}
