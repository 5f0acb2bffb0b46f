package terminal

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/ByerDev/mazegeneratorsolver/render"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	s.Clear()
	t.Cleanup(s.Fini)
	return s
}

type countingBuilder struct {
	calls int
	err   error
}

func (b *countingBuilder) Build(size geometry.Size, _ int64) (*game.Blueprint, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	bp, err := game.Build(size, rand.New(rand.NewSource(int64(b.calls))), game.DefaultOptions())
	if err != nil {
		return nil, err
	}
	bp.Seed = int64(b.calls)
	return bp, nil
}

func TestPaint(t *testing.T) {
	s := newScreen(t, 20, 10)
	bp, err := game.Build(geometry.Size{Width: 2, Height: 1}, rand.New(rand.NewSource(1)), game.DefaultOptions())
	require.NoError(t, err)

	st := DefaultStyles()
	next := Paint(s, bp.Display, st)
	s.Show()
	assert.Equal(t, 1+3, next)

	rows := bp.Display.Rows()
	for y, row := range rows {
		for x, want := range []rune(row) {
			got, _, style, _ := s.GetContent(1+x, 1+y)
			assert.Equal(t, want, got, "pixel %d,%d", x, y)
			switch want {
			case render.WallGlyph:
				assert.Equal(t, st.Wall, style)
			case render.PathGlyph:
				assert.Equal(t, st.Path, style)
			}
		}
	}

	// Origin padding stays untouched.
	r, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, ' ', r)
}

func TestPaintClipsToScreen(t *testing.T) {
	s := newScreen(t, 4, 2)
	bp, err := game.Build(geometry.Size{Width: 5, Height: 5}, rand.New(rand.NewSource(1)), game.DefaultOptions())
	require.NoError(t, err)

	assert.NotPanics(t, func() { Paint(s, bp.Display, DefaultStyles()) })
	r, _, _, _ := s.GetContent(1, 1)
	assert.Equal(t, render.WallGlyph, r)
}

func TestPrintLine(t *testing.T) {
	s := newScreen(t, 5, 2)
	PrintLine(s, 2, 1, "abcdef", tcell.StyleDefault)
	PrintLine(s, 0, 5, "ignored", tcell.StyleDefault)

	var got []rune
	for x := 0; x < 5; x++ {
		r, _, _, _ := s.GetContent(x, 1)
		got = append(got, r)
	}
	assert.Equal(t, []rune("  abc"), got)
}

func TestViewer_Run(t *testing.T) {
	tests := []struct {
		name  string
		keys  []*tcell.EventKey
		calls int
	}{
		{"q quits", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)}, 1},
		{"escape quits", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)}, 1},
		{"ctrl-c quits", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)}, 1},
		{"r regenerates", []*tcell.EventKey{
			tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(t, 40, 20)
			b := &countingBuilder{}
			v := NewViewer(s, b, geometry.Size{Width: 4, Height: 3}, DefaultStyles())

			for _, ev := range tt.keys {
				require.NoError(t, s.PostEvent(ev))
			}
			require.NoError(t, v.Run())
			assert.Equal(t, tt.calls, b.calls)
			require.NotNil(t, v.Current())
			assert.Equal(t, int64(tt.calls), v.Current().Seed)

			// Top-left corner of the canvas is a wall.
			r, _, _, _ := s.GetContent(1, 1)
			assert.Equal(t, render.WallGlyph, r)
		})
	}
}

func TestViewer_BuildError(t *testing.T) {
	s := newScreen(t, 40, 20)
	boom := errors.New("boom")
	v := NewViewer(s, &countingBuilder{err: boom}, geometry.Size{Width: 2, Height: 2}, DefaultStyles())
	assert.ErrorIs(t, v.Run(), boom)
	assert.Nil(t, v.Current())
}
