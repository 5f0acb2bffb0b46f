package maze

import (
	"fmt"
	"testing"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstChoice always picks the first candidate.
type firstChoice struct{}

func (firstChoice) Intn(int) int { return 0 }

// hasCycle walks the open passages and reports a cell reached by two different routes.
func hasCycle(m *Maze) bool {
	type visit struct{ cell, parent geometry.Position }
	seen := map[geometry.Position]bool{m.Start(): true}
	stack := []visit{{cell: m.Start(), parent: geometry.Position{X: -1, Y: -1}}}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range geometry.Directions {
			if !m.IsValidMove(v.cell, d) {
				continue
			}
			next := v.cell.Translate(d)
			if next == v.parent {
				continue
			}
			if seen[next] {
				return true
			}
			seen[next] = true
			stack = append(stack, visit{cell: next, parent: v.cell})
		}
	}
	return false
}

func TestGenerateProducesPerfectMaze(t *testing.T) {
	sizes := []geometry.Size{
		{Width: 1, Height: 1},
		{Width: 2, Height: 1},
		{Width: 1, Height: 7},
		{Width: 5, Height: 5},
		{Width: 10, Height: 20},
		{Width: 31, Height: 17},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", size, seed), func(t *testing.T) {
				m, err := New(size)
				require.NoError(t, err)

				require.NoError(t, NewGenerator(NewRandom(seed)).Generate(m))

				assert.Equal(t, size.Area()-1, m.OpenCount())
				assert.Equal(t, size.Area(), Reachable(m, m.Start()))
				assert.False(t, hasCycle(m), m.String())
				assert.NoError(t, Verify(m))
			})
		}
	}
}

func TestGenerateKeepsBoundaryWalled(t *testing.T) {
	m := mustNew(t, 6, 4)
	require.NoError(t, NewGenerator(NewRandom(42)).Generate(m))

	for x := 0; x < 6; x++ {
		assert.True(t, m.HasWall(pos(x, 0), geometry.North))
		assert.True(t, m.HasWall(pos(x, 3), geometry.South))
	}
	for y := 0; y < 4; y++ {
		assert.True(t, m.HasWall(pos(0, y), geometry.West))
		assert.True(t, m.HasWall(pos(5, y), geometry.East))
	}
}

func TestGenerateSingleCell(t *testing.T) {
	m := mustNew(t, 1, 1)
	require.NoError(t, NewGenerator(firstChoice{}).Generate(m))

	c, err := m.Cell(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, c.WallCount())
	assert.Equal(t, 0, m.OpenCount())
}

func TestGenerateTwoCellsAlwaysConnects(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := mustNew(t, 2, 1)
		require.NoError(t, NewGenerator(NewRandom(seed)).Generate(m))
		assert.True(t, m.IsValidMove(pos(0, 0), geometry.East))
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a := mustNew(t, 12, 9)
	b := mustNew(t, 12, 9)
	require.NoError(t, NewGenerator(NewRandom(7)).Generate(a))
	require.NoError(t, NewGenerator(NewRandom(7)).Generate(b))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateWithFirstChoiceCarvesACorridor(t *testing.T) {
	// North is never valid from row 0 and East comes before South, so the first
	// choice walks the top row before descending.
	m := mustNew(t, 3, 1)
	require.NoError(t, NewGenerator(firstChoice{}).Generate(m))
	assert.True(t, m.IsValidMove(pos(0, 0), geometry.East))
	assert.True(t, m.IsValidMove(pos(1, 0), geometry.East))
}

func TestGenerateRejectsUninitializedMaze(t *testing.T) {
	err := NewGenerator(firstChoice{}).Generate(&Maze{})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	err = NewGenerator(firstChoice{}).Generate(&Maze{size: geometry.Size{Width: 2, Height: 2}})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
