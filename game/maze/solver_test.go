package maze

import (
	"fmt"
	"testing"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSimplePath checks the path runs from the entrance to the exit through open,
// unit-distance steps without revisiting a cell.
func assertSimplePath(t *testing.T, m *Maze, p Path) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, m.Start(), p[0])
	assert.Equal(t, m.Goal(), p[len(p)-1])

	seen := make(map[geometry.Position]bool, len(p))
	for i, cell := range p {
		assert.False(t, seen[cell], "cell %s repeated", cell)
		seen[cell] = true
		if i == 0 {
			continue
		}

		prev := p[i-1]
		v, err := geometry.VectorBetween(prev, cell)
		require.NoError(t, err)
		require.Equal(t, 2, v.Magnitude, "%s to %s is not a unit step", prev, cell)
		assert.True(t, m.IsValidMove(prev, v.Direction), "wall between %s and %s", prev, cell)
	}
}

func TestSolve(t *testing.T) {
	sizes := []geometry.Size{
		{Width: 2, Height: 2},
		{Width: 7, Height: 1},
		{Width: 1, Height: 6},
		{Width: 10, Height: 20},
		{Width: 25, Height: 25},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", size, seed), func(t *testing.T) {
				m, err := New(size)
				require.NoError(t, err)
				require.NoError(t, NewGenerator(NewRandom(seed)).Generate(m))

				p, err := NewSolver(NewRandom(seed + 100)).Solve(m)
				require.NoError(t, err)
				assertSimplePath(t, m, p)
			})
		}
	}
}

func TestSolveFindsTheUniquePath(t *testing.T) {
	m := mustNew(t, 9, 9)
	require.NoError(t, NewGenerator(NewRandom(3)).Generate(m))

	first, err := NewSolver(NewRandom(1)).Solve(m)
	require.NoError(t, err)
	for seed := int64(2); seed < 6; seed++ {
		again, err := NewSolver(NewRandom(seed)).Solve(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolveSingleCell(t *testing.T) {
	m := mustNew(t, 1, 1)
	require.NoError(t, NewGenerator(firstChoice{}).Generate(m))

	p, err := NewSolver(firstChoice{}).Solve(m)
	require.NoError(t, err)
	assert.Equal(t, Path{pos(0, 0)}, p)
}

func TestSolveTwoCells(t *testing.T) {
	m := mustNew(t, 2, 1)
	require.NoError(t, NewGenerator(NewRandom(9)).Generate(m))

	p, err := NewSolver(NewRandom(9)).Solve(m)
	require.NoError(t, err)
	assert.Equal(t, Path{pos(0, 0), pos(1, 0)}, p)
}

func TestSolveBacktracksOutOfDeadEnds(t *testing.T) {
	//   (0,0)-(1,0)-(2,0)
	//     |     |     |
	//   (0,1) (1,1) (2,1)
	m := mustNew(t, 3, 2)
	require.NoError(t, m.OpenWall(pos(0, 0), geometry.South))
	require.NoError(t, m.OpenWall(pos(0, 0), geometry.East))
	require.NoError(t, m.OpenWall(pos(1, 0), geometry.East))
	require.NoError(t, m.OpenWall(pos(1, 0), geometry.South))
	require.NoError(t, m.OpenWall(pos(2, 0), geometry.South))
	require.NoError(t, Verify(m))

	// Taking South before East walks into both dead ends first.
	p, err := NewSolver(lastChoice{}).Solve(m)
	require.NoError(t, err)
	assert.Equal(t, Path{pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1)}, p)
}

func TestSolveReportsUnreachableGoal(t *testing.T) {
	m := mustNew(t, 3, 1)
	require.NoError(t, m.OpenWall(pos(0, 0), geometry.East))

	_, err := NewSolver(firstChoice{}).Solve(m)
	assert.ErrorIs(t, err, ErrNoPath)
}

// lastChoice always picks the last candidate.
type lastChoice struct{}

func (lastChoice) Intn(n int) int { return n - 1 }
