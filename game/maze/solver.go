package maze

import (
	"errors"
	"slices"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// ErrNoPath is returned when the search runs out of cells before reaching the goal.
// A generated maze never triggers it.
var ErrNoPath = errors.New("no path from entrance to exit")

// Path is an ordered list of grid-adjacent cells.
type Path []geometry.Position

// Solver finds a route from the entrance to the exit with a depth-first search.
type Solver struct {
	rng Random
}

// NewSolver returns a solver breaking ties with rng.
func NewSolver(rng Random) *Solver {
	return &Solver{rng: rng}
}

// Solve returns a simple path from m.Start() to m.Goal().
// Explored cells stay explored after backtracking, so dead regions are entered once.
func (s *Solver) Solve(m *Maze) (Path, error) {
	start, goal := m.Start(), m.Goal()
	path := Path{start}
	explored := make([]bool, m.size.Area())
	explored[m.index(start)] = true

	current := start
	for current != goal {
		moves := s.validMoves(m, current, explored)
		if len(moves) == 0 {
			path = path[:len(path)-1]
			if len(path) == 0 {
				return nil, ErrNoPath
			}
			current = path[len(path)-1]
			continue
		}

		d := moves[s.rng.Intn(len(moves))]
		current = current.Translate(d)
		path = append(path, current)
		explored[m.index(current)] = true
	}

	return slices.Compact(path), nil
}

func (s *Solver) validMoves(m *Maze, pos geometry.Position, explored []bool) []geometry.Direction {
	moves := make([]geometry.Direction, 0, 4)
	for _, d := range geometry.Directions {
		if !m.IsValidMove(pos, d) {
			continue
		}
		if !explored[m.index(pos.Translate(d))] {
			moves = append(moves, d)
		}
	}
	return moves
}
