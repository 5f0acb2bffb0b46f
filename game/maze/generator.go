package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// Random is the source the generator and solver draw their choices from.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source. A zero seed uses the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator carves a fully walled maze into a perfect maze with a randomized
// iterative backtracker.
type Generator struct {
	rng Random
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng Random) *Generator {
	return &Generator{rng: rng}
}

// Generate carves m in place starting from the entrance. Every cell ends up
// reachable from (0,0) through exactly one simple path.
func (g *Generator) Generate(m *Maze) error {
	if m.size.Area() < 1 || len(m.cells) != m.size.Area() {
		return fmt.Errorf("%w: maze has %d cells for %s", ErrInvalidDimension, len(m.cells), m.size)
	}

	start := m.Start()
	stack := []geometry.Position{start}
	explored := make([]bool, m.size.Area())
	explored[m.index(start)] = true

	current := start
	for len(stack) > 0 {
		dirs := g.validDirections(m, current, explored)
		if len(dirs) == 0 {
			// Dead end: step back to the previous cell on the stack.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				current = stack[len(stack)-1]
			}
			continue
		}

		d := dirs[g.rng.Intn(len(dirs))]
		next, ok := m.Neighbor(current, d)
		if !ok {
			return fmt.Errorf("%w: %s side of %s", ErrBoundaryWall, d, current)
		}
		if err := m.OpenWall(current, d); err != nil {
			return err
		}

		current = next
		stack = append(stack, current)
		explored[m.index(current)] = true
	}
	return nil
}

// validDirections lists the directions leading to an unexplored cell inside the grid.
func (g *Generator) validDirections(m *Maze, pos geometry.Position, explored []bool) []geometry.Direction {
	dirs := make([]geometry.Direction, 0, 4)
	for _, d := range geometry.Directions {
		next, ok := m.Neighbor(pos, d)
		if ok && !explored[m.index(next)] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
