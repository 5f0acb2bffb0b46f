package maze

import (
	"errors"
	"fmt"

	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// ErrNotPerfect is returned when a maze has a cycle, an unreachable cell or a one-sided wall.
var ErrNotPerfect = errors.New("maze is not perfect")

// Verify checks that m is a perfect maze: walls agree on both sides, every cell is
// reachable from the entrance, and the open passages form a spanning tree.
func Verify(m *Maze) error {
	for y := 0; y < m.size.Height; y++ {
		for x := 0; x < m.size.Width; x++ {
			pos := geometry.Position{X: x, Y: y}
			for _, d := range geometry.Directions {
				next, ok := m.Neighbor(pos, d)
				if !ok {
					if !m.HasWall(pos, d) {
						return fmt.Errorf("%w: %s side of %s opens onto the boundary", ErrNotPerfect, d, pos)
					}
					continue
				}
				if m.HasWall(pos, d) != m.HasWall(next, d.Opposite()) {
					return fmt.Errorf("%w: wall between %s and %s is one-sided", ErrNotPerfect, pos, next)
				}
			}
		}
	}

	if reached := Reachable(m, m.Start()); reached != m.size.Area() {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, reached, m.size.Area())
	}
	if open := m.OpenCount(); open != m.size.Area()-1 {
		return fmt.Errorf("%w: %d open walls, want %d", ErrNotPerfect, open, m.size.Area()-1)
	}
	return nil
}

// Reachable counts the cells reachable from pos through open sides.
func Reachable(m *Maze, pos geometry.Position) int {
	if !m.InBound(pos) {
		return 0
	}

	visited := make([]bool, m.size.Area())
	visited[m.index(pos)] = true
	stack := []geometry.Position{pos}
	count := 0

	for len(stack) > 0 {
		cell := pop(&stack)
		count++

		for _, d := range geometry.Directions {
			if !m.IsValidMove(cell, d) {
				continue
			}
			next := cell.Translate(d)
			if !visited[m.index(next)] {
				visited[m.index(next)] = true
				stack = append(stack, next)
			}
		}
	}

	return count
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]geometry.Position) geometry.Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
