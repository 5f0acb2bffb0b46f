// Package game wires generation, solving and rendering into a single build.
package game

import (
	"fmt"

	"github.com/ByerDev/mazegeneratorsolver/config"
	"github.com/ByerDev/mazegeneratorsolver/game/maze"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/ByerDev/mazegeneratorsolver/render"
	"github.com/google/uuid"
)

// Blueprint is a generated maze, its solution and the canvas both are drawn on.
type Blueprint struct {
	ID      uuid.UUID // Run identifier, zero unless stamped by the caller
	Seed    int64     // Seed the random source was created with, if known
	Maze    *maze.Maze
	Path    maze.Path
	Display *render.Display
}

// Options configure how a blueprint is drawn.
type Options struct {
	Origin geometry.Position // Print padding
	Glyphs render.Glyphs
}

// DefaultOptions pads the canvas by one row and one column and uses the default glyphs.
func DefaultOptions() Options {
	return Options{Origin: geometry.Position{X: 1, Y: 1}, Glyphs: render.DefaultGlyphs()}
}

// OptionsFromConfig takes the origin padding and glyphs from c.
func OptionsFromConfig(c config.Config) Options {
	return Options{
		Origin: geometry.Position{X: c.OffsetX, Y: c.OffsetY},
		Glyphs: render.Glyphs{Wall: c.WallGlyph, Path: c.PathGlyph, Blank: render.BlankGlyph},
	}
}

// Build generates a maze of the given size, draws it, solves it and draws the
// solution on top. Both the generator and the solver draw from rng.
func Build(size geometry.Size, rng maze.Random, opts Options) (*Blueprint, error) {
	m, err := maze.New(size)
	if err != nil {
		return nil, err
	}
	if err := maze.NewGenerator(rng).Generate(m); err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	display, err := render.FromMaze(m, opts.Origin, opts.Glyphs)
	if err != nil {
		return nil, fmt.Errorf("creating display: %w", err)
	}
	if err := display.DrawMaze(m); err != nil {
		return nil, fmt.Errorf("drawing maze: %w", err)
	}

	path, err := maze.NewSolver(rng).Solve(m)
	if err != nil {
		return nil, fmt.Errorf("solving maze: %w", err)
	}
	if err := display.DrawSolution(path, m); err != nil {
		return nil, fmt.Errorf("drawing solution: %w", err)
	}

	return &Blueprint{Maze: m, Path: path, Display: display}, nil
}
