// Package mazeapi exposes maze generation and ticket redemption over HTTP.
package mazeapi

import (
	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// BuildRequest asks for a new maze. A missing seed picks a time-based one.
type BuildRequest struct {
	Size string `json:"size" binding:"required"`
	Seed *int64 `json:"seed"`
}

// MazeResponse describes a built maze and the ticket that rebuilds it.
type MazeResponse struct {
	ID       string              `json:"id"`
	Ticket   string              `json:"ticket"`
	Width    int                 `json:"width"`
	Height   int                 `json:"height"`
	Seed     int64               `json:"seed"`
	Rendered []string            `json:"rendered"`
	Path     []geometry.Position `json:"path"`
}

func newMazeResponse(bp *game.Blueprint, ticket string) *MazeResponse {
	size := bp.Maze.Size()
	return &MazeResponse{
		ID:       bp.ID.String(),
		Ticket:   ticket,
		Width:    size.Width,
		Height:   size.Height,
		Seed:     bp.Seed,
		Rendered: bp.Display.Rows(),
		Path:     bp.Path,
	}
}
