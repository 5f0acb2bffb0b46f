package i

import (
	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
)

// MazeBuilder builds solved, rendered mazes and hands out tickets to rebuild them.
type MazeBuilder interface {
	// Build generates a maze of the given size from seed. A zero seed picks one.
	Build(size geometry.Size, seed int64) (*game.Blueprint, error)

	// Share returns a ticket from which the same blueprint can be rebuilt.
	Share(bp *game.Blueprint) (string, error)

	// Redeem rebuilds the blueprint a ticket was issued for.
	Redeem(ticket string) (*game.Blueprint, error)
}
