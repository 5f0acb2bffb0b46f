package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/game/maze"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	logger "github.com/ByerDev/mazegeneratorsolver/infrastruture/log"
	"github.com/ByerDev/mazegeneratorsolver/service/i"
	"github.com/google/uuid"
)

// Service errors.
var (
	ErrTooLarge        = errors.New("maze dimensions exceed the configured maximum")
	ErrSharingDisabled = errors.New("no tokenizer configured for sharing")
	ErrInvalidTicket   = errors.New("invalid ticket")
)

const (
	defaultTicketTTL = 24 * time.Hour

	claimID     = "id"
	claimWidth  = "w"
	claimHeight = "h"
	claimSeed   = "seed"
)

// MazeService builds verified mazes and issues tickets that rebuild them.
type MazeService struct {
	options      game.Options
	maxDimension int
	tokenizer    i.Tokenizer
	ticketTTL    time.Duration
	logger       *logger.Logger
}

var _ i.MazeBuilder = &MazeService{}

// Config holds the dependencies of a MazeService.
type Config struct {
	Options      game.Options   // Drawing options
	MaxDimension int            // Largest accepted width or height; 0 means unlimited
	Tokenizer    i.Tokenizer    // Optional; sharing is disabled without one
	TicketTTL    time.Duration  // Ticket lifetime; defaults to 24h
	Logger       *logger.Logger // Optional
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if err := c.Options.Glyphs.Validate(); err != nil {
		return nil, err
	}
	if c.MaxDimension < 0 {
		return nil, fmt.Errorf("negative max dimension %d", c.MaxDimension)
	}

	ms := &MazeService{
		options:      c.Options,
		maxDimension: c.MaxDimension,
		tokenizer:    c.Tokenizer,
		ticketTTL:    c.TicketTTL,
		logger:       c.Logger,
	}
	if ms.ticketTTL <= 0 {
		ms.ticketTTL = defaultTicketTTL
	}
	if ms.logger == nil {
		ms.logger = logger.Discard()
	}
	return ms, nil
}

// Build generates, verifies, solves and renders a maze. A zero seed is replaced
// with a time-based one; the seed used is recorded on the blueprint.
func (ms *MazeService) Build(size geometry.Size, seed int64) (*game.Blueprint, error) {
	if ms.maxDimension > 0 && (size.Width > ms.maxDimension || size.Height > ms.maxDimension) {
		return nil, fmt.Errorf("%w: %s, max %d", ErrTooLarge, size, ms.maxDimension)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.New()
	started := time.Now()
	bp, err := game.Build(size, maze.NewRandom(seed), ms.options)
	if err != nil {
		ms.logger.Errorf("run %s: building %s maze: %v", id, size, err)
		return nil, err
	}
	if err := maze.Verify(bp.Maze); err != nil {
		ms.logger.Errorf("run %s: %v", id, err)
		return nil, err
	}

	bp.ID = id
	bp.Seed = seed
	ms.logger.Infof("run %s: built %s maze (seed %d, path %d cells) in %s", id, size, seed, len(bp.Path), time.Since(started))
	return bp, nil
}

// Share returns a signed ticket carrying the blueprint's id, size and seed.
func (ms *MazeService) Share(bp *game.Blueprint) (string, error) {
	if ms.tokenizer == nil {
		return "", ErrSharingDisabled
	}
	size := bp.Maze.Size()
	return ms.tokenizer.Generate(map[string]interface{}{
		claimID:     bp.ID.String(),
		claimWidth:  size.Width,
		claimHeight: size.Height,
		// JSON numbers lose precision above 2^53, so the seed travels as a string.
		claimSeed: strconv.FormatInt(bp.Seed, 10),
	}, ms.ticketTTL)
}

// Redeem rebuilds the blueprint a ticket was issued for.
func (ms *MazeService) Redeem(ticket string) (*game.Blueprint, error) {
	if ms.tokenizer == nil {
		return nil, ErrSharingDisabled
	}
	claims, err := ms.tokenizer.Decode(ticket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}

	id, size, seed, err := parseClaims(claims)
	if err != nil {
		return nil, err
	}

	bp, err := ms.Build(size, seed)
	if err != nil {
		return nil, err
	}
	bp.ID = id
	return bp, nil
}

func parseClaims(claims map[string]interface{}) (uuid.UUID, geometry.Size, int64, error) {
	idStr, _ := claims[claimID].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, geometry.Size{}, 0, fmt.Errorf("%w: bad id", ErrInvalidTicket)
	}
	w, okW := claims[claimWidth].(float64)
	h, okH := claims[claimHeight].(float64)
	if !okW || !okH {
		return uuid.Nil, geometry.Size{}, 0, fmt.Errorf("%w: missing dimensions", ErrInvalidTicket)
	}
	size, err := geometry.NewSize(int(w), int(h))
	if err != nil {
		return uuid.Nil, geometry.Size{}, 0, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	seedStr, _ := claims[claimSeed].(string)
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil || seed == 0 {
		return uuid.Nil, geometry.Size{}, 0, fmt.Errorf("%w: bad seed", ErrInvalidTicket)
	}
	return id, size, seed, nil
}
