package mazeapi

import (
	"errors"
	"net/http"

	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/game/maze"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/ByerDev/mazegeneratorsolver/service"
	"github.com/ByerDev/mazegeneratorsolver/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves maze builds and ticket redemption.
type MazeController struct {
	builder i.MazeBuilder
}

// NewMazeController initializes a MazeController.
func NewMazeController(b i.MazeBuilder) (*MazeController, error) {
	if b == nil {
		return nil, errors.New("maze builder is required")
	}
	return &MazeController{builder: b}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.build)
		mazes.GET("/:ticket", mc.redeem)
		mazes.GET("/:ticket/text", mc.text)
	}
}

// build generates a new maze and returns it with a share ticket.
func (mc *MazeController) build(ctx *gin.Context) {
	var request BuildRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size, err := geometry.ParseSize(request.Size)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var seed int64
	if request.Seed != nil {
		seed = *request.Seed
	}

	bp, err := mc.builder.Build(size, seed)
	if err != nil {
		ctx.JSON(buildStatus(err), gin.H{"error": err.Error()})
		return
	}

	ticket, err := mc.builder.Share(bp)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing ticket"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(bp, ticket))
}

// redeem rebuilds the maze a ticket was issued for.
func (mc *MazeController) redeem(ctx *gin.Context) {
	ticket := ctx.Param("ticket")
	bp, ok := mc.rebuild(ctx, ticket)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(bp, ticket))
}

// text writes the rendered maze as plain text.
func (mc *MazeController) text(ctx *gin.Context) {
	bp, ok := mc.rebuild(ctx, ctx.Param("ticket"))
	if !ok {
		return
	}
	ctx.String(http.StatusOK, bp.Display.String())
}

func (mc *MazeController) rebuild(ctx *gin.Context, ticket string) (*game.Blueprint, bool) {
	bp, err := mc.builder.Redeem(ticket)
	if err == nil {
		return bp, true
	}
	if errors.Is(err, service.ErrInvalidTicket) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired ticket"})
		return nil, false
	}
	ctx.JSON(buildStatus(err), gin.H{"error": err.Error()})
	return nil, false
}

func buildStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrTooLarge), errors.Is(err, maze.ErrInvalidDimension):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSharingDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
