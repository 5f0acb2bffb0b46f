// Command mazeapi serves maze generation over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/ByerDev/mazegeneratorsolver/api"
	api_i "github.com/ByerDev/mazegeneratorsolver/api/i"
	mazeapi "github.com/ByerDev/mazegeneratorsolver/api/maze"
	"github.com/ByerDev/mazegeneratorsolver/config"
	"github.com/ByerDev/mazegeneratorsolver/game"
	logger "github.com/ByerDev/mazegeneratorsolver/infrastruture/log"
	"github.com/ByerDev/mazegeneratorsolver/infrastruture/token"
	"github.com/ByerDev/mazegeneratorsolver/service"
	"github.com/ByerDev/mazegeneratorsolver/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	cfg            config.Config
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeBuilder
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func fatal(format string, args ...any) {
	appLogger.Errorf(format, args...)
	os.Exit(1)
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fatal("Loading config: %v", err)
	}
	if err := cfg.RequireTicketSecret(); err != nil {
		fatal("%v", err)
	}
	gin.SetMode(cfg.GinMode)
	appLogger.Info("Config loaded")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.TicketSecret, cfg.TicketIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		fatal("Creating maze logger: %v", err)
	}

	mazeService, err = service.NewMazeService(&service.Config{
		Options:      game.OptionsFromConfig(cfg),
		MaxDimension: cfg.MaxDimension,
		Tokenizer:    jwtTokenizer,
		TicketTTL:    cfg.TicketTTL,
		Logger:       mazeLogger,
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		fatal("Creating maze controller: %v", err)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	httpLogger, err := logger.New("HTTP", config.ColorMagenta, os.Stdout)
	if err != nil {
		fatal("Creating http logger: %v", err)
	}

	router = api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Logger:      httpLogger,
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initConfig()
	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
