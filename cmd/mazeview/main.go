// Command mazeview shows generated mazes in the terminal.
//
//	mazeview WxH
package main

import (
	"fmt"
	"os"

	"github.com/ByerDev/mazegeneratorsolver/config"
	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	"github.com/ByerDev/mazegeneratorsolver/service"
	"github.com/ByerDev/mazegeneratorsolver/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mazeview: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one argument WxH, got %d", len(args))
	}
	size, err := geometry.ParseSize(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// The screen owns stdout, so the service stays silent.
	ms, err := service.NewMazeService(&service.Config{
		Options:      game.OptionsFromConfig(cfg),
		MaxDimension: cfg.MaxDimension,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return terminal.NewViewer(screen, ms, size, terminal.DefaultStyles()).Run()
}
