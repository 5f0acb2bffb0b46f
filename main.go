// Command mazegeneratorsolver generates a random perfect maze of the given
// size, solves it and prints both to standard output.
//
//	mazegeneratorsolver WxH
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ByerDev/mazegeneratorsolver/config"
	"github.com/ByerDev/mazegeneratorsolver/game"
	"github.com/ByerDev/mazegeneratorsolver/geometry"
	logger "github.com/ByerDev/mazegeneratorsolver/infrastruture/log"
	"github.com/ByerDev/mazegeneratorsolver/service"
)

const usage = "usage: mazegeneratorsolver WxH (for example 10x20)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code. Only the maze goes to stdout.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "expected exactly one argument, got %d\n%s\n", len(args), usage)
		return 1
	}
	size, err := geometry.ParseSize(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%v\n%s\n", err, usage)
		return 1
	}

	mazeLogger, err := logger.New("MAZE", config.ColorGreen, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	ms, err := service.NewMazeService(&service.Config{
		Options: game.OptionsFromConfig(config.Default()),
		Logger:  mazeLogger,
	})
	if err != nil {
		mazeLogger.Error(err.Error())
		return 1
	}

	bp, err := ms.Build(size, 0)
	if err != nil {
		mazeLogger.Error(err.Error())
		return 1
	}
	if err := bp.Display.Print(stdout); err != nil {
		mazeLogger.Errorf("printing maze: %v", err)
		return 1
	}
	return 0
}
