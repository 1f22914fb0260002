package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/view"
)

func init() {
	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the solved maze in the terminal",
		Long: `Solve a pipe maze and show it full screen. The loop is yellow, S red,
enclosed cells green. Arrow keys pan, Home resets, q or Esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, args []string) error {
	res, err := pipeloop.SolveFile(inputPath(args), mazeOptions()...)
	if err != nil {
		return err
	}
	status := fmt.Sprintf(" loop %d cells | furthest %d at %v | enclosed %d | arrows pan, q quits ",
		res.LoopLength, res.MaxDistance, res.Furthest, res.EnclosedCount())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return view.NewScene(res.Maze, res.Enclosed, status).Run(screen)
}
