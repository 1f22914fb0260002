package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/view"
)

var (
	draw  bool
	ascii bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the furthest loop distance and the enclosed area",
		Long: `Solve a pipe maze and print two lines: how many steps along the loop the
furthest point is from S, and how many cells the loop encloses.

Examples:
  pipeloop solve
  pipeloop solve sample.txt --draw
  pipeloop solve sample.txt --draw --ascii`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&draw, "draw", "d", false, "Also print the maze with loop, inside (I) and outside (O) cells")
	solveCmd.Flags().BoolVar(&ascii, "ascii", false, "Draw with input characters even on a terminal")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	res, err := pipeloop.SolveFile(inputPath(args), mazeOptions()...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The furthest section is %d distance\n", res.MaxDistance)
	fmt.Fprintf(out, "The contained area has %d cells\n", res.EnclosedCount())

	if !draw {
		return nil
	}
	fmt.Fprintln(out)
	sc := view.NewScene(res.Maze, res.Enclosed, "")
	return sc.Text(out, !ascii && isTerminal(out))
}

// isTerminal reports whether w is a terminal that can show box glyphs.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
