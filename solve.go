package pipeloop

import (
	"io"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/gridio"
	"github.com/katalvlaran/pipeloop/maze"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Result bundles everything a single solve produces.
type Result struct {
	Maze        *maze.Maze
	Start       grid.Coord
	StartShape  pipe.Shape
	Furthest    grid.Coord
	MaxDistance int
	LoopLength  int
	Enclosed    []grid.Coord
}

// EnclosedCount returns the number of cells inside the loop.
func (r *Result) EnclosedCount() int {
	return len(r.Enclosed)
}

// Solve reads a maze from r, discovers its loop and classifies every
// off-loop cell. Options are passed through to maze.New.
func Solve(r io.Reader, opts ...maze.Option) (*Result, error) {
	chars, err := gridio.Read(r)
	if err != nil {
		return nil, err
	}
	return solveGrid(chars, opts...)
}

// SolveFile is Solve on the contents of path.
func SolveFile(path string, opts ...maze.Option) (*Result, error) {
	chars, err := gridio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return solveGrid(chars, opts...)
}

func solveGrid(chars *grid.Grid[rune], opts ...maze.Option) (*Result, error) {
	m, err := maze.FromRunes(chars, opts...)
	if err != nil {
		return nil, err
	}
	far, dist, err := m.DiscoverLoop()
	if err != nil {
		return nil, err
	}
	inside, err := enclosure.Cells(m)
	if err != nil {
		return nil, err
	}
	start, _ := m.Start()
	startShape, _ := m.StartShape()

	return &Result{
		Maze:        m,
		Start:       start,
		StartShape:  startShape,
		Furthest:    far,
		MaxDistance: dist,
		LoopLength:  m.LoopLen(),
		Enclosed:    inside,
	}, nil
}
