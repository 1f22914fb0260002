package maze

import (
	"iter"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Maze owns a grid of pipe shapes and, after DiscoverLoop, the distance
// table of the loop through the start cell.
type Maze struct {
	grid *grid.Grid[pipe.Shape]
	opts Options

	discovered bool
	start      grid.Coord
	startShape pipe.Shape
	dist       []int // row-major; -1 = not on the loop; nil until discovery
	loopLen    int
	furthest   grid.Coord
	maxDist    int
}

// New wraps shapes in a Maze. The grid is shared, not copied; grids are
// immutable so this is safe.
// Returns ErrGridNil for a nil grid and ErrOptionViolation for bad options.
func New(shapes *grid.Grid[pipe.Shape], opts ...Option) (*Maze, error) {
	if shapes == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Maze{grid: shapes, opts: o}, nil
}

// FromRunes parses a character grid and wraps the result in a Maze.
// Returns pipe.ErrInvalidChar for unknown characters.
func FromRunes(chars *grid.Grid[rune], opts ...Option) (*Maze, error) {
	if chars == nil {
		return nil, ErrGridNil
	}
	shapes, err := pipe.ParseGrid(chars)
	if err != nil {
		return nil, err
	}

	return New(shapes, opts...)
}

// Size returns the maze dimensions.
func (m *Maze) Size() (rows, cols int) {
	return m.grid.Size()
}

// FindStart returns the first Start cell in row-major order.
func (m *Maze) FindStart() (grid.Coord, error) {
	for c, s := range m.grid.All() {
		if s == pipe.Start {
			return c, nil
		}
	}

	return grid.Coord{}, ErrNoStartFound
}

// ShapeAt returns the stored shape at c, Start included.
func (m *Maze) ShapeAt(c grid.Coord) (pipe.Shape, error) {
	return m.grid.At(c)
}

// LoopShapeAt is ShapeAt with the start cell replaced by its inferred
// shape once the loop has been discovered.
func (m *Maze) LoopShapeAt(c grid.Coord) (pipe.Shape, error) {
	s, err := m.grid.At(c)
	if err != nil {
		return s, err
	}
	if m.discovered && c == m.start {
		return m.startShape, nil
	}

	return s, nil
}

// OnLoop reports whether c lies on the discovered loop.
// Before DiscoverLoop has succeeded it is false for every cell.
func (m *Maze) OnLoop(c grid.Coord) bool {
	_, ok := m.Distance(c)
	return ok
}

// Distance returns the loop distance of c from the start cell.
func (m *Maze) Distance(c grid.Coord) (int, bool) {
	if m.dist == nil || !m.grid.InBounds(c) {
		return 0, false
	}
	d := m.dist[m.grid.Index(c)]

	return d, d >= 0
}

// Start returns the start cell; ok is false before discovery.
func (m *Maze) Start() (c grid.Coord, ok bool) {
	return m.start, m.discovered
}

// StartShape returns the real pipe shape hidden under the start cell.
func (m *Maze) StartShape() (s pipe.Shape, ok bool) {
	if !m.discovered {
		return pipe.Start, false
	}
	return m.startShape, true
}

// LoopLen returns the number of cells on the loop, start included.
func (m *Maze) LoopLen() int {
	return m.loopLen
}

// Loop yields every loop cell with its distance in row-major order.
func (m *Maze) Loop() iter.Seq2[grid.Coord, int] {
	return func(yield func(grid.Coord, int) bool) {
		for i, d := range m.dist {
			if d < 0 {
				continue
			}
			if !yield(m.grid.Coordinate(i), d) {
				return
			}
		}
	}
}
