package grid

import (
	"fmt"
	"iter"
)

// New constructs a Grid from a flat row-major slice of length rows×cols.
// The slice is copied, so later writes by the caller do not leak in.
// Returns ErrEmptyGrid if rows or cols is below 1,
// ErrMalformedGrid if len(cells) != rows×cols.
// Complexity: O(R×C) time and memory.
func New[T any](cells []T, rows, cols int) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedGrid, len(cells), rows, cols)
	}
	own := make([]T, len(cells))
	copy(own, cells)

	return &Grid[T]{rows: rows, cols: cols, cells: own}, nil
}

// From2D constructs a Grid from a slice of rows.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrMalformedGrid if any row length differs from the first.
func From2D[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]T, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), cols)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: rows, cols: cols, cells: cells}, nil
}

// Size returns the grid dimensions.
// Complexity: O(1).
func (g *Grid[T]) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether c lies within the grid.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the cell at (row, col), or ErrOutOfBounds.
func (g *Grid[T]) Get(row, col int) (T, error) {
	return g.At(Coord{Row: row, Col: col})
}

// At returns the cell at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) At(c Coord) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}

	return g.cells[g.Index(c)], nil
}

// Index maps c to its row-major offset: Row*cols + Col.
// The result is meaningless for coordinates outside the grid.
func (g *Grid[T]) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major offset back to a Coord.
func (g *Grid[T]) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Row returns a copy of row r, or nil if r is out of range.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.rows {
		return nil
	}
	out := make([]T, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])

	return out
}

// All returns a row-major sequence of (Coord, value) pairs:
// row 0 left to right, then row 1, and so on.
// The sequence is lazy and can be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Map builds a grid of the same dimensions by applying f to every cell.
// The source grid is left untouched.
// Complexity: O(R×C).
func Map[T, U any](g *Grid[T], f func(Coord, T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = f(g.Coordinate(i), v)
	}

	return &Grid[U]{rows: g.rows, cols: g.cols, cells: cells}
}

// TryMap is Map for conversions that can fail. The first error stops the
// pass and is returned wrapped with the coordinate that produced it.
func TryMap[T, U any](g *Grid[T], f func(Coord, T) (U, error)) (*Grid[U], error) {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		u, err := f(g.Coordinate(i), v)
		if err != nil {
			return nil, fmt.Errorf("at %v: %w", g.Coordinate(i), err)
		}
		cells[i] = u
	}

	return &Grid[U]{rows: g.rows, cols: g.cols, cells: cells}, nil
}
