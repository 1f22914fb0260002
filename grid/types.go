package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrMalformedGrid indicates the cells do not form a rows×cols rectangle.
	ErrMalformedGrid = errors.New("grid: cells do not form a rectangle")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord addresses a single cell. Row grows downward, Col grows rightward.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc). The result may lie outside any grid.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Grid is an immutable rows×cols array of T stored in row-major order.
// The zero value is not usable; build grids with New or From2D.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}
