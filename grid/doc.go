// Package grid provides an immutable rectangular container of cells
// addressed by (row, column).
//
// What:
//
//   - Grid[T] stores rows×cols values in row-major order.
//   - Bounds-checked access via Get / At, O(1) Size.
//   - Map / TryMap build a new grid of the same shape from a per-cell function.
//   - All yields (Coord, value) pairs lazily in row-major order.
//
// Why:
//
//   - Puzzle inputs: character maps, terrain, tile boards.
//   - A single storage type shared by parsing, solving and rendering layers.
//
// Complexity:
//
//   - New, From2D, Map:  O(R×C) time and memory.
//   - Size, Get, At:     O(1).
//   - All:               O(R×C) for a full pass, O(1) extra memory.
//
// Errors:
//
//   - ErrEmptyGrid:     no rows or no columns.
//   - ErrMalformedGrid: cell count does not match rows×cols, or ragged rows.
//   - ErrOutOfBounds:   coordinate outside the grid.
package grid
