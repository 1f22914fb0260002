// Package enclosure counts the cells a closed pipe loop encloses using a
// scanline parity rule instead of a flood fill.
//
// Each row is scanned left to right with an "inside" flag that starts false.
// A loop cell whose pipe opens to the north crosses the imaginary line drawn
// through the upper half of the row and flips the flag; other loop cells
// (─ ┐ ┌) run along or below that line and leave it alone. An off-loop cell
// is enclosed exactly when the flag is set. Pipes that are not part of the
// loop are treated like empty ground.
//
// The start cell must report its real shape through LoopShapeAt, otherwise
// parity on the start row is wrong. *maze.Maze satisfies LoopView once
// DiscoverLoop has succeeded.
//
// Complexity: O(R×C) time, O(1) extra memory for Count.
package enclosure
