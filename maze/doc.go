// Package maze discovers the closed pipe loop that runs through the start
// cell of a pipe maze and answers per-cell loop queries.
//
// What
//
//   - FindStart locates the 'S' cell in row-major order.
//   - DiscoverLoop runs one breadth-first search outward from S along pipe
//     exits, assigning every loop cell its hop distance from S, and returns
//     the furthest loop cell.
//   - OnLoop, Distance and LoopShapeAt expose the result; the start cell's
//     real shape is inferred once and stored.
//
// How
//
//	Up to four walkers leave S, one per in-bounds neighbour. A walker follows
//	pipe.Shape.Exit one cell at a time; the shared FIFO queue keeps all
//	walkers in lock-step, so two walkers travelling the loop in opposite
//	directions meet at the antipode. A walker that enters a cell through a
//	side the pipe does not open on stops there. A walker whose next cell is
//	already owned by another walker that accepts it has closed the loop.
//	Exactly two walkers close; anything the others touched is a dangling
//	branch and is dropped before the result is published.
//
// Complexity (R×C = grid cells)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C) for the dense distance table
//
// Usage
//
//	m, err := maze.FromRunes(chars, maze.WithLogger(logger))
//	if err != nil { ... }
//	far, dist, err := m.DiscoverLoop()
//	// errors: ErrNoStartFound, ErrNoLoop, context errors
//
// Errors
//
//   - ErrGridNil          if a nil grid is passed to New.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrNoStartFound     if the grid holds no Start cell.
//   - ErrNoLoop           if fewer than two walkers from S close a loop.
//   - grid.ErrOutOfBounds from the per-cell queries.
package maze
