// Package pipe defines compass directions and the eight pipe shapes of a
// pipe maze, together with the single state machine that governs flow:
//
//	Exit(shape, travel direction) -> optional exit direction
//
// Entering a cell while travelling in direction D means arriving through the
// cell's D.Opposite() side. A real pipe opens on exactly two sides; arriving
// through one of them leaves through the other, arriving anywhere else is a
// dead end. Start and Empty never have exits: the start cell's connections
// are inferred by the maze package from the surrounding loop.
//
// Character mapping:
//
//	'|' NorthSouth   '-' EastWest
//	'L' NorthEast    'J' NorthWest
//	'7' SouthWest    'F' SouthEast
//	'S' Start        '.' Empty
//
// Any other rune is rejected with ErrInvalidChar.
package pipe
