// Package pipeloop solves pipe mazes: grids of bends and straights in which
// one closed loop of pipe runs through a marked start cell.
//
// 🚀 What does it do?
//
//	• Finds the loop through 'S' with a lock-step breadth-first walk
//	• Reports every loop cell's distance from 'S' and the furthest point
//	• Infers the real pipe hidden under 'S'
//	• Counts the cells the loop encloses with a scanline parity rule
//
// Under the hood the work is split into small packages:
//
//	grid/      : immutable rectangular container, row-major iteration
//	pipe/      : directions, the eight cell shapes and the exit state machine
//	maze/      : start detection, loop discovery and loop queries
//	enclosure/ : scanline parity pass over a solved maze
//	gridio/    : text input and output
//	view/      : text and terminal renderers
//
// Quick example:
//
//	.....
//	.S-7.      loop of 8 cells, furthest point 4 steps from S,
//	.|.|.      one enclosed cell in the middle
//	.L-J.
//	.....
//
//	res, err := pipeloop.SolveFile("input.txt")
//	fmt.Println(res.MaxDistance, res.EnclosedCount())
//
// The cmd/pipeloop binary wraps the same calls.
package pipeloop
