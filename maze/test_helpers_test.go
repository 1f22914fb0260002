package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/maze"
)

// Fixtures shared by the maze tests.
var (
	// square encloses its single centre cell.
	square = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}
	// flat is a 2-row loop with nothing inside.
	flat = []string{
		".....",
		".S-7.",
		".L-J.",
		".....",
	}
	// noisySquare surrounds square's loop with unconnected pipes.
	noisySquare = []string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	}
	// winding has its furthest point 8 steps from S.
	winding = []string{
		"7-F7-",
		".FJ|7",
		"SJLL7",
		"|F--J",
		"LJ.LJ",
	}
	// branched has pipes on two sides of S that lead nowhere.
	branched = []string{
		"..|..",
		".-S-7",
		"..|.|",
		"..L-J",
	}
	// upright has S standing for a vertical pipe on the loop's west side.
	upright = []string{
		"F-7",
		"S.|",
		"L-J",
	}
	// cornerNW has S standing for a 'J' corner.
	cornerNW = []string{
		".....",
		".F-7.",
		".|.|.",
		".L-S.",
		".....",
	}
	// cornerNE has S standing for an 'L' corner.
	cornerNE = []string{
		".....",
		".F-7.",
		".|.|.",
		".S-J.",
		".....",
	}
	// sideswipe has a branch west of S that runs into the loop's 'L' from
	// the side that pipe does not open to.
	sideswipe = []string{
		"....",
		"FS7.",
		"LLJ.",
	}
	// junk encloses 10 cells among a lot of unconnected pipe.
	junk = []string{
		"FF7FSF7F7F7F7F7F---7",
		"L|LJ||||||||||||F--J",
		"FL-7LJLJ||||||LJL-77",
		"F--JF--7||LJLJ7F7FJ-",
		"L---JF-JLJ.||-FJLJJ7",
		"|F|F-JF---7F7-L7L|7|",
		"|FFJF7L7F-JF7|JL---7",
		"7-L-JL7||F7|L7F-7F7|",
		"L.L7LFJ|||||FJL7||LJ",
		"L7JLJL-JLJLJL--JLJ.L",
	}
)

// runeGrid builds a character grid from row strings.
func runeGrid(t testing.TB, rows []string) *grid.Grid[rune] {
	t.Helper()
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = []rune(r)
	}
	g, err := grid.From2D(cells)
	require.NoError(t, err)
	return g
}

// newMaze parses rows into a Maze.
func newMaze(t testing.TB, rows []string, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m, err := maze.FromRunes(runeGrid(t, rows), opts...)
	require.NoError(t, err)
	return m
}

// distances snapshots the loop distance table.
func distances(m *maze.Maze) map[grid.Coord]int {
	out := make(map[grid.Coord]int)
	for c, d := range m.Loop() {
		out[c] = d
	}
	return out
}
