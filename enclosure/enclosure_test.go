package enclosure_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/maze"
	"github.com/katalvlaran/pipeloop/pipe"
)

// solve parses rows and discovers the loop.
func solve(t testing.TB, rows []string) *maze.Maze {
	t.Helper()
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = []rune(r)
	}
	g, err := grid.From2D(cells)
	require.NoError(t, err)
	m, err := maze.FromRunes(g)
	require.NoError(t, err)
	_, _, err = m.DiscoverLoop()
	require.NoError(t, err)
	return m
}

var (
	flat = []string{
		".....",
		".S-7.",
		".L-J.",
		".....",
	}
	square = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}
	branched = []string{
		"..|..",
		".-S-7",
		"..|.|",
		"..L-J",
	}
	// S stands for '|' and must toggle parity itself.
	upright = []string{
		"F-7",
		"S.|",
		"L-J",
	}
	// S stands for 'J'; without it the cell right of S reads as inside.
	cornerNW = []string{
		".....",
		".F-7.",
		".|.|.",
		".L-S.",
		".....",
	}
	cornerNE = []string{
		".....",
		".F-7.",
		".|.|.",
		".S-J.",
		".....",
	}
	pinched = []string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	}
	squeezed = []string{
		"..........",
		".S------7.",
		".|F----7|.",
		".||....||.",
		".||....||.",
		".|L-7F-J|.",
		".|..||..|.",
		".L--JL--J.",
		"..........",
	}
	larger = []string{
		".F----7F7F7F7F-7....",
		".|F--7||||||||FJ....",
		".||.FJ||||||||L7....",
		"FJL7L7LJLJ||LJ.L-7..",
		"L--J.L7...LJS7F-7L7.",
		"....F-J..F7FJ|L7L7L7",
		"....L7.F7||L7|.L7L7|",
		".....|FJLJ|FJ|F7|.LJ",
		"....FJL-7.||.||||...",
		"....L---J.LJ.LJLJ...",
	}
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

// TestCount covers the well-known puzzle shapes.
func TestCount(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"Flat", flat, 0},
		{"Square", square, 1},
		{"Branched", branched, 1},
		{"Upright", upright, 1},
		{"CornerNW", cornerNW, 1},
		{"CornerNE", cornerNE, 1},
		{"Pinched", pinched, 4},
		{"Squeezed", squeezed, 4},
		{"Larger", larger, 8},
		{"Junk", junk, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := enclosure.Count(solve(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestCells returns coordinates in row-major order.
func TestCells(t *testing.T) {
	cells, err := enclosure.Cells(solve(t, square))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 2, Col: 2}}, cells)

	cells, err = enclosure.Cells(solve(t, branched))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 2, Col: 3}}, cells)

	cells, err = enclosure.Cells(solve(t, upright))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, cells)

	cells, err = enclosure.Cells(solve(t, cornerNW))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 2, Col: 2}}, cells)

	cells, err = enclosure.Cells(solve(t, pinched))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		{Row: 6, Col: 2}, {Row: 6, Col: 3}, {Row: 6, Col: 7}, {Row: 6, Col: 8},
	}, cells)
}

// TestCount_NonLoopInvariance scrambles every off-loop cell that does not
// touch the start; the count must not move.
func TestCount_NonLoopInvariance(t *testing.T) {
	const glyphs = "|-LJ7F."
	rng := rand.New(rand.NewSource(42))

	for _, rows := range [][]string{larger, junk, pinched} {
		m := solve(t, rows)
		want, err := enclosure.Count(m)
		require.NoError(t, err)
		start, _ := m.Start()

		for trial := 0; trial < 20; trial++ {
			mutated := make([]string, len(rows))
			for r, row := range rows {
				rr := []rune(row)
				for c := range rr {
					at := grid.Coord{Row: r, Col: c}
					if m.OnLoop(at) || nearStart(at, start) {
						continue
					}
					rr[c] = rune(glyphs[rng.Intn(len(glyphs))])
				}
				mutated[r] = string(rr)
			}
			got, err := enclosure.Count(solve(t, mutated))
			require.NoError(t, err)
			assert.Equalf(t, want, got, "trial %d:\n%v", trial, mutated)
		}
	}
}

func nearStart(c, start grid.Coord) bool {
	dr, dc := c.Row-start.Row, c.Col-start.Col
	return dr*dr+dc*dc <= 1
}

// fakeView is a hand-built LoopView: a vertical wall at column 1.
type fakeView struct{}

func (fakeView) Size() (int, int) { return 2, 4 }

func (fakeView) OnLoop(c grid.Coord) bool { return c.Col == 1 }

func (fakeView) LoopShapeAt(grid.Coord) (pipe.Shape, error) { return pipe.NorthSouth, nil }

// TestScan_Classification reports every off-loop cell exactly once.
func TestScan_Classification(t *testing.T) {
	got := map[grid.Coord]bool{}
	err := enclosure.Scan(fakeView{}, func(c grid.Coord, enclosed bool) {
		_, dup := got[c]
		require.False(t, dup)
		got[c] = enclosed
	})
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.False(t, got[grid.Coord{Row: 0, Col: 0}])
	assert.True(t, got[grid.Coord{Row: 0, Col: 2}])
	assert.True(t, got[grid.Coord{Row: 1, Col: 3}])
}

// TestCount_BeforeDiscovery is degenerate but not an error.
func TestCount_BeforeDiscovery(t *testing.T) {
	cells := [][]rune{[]rune(".S-7."), []rune(".|.|."), []rune(".L-J.")}
	g, err := grid.From2D(cells)
	require.NoError(t, err)
	m, err := maze.FromRunes(g)
	require.NoError(t, err)

	n, err := enclosure.Count(m)
	require.NoError(t, err)
	assert.Zero(t, n)
}
