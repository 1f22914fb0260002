package enclosure

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// LoopView is the read-only surface the scan needs from a solved maze.
type LoopView interface {
	Size() (rows, cols int)
	OnLoop(c grid.Coord) bool
	LoopShapeAt(c grid.Coord) (pipe.Shape, error)
}

// Scan calls fn for every off-loop cell with its classification,
// in row-major order.
func Scan(v LoopView, fn func(c grid.Coord, enclosed bool)) error {
	rows, cols := v.Size()
	for r := 0; r < rows; r++ {
		inside := false
		for col := 0; col < cols; col++ {
			c := grid.Coord{Row: r, Col: col}
			if !v.OnLoop(c) {
				fn(c, inside)
				continue
			}
			s, err := v.LoopShapeAt(c)
			if err != nil {
				return err
			}
			if s.CrossesScanline() {
				inside = !inside
			}
		}
	}
	return nil
}

// Cells returns the enclosed cells in row-major order.
func Cells(v LoopView) ([]grid.Coord, error) {
	var out []grid.Coord
	err := Scan(v, func(c grid.Coord, enclosed bool) {
		if enclosed {
			out = append(out, c)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of enclosed cells.
func Count(v LoopView) (int, error) {
	n := 0
	err := Scan(v, func(_ grid.Coord, enclosed bool) {
		if enclosed {
			n++
		}
	})
	return n, err
}
