package pipe

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// Direction is one of the four compass directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in the order the maze seeds its search.
var Directions = [4]Direction{North, South, West, East}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the (row, col) offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Step returns the neighbour of c in direction d. The result may lie
// outside the grid; callers check bounds.
func (d Direction) Step(c grid.Coord) grid.Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
