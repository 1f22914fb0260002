package pipe

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// ErrInvalidChar is returned for a rune that names no pipe shape.
var ErrInvalidChar = errors.New("pipe: invalid character")

// Shape is the content of a single maze cell.
type Shape uint8

const (
	NorthSouth Shape = iota // |
	EastWest                // -
	NorthEast               // L
	NorthWest               // J
	SouthWest               // 7
	SouthEast               // F
	Start                   // S
	Empty                   // .
)

// shapeInfo is one row of the shape table.
type shapeInfo struct {
	name  string
	char  rune
	glyph rune
	sides [2]Direction
	pipe  bool // false for Start and Empty
}

var shapes = [...]shapeInfo{
	NorthSouth: {"NorthSouth", '|', '│', [2]Direction{North, South}, true},
	EastWest:   {"EastWest", '-', '─', [2]Direction{East, West}, true},
	NorthEast:  {"NorthEast", 'L', '└', [2]Direction{North, East}, true},
	NorthWest:  {"NorthWest", 'J', '┘', [2]Direction{North, West}, true},
	SouthWest:  {"SouthWest", '7', '┐', [2]Direction{South, West}, true},
	SouthEast:  {"SouthEast", 'F', '┌', [2]Direction{South, East}, true},
	Start:      {"Start", 'S', 'S', [2]Direction{}, false},
	Empty:      {"Empty", '.', '.', [2]Direction{}, false},
}

func (s Shape) info() (shapeInfo, bool) {
	if int(s) >= len(shapes) {
		return shapeInfo{}, false
	}
	return shapes[s], true
}

// Connections returns the two sides a real pipe opens to.
// ok is false for Start, Empty and unknown values.
func (s Shape) Connections() (a, b Direction, ok bool) {
	si, known := s.info()
	if !known || !si.pipe {
		return 0, 0, false
	}
	return si.sides[0], si.sides[1], true
}

// Connects reports whether the shape opens on side d.
func (s Shape) Connects(d Direction) bool {
	a, b, ok := s.Connections()
	return ok && (a == d || b == d)
}

// Exit returns the direction of travel after entering the cell while
// travelling in direction in. ok is false when the shape does not open on
// the side being entered.
func (s Shape) Exit(in Direction) (out Direction, ok bool) {
	a, b, ok := s.Connections()
	if !ok {
		return 0, false
	}
	switch in.Opposite() {
	case a:
		return b, true
	case b:
		return a, true
	}
	return 0, false
}

// CrossesScanline reports whether a loop cell of this shape crosses a
// horizontal line drawn through the row, i.e. opens to the north.
func (s Shape) CrossesScanline() bool {
	return s.Connects(North)
}

// ShapeFor returns the real pipe shape that opens exactly on sides a and b.
func ShapeFor(a, b Direction) (Shape, bool) {
	if a == b {
		return Empty, false
	}
	for s := NorthSouth; s <= SouthEast; s++ {
		if s.Connects(a) && s.Connects(b) {
			return s, true
		}
	}
	return Empty, false
}

// ParseShape maps an input rune to its Shape.
func ParseShape(r rune) (Shape, error) {
	for s, si := range shapes {
		if si.char == r {
			return Shape(s), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidChar, r)
}

// Rune returns the input character for s; ParseShape(s.Rune()) == s.
func (s Shape) Rune() rune {
	if si, ok := s.info(); ok {
		return si.char
	}
	return '?'
}

// Glyph returns a box-drawing rune for display.
func (s Shape) Glyph() rune {
	if si, ok := s.info(); ok {
		return si.glyph
	}
	return '?'
}

func (s Shape) String() string {
	if si, ok := s.info(); ok {
		return si.name
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseGrid converts a character grid into a shape grid.
// The first unknown rune aborts with ErrInvalidChar.
func ParseGrid(g *grid.Grid[rune]) (*grid.Grid[Shape], error) {
	return grid.TryMap(g, func(_ grid.Coord, r rune) (Shape, error) {
		return ParseShape(r)
	})
}

// FormatGrid converts a shape grid back into input characters.
func FormatGrid(g *grid.Grid[Shape]) *grid.Grid[rune] {
	return grid.Map(g, func(_ grid.Coord, s Shape) rune {
		return s.Rune()
	})
}
