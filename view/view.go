package view

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Source is the part of a solved maze the renderers read.
type Source interface {
	Size() (rows, cols int)
	OnLoop(c grid.Coord) bool
	LoopShapeAt(c grid.Coord) (pipe.Shape, error)
	Start() (grid.Coord, bool)
}

// Class tells how a cell is drawn.
type Class uint8

const (
	Exterior Class = iota
	Enclosed
	Loop
	StartCell
)

// Scene is a maze, its enclosed cells and a status line, ready to draw.
type Scene struct {
	src      Source
	enclosed map[grid.Coord]bool
	status   string
}

// NewScene prepares src for rendering.
func NewScene(src Source, enclosed []grid.Coord, status string) *Scene {
	set := make(map[grid.Coord]bool, len(enclosed))
	for _, c := range enclosed {
		set[c] = true
	}
	return &Scene{src: src, enclosed: set, status: status}
}

// Classify returns the class of c.
func (sc *Scene) Classify(c grid.Coord) Class {
	if start, ok := sc.src.Start(); ok && start == c {
		return StartCell
	}
	if sc.src.OnLoop(c) {
		return Loop
	}
	if sc.enclosed[c] {
		return Enclosed
	}
	return Exterior
}

// Rune returns the character drawn for c. Loop cells use box-drawing glyphs
// when unicode is set and input characters otherwise.
func (sc *Scene) Rune(c grid.Coord, unicode bool) rune {
	switch sc.Classify(c) {
	case StartCell:
		return 'S'
	case Loop:
		s, err := sc.src.LoopShapeAt(c)
		if err != nil {
			return '?'
		}
		if unicode {
			return s.Glyph()
		}
		return s.Rune()
	case Enclosed:
		return 'I'
	}
	return 'O'
}

// Text writes the scene one row per line.
func (sc *Scene) Text(w io.Writer, unicode bool) error {
	bw := bufio.NewWriter(w)
	rows, cols := sc.src.Size()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if _, err := bw.WriteRune(sc.Rune(grid.Coord{Row: r, Col: c}, unicode)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
