package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pipeloop/grid"
)

// Styles per cell class.
var (
	StyleExterior = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleEnclosed = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleLoop     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleStart    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleStatus   = tcell.StyleDefault.Reverse(true)
)

// Offset is the maze cell drawn at the top-left corner of the screen.
type Offset struct {
	Row, Col int
}

func styleFor(c Class) tcell.Style {
	switch c {
	case StartCell:
		return StyleStart
	case Loop:
		return StyleLoop
	case Enclosed:
		return StyleEnclosed
	}
	return StyleExterior
}

// Draw paints the scene onto s starting at off, with the status line on
// the last screen row. It does not call Show.
func (sc *Scene) Draw(s tcell.Screen, off Offset) {
	s.Clear()
	w, h := s.Size()
	rows, cols := sc.src.Size()
	for y := 0; y < h-1; y++ {
		r := y + off.Row
		if r >= rows {
			break
		}
		for x := 0; x < w; x++ {
			c := grid.Coord{Row: r, Col: x + off.Col}
			if c.Col >= cols {
				break
			}
			s.SetContent(x, y, sc.Rune(c, true), nil, styleFor(sc.Classify(c)))
		}
	}
	if h < 1 {
		return
	}
	x := 0
	for _, ch := range sc.status {
		if x >= w {
			break
		}
		s.SetContent(x, h-1, ch, nil, StyleStatus)
		x++
	}
}

// Run draws the scene and pans it with the arrow keys until q, Esc or
// Ctrl-C is pressed. The caller owns s: Init before, Fini after.
func (sc *Scene) Run(s tcell.Screen) error {
	var off Offset
	rows, cols := sc.src.Size()
	for {
		sc.Draw(s, off)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			case tcell.KeyUp:
				off.Row = clamp(off.Row-1, rows)
			case tcell.KeyDown:
				off.Row = clamp(off.Row+1, rows)
			case tcell.KeyLeft:
				off.Col = clamp(off.Col-1, cols)
			case tcell.KeyRight:
				off.Col = clamp(off.Col+1, cols)
			case tcell.KeyHome:
				off = Offset{}
			}
		}
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n-1 {
		return n - 1
	}
	return v
}
