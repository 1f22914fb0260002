// Package gridio reads and writes character grids, one row per line.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pipeloop/grid"
)

// Read parses r into a rune grid. Trailing '\r' is stripped from every line
// and blank lines before the first row or after the last row are ignored.
// A blank line between rows, or a row whose length differs from the first,
// fails with grid.ErrMalformedGrid.
func Read(r io.Reader) (*grid.Grid[rune], error) {
	var (
		cells      []rune
		rows, cols int
		pending    int // blank lines seen since the last row
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := []rune(strings.TrimRight(sc.Text(), "\r"))
		if len(line) == 0 {
			pending++
			continue
		}
		if pending > 0 && rows > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", grid.ErrMalformedGrid, rows+pending)
		}
		pending = 0
		if rows == 0 {
			cols = len(line)
		} else if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", grid.ErrMalformedGrid, rows, len(line), cols)
		}
		cells = append(cells, line...)
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}

	return grid.New(cells, rows, cols)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*grid.Grid[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write emits g one row per line.
func Write(w io.Writer, g *grid.Grid[rune]) error {
	bw := bufio.NewWriter(w)
	rows, _ := g.Size()
	for r := 0; r < rows; r++ {
		if _, err := bw.WriteString(string(g.Row(r))); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
