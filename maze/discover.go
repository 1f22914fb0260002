package maze

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// queueItem is one pending step of a walker: the cell about to be entered,
// the direction of travel into it, and the distance it would get.
type queueItem struct {
	at     grid.Coord
	in     pipe.Direction
	dist   int
	walker int
}

// walker encapsulates mutable discovery state.
type walker struct {
	grid   *grid.Grid[pipe.Shape]
	opts   Options
	ctx    context.Context
	start  grid.Coord
	queue  []queueItem
	dist   []int // -1 until recorded
	owner  []int // walker index per recorded cell, -1 for start and unvisited
	seeds  []pipe.Direction
	closed []bool
}

// DiscoverLoop finds the loop through the start cell, records every loop
// cell's distance from the start, and returns the furthest loop cell.
// Ties on distance go to the first cell in row-major order.
//
// The search runs once; later calls return the cached answer.
// Returns ErrNoStartFound, ErrNoLoop, or the context's error.
func (m *Maze) DiscoverLoop() (grid.Coord, int, error) {
	if m.discovered {
		return m.furthest, m.maxDist, nil
	}
	start, err := m.FindStart()
	if err != nil {
		return grid.Coord{}, 0, err
	}

	w := newWalker(m.grid, m.opts, start)
	if err := w.loop(); err != nil {
		return grid.Coord{}, 0, err
	}
	if err := m.publish(w); err != nil {
		return grid.Coord{}, 0, err
	}

	return m.furthest, m.maxDist, nil
}

// newWalker marks the start at distance 0 and seeds one walker per
// in-bounds neighbour.
func newWalker(g *grid.Grid[pipe.Shape], o Options, start grid.Coord) *walker {
	rows, cols := g.Size()
	n := rows * cols
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		start: start,
		queue: make([]queueItem, 0, len(pipe.Directions)),
		dist:  make([]int, n),
		owner: make([]int, n),
	}
	for i := range w.dist {
		w.dist[i] = -1
		w.owner[i] = -1
	}
	w.dist[g.Index(start)] = 0

	for _, d := range pipe.Directions {
		next := d.Step(start)
		if !g.InBounds(next) {
			continue
		}
		w.seeds = append(w.seeds, d)
		w.queue = append(w.queue, queueItem{at: next, in: d, dist: 1, walker: len(w.seeds) - 1})
	}
	w.closed = make([]bool, len(w.seeds))

	return w
}

// loop processes the queue in FIFO order until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.step(item)
	}
	return nil
}

// step enters item.at. A recorded cell ends the walker, closing it when
// another walker owns the cell and the pipe accepts the entry. A pipe that
// does not open on the entry side ends the walker without recording.
func (w *walker) step(item queueItem) {
	shape, err := w.grid.At(item.at)
	if err != nil {
		return
	}
	idx := w.grid.Index(item.at)
	out, ok := shape.Exit(item.in)

	if w.dist[idx] >= 0 {
		if owner := w.owner[idx]; ok && owner >= 0 && owner != item.walker {
			w.closed[item.walker] = true
		}
		return
	}
	if !ok {
		w.opts.OnDiscard(item.at, item.in)
		return
	}

	w.dist[idx] = item.dist
	w.owner[idx] = item.walker
	w.opts.OnVisit(item.at, item.dist)

	next := out.Step(item.at)
	if w.grid.InBounds(next) {
		w.queue = append(w.queue, queueItem{at: next, in: out, dist: item.dist + 1, walker: item.walker})
	}
}

// publish keeps the cells of the two closing walkers, infers the start
// shape from their seed directions, and stores the result on m.
func (m *Maze) publish(w *walker) error {
	var loopWalkers []int
	for i, c := range w.closed {
		if c {
			loopWalkers = append(loopWalkers, i)
		}
	}
	if len(loopWalkers) != 2 {
		return fmt.Errorf("%w: %d of %d walkers from %v closed", ErrNoLoop, len(loopWalkers), len(w.seeds), w.start)
	}
	a, b := loopWalkers[0], loopWalkers[1]
	startShape, ok := pipe.ShapeFor(w.seeds[a], w.seeds[b])
	if !ok {
		return fmt.Errorf("%w: no pipe joins %v and %v", ErrNoLoop, w.seeds[a], w.seeds[b])
	}

	dist := make([]int, len(w.dist))
	startIdx := m.grid.Index(w.start)
	furthest, maxDist, loopLen, dropped := w.start, 0, 0, 0
	for i := range dist {
		dist[i] = -1
		switch owner := w.owner[i]; {
		case i == startIdx:
			dist[i] = 0
		case owner == a || owner == b:
			dist[i] = w.dist[i]
		case owner >= 0:
			dropped++
			continue
		default:
			continue
		}
		loopLen++
		if dist[i] > maxDist {
			furthest, maxDist = m.grid.Coordinate(i), dist[i]
		}
	}

	m.dist = dist
	m.start = w.start
	m.startShape = startShape
	m.loopLen = loopLen
	m.furthest = furthest
	m.maxDist = maxDist
	m.discovered = true

	m.opts.Logger.Printf("maze: loop through %v (%v) has %d cells, furthest %v at %d", w.start, startShape, loopLen, furthest, maxDist)
	if dropped > 0 {
		m.opts.Logger.Printf("maze: dropped %d cells on dangling branches", dropped)
	}

	return nil
}
