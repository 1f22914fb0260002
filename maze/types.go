// Package maze provides tunable options and error definitions
// for pipe loop discovery.
package maze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Sentinel errors for maze construction and discovery.
var (
	// ErrGridNil is returned if a nil grid is passed to New.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrNoStartFound is returned when no cell holds pipe.Start.
	ErrNoStartFound = errors.New("maze: no start position found")

	// ErrNoLoop is returned when the start cell does not close a loop.
	ErrNoLoop = errors.New("maze: start is not on a closed loop")
)

// Option configures discovery via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for DiscoverLoop.
type Options struct {
	// Ctx allows an early abort on very large grids.
	Ctx context.Context

	// OnVisit is called when a cell is recorded with its distance.
	// Cells on dangling branches are reported too; they are dropped later.
	OnVisit func(c grid.Coord, dist int)

	// OnDiscard is called when a walker enters c travelling in and the pipe
	// there does not accept it.
	OnDiscard func(c grid.Coord, in pipe.Direction)

	// Logger receives discovery summaries. Defaults to a discarding logger.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and a logger that writes nowhere.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(grid.Coord, int) {},
		OnDiscard: func(grid.Coord, pipe.Direction) {},
		Logger:    log.New(io.Discard, "", 0),
	}
}

// WithContext sets a context checked once per dequeued cell.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a callback run whenever a cell is recorded.
func WithOnVisit(fn func(c grid.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscard registers a callback run whenever a walker dead-ends.
func WithOnDiscard(fn func(c grid.Coord, in pipe.Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithLogger routes discovery logging to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
