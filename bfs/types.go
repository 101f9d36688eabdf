// Package bfs provides tunable options and error definitions
// for breadth-first maze search.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start cell is not a vertex.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrGoalNotFound is returned when the goal cell is not a vertex.
	ErrGoalNotFound = errors.New("bfs: goal cell not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, with its depth from start.
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnVisit is called when a cell is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Cell, depth int) error
}

// DefaultOptions returns a BFSOptions with a background context and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnVisit:   func(gridgraph.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS search:
//   - Path: shortest start→goal walk, nil when unreachable.
//   - Depth: distance in edges of every cell that was enqueued.
//   - Parent: predecessor of every enqueued cell except start.
//   - Expanded: number of cells dequeued.
type BFSResult struct {
	Path     gridgraph.Path
	Depth    map[gridgraph.Cell]int
	Parent   map[gridgraph.Cell]gridgraph.Cell
	Expanded int
}
