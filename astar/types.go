// Package astar defines configuration options and sentinel errors for
// heuristic-guided shortest-path search on maze graphs.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGraphNil indicates that a nil *gridgraph.Graph was passed to AStar.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrStartNotFound indicates that the start cell is not a vertex of the graph.
	ErrStartNotFound = errors.New("astar: start cell not found in graph")

	// ErrGoalNotFound indicates that the goal cell is not a vertex of the graph.
	ErrGoalNotFound = errors.New("astar: goal cell not found in graph")
)

// Options configures the behavior of the A* search.
//
// Ctx       – cancellation, checked once per pop.
// Heuristic – estimate of the remaining cost; must never overestimate.
//
//	Default is gridgraph.Manhattan.
//
// OnVisit   – hook run when a cell is expanded with its final g-cost;
//
//	an error aborts the search.
type Options struct {
	Ctx       context.Context
	Heuristic gridgraph.Heuristic
	OnVisit   func(c gridgraph.Cell, g int) error
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the Manhattan
// heuristic and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: gridgraph.Manhattan,
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. gridgraph.Zero turns the
// search into plain Dijkstra. A nil h is ignored.
func WithHeuristic(h gridgraph.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit registers a hook called for every expanded cell.
func WithOnVisit(fn func(c gridgraph.Cell, g int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result holds the outcome of an A* search.
type Result struct {
	// Path is the minimum-cost start→goal walk, nil when unreachable.
	Path gridgraph.Path
	// Cost is the total edge cost of Path.
	Cost int
	// Expanded counts cells popped and expanded (stale heap entries excluded).
	Expanded int
}
