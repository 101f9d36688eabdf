// Package dfs defines options, results and sentinel errors for depth-first
// maze search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

var (
	// ErrGraphNil is returned when a nil *gridgraph.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the start cell is not a vertex of the graph.
	ErrStartNotFound = errors.New("dfs: start cell not found")

	// ErrGoalNotFound indicates the goal cell is not a vertex of the graph.
	ErrGoalNotFound = errors.New("dfs: goal cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrDepthLimit indicates MaxDepth cut the search short before the goal
	// was reached; a longer path may exist.
	ErrDepthLimit = errors.New("dfs: depth limit reached")
)

// Option configures optional behavior of DFS.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per step. Defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is entered (pushed).
	// Returning an error aborts the search with that error.
	OnVisit func(c gridgraph.Cell) error

	// MaxDepth, if positive, stops descending past that many edges from start
	// and lets cells be re-entered along shorter routes. Zero means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hook and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: 0,
	}
}

// WithContext sets the Context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(c gridgraph.Cell) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits how many edges away from start the search may descend.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// DFSResult captures the outcome of a depth-first search.
type DFSResult struct {
	// Path is the start→goal walk found, nil when the goal was not reached.
	Path gridgraph.Path

	// Expanded counts the cells entered, including start.
	Expanded int
}
