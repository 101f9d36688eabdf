package gridgraph

import "errors"

var (
	// ErrMalformedGrid indicates the input matrix cannot describe a maze:
	// empty, not square, ragged, unknown cell codes, or a missing/duplicate
	// start or goal marker.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrNotFound indicates a search exhausted its frontier without reaching the goal.
	ErrNotFound = errors.New("gridgraph: no path between start and goal")
	// ErrInvalidPath indicates a path is not a valid walk over the graph.
	ErrInvalidPath = errors.New("gridgraph: invalid path")
)
