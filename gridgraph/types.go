// Package gridgraph defines the cell, edge, graph and path types shared by
// every search package.
package gridgraph

import (
	"fmt"
	"strings"
)

// CellKind classifies a grid position by the code stored in the matrix.
type CellKind int

const (
	// Open is a free cell (code 0).
	Open CellKind = iota
	// Wall is impassable (code 1).
	Wall
	// Start marks the search origin (code 2).
	Start
	// Goal marks the search target (code 3).
	Goal
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// KindOf converts a raw matrix code into a CellKind.
// Returns ErrMalformedGrid for any code outside {0,1,2,3}.
func KindOf(code int) (CellKind, error) {
	if code < int(Open) || code > int(Goal) {
		return 0, fmt.Errorf("%w: unknown cell code %d", ErrMalformedGrid, code)
	}

	return CellKind(code), nil
}

// Cell is a (row, column) grid coordinate. Cells are the graph's vertices.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Edge is a directed half of an adjacency: the neighbor reached and the step cost.
type Edge struct {
	To   Cell
	Cost int
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal Cell) int

// Graph is the immutable adjacency structure built from a maze matrix.
// Only non-wall cells are keys; each key maps to its traversable neighbors
// in up, down, left, right order. Safe for concurrent readers.
type Graph struct {
	size  int
	kinds [][]CellKind
	adj   map[Cell][]Edge
	start Cell
	goal  Cell
	edges int
}

// Path is an ordered walk of cells from start to goal inclusive.
// A missing path is reported with ErrNotFound, never with an empty Path.
type Path []Cell

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// String renders the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}
