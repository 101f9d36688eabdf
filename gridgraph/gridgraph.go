package gridgraph

import "fmt"

// neighborOffsets lists (dRow, dCol) in exploration order: up, down, left, right.
// Search results depend on this order, so it must not change.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// stepCost is the cost of one orthogonal move.
const stepCost = 1

// Build constructs a Graph from a square matrix of cell codes and resolves the
// start (2) and goal (3) markers.
// Returns ErrMalformedGrid if the matrix is empty, not square, ragged, holds an
// unknown code, or does not contain exactly one start and one goal.
// Complexity: O(N²) time and memory for an N×N matrix.
func Build(matrix [][]int) (*Graph, error) {
	kinds, err := classify(matrix)
	if err != nil {
		return nil, err
	}

	var starts, goals []Cell
	for r, row := range kinds {
		for c, k := range row {
			switch k {
			case Start:
				starts = append(starts, Cell{r, c})
			case Goal:
				goals = append(goals, Cell{r, c})
			}
		}
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: want exactly one start marker, found %d", ErrMalformedGrid, len(starts))
	}
	if len(goals) != 1 {
		return nil, fmt.Errorf("%w: want exactly one goal marker, found %d", ErrMalformedGrid, len(goals))
	}

	return link(kinds, starts[0], goals[0]), nil
}

// BuildWithEndpoints constructs a Graph from matrix using caller-supplied
// endpoints instead of the start/goal markers, which are treated as open cells.
// Both endpoints must be in-bounds, non-wall cells.
func BuildWithEndpoints(matrix [][]int, start, goal Cell) (*Graph, error) {
	kinds, err := classify(matrix)
	if err != nil {
		return nil, err
	}
	for _, c := range []Cell{start, goal} {
		if !inBounds(len(kinds), c) {
			return nil, fmt.Errorf("%w: endpoint %v out of bounds", ErrMalformedGrid, c)
		}
		if kinds[c.Row][c.Col] == Wall {
			return nil, fmt.Errorf("%w: endpoint %v is a wall", ErrMalformedGrid, c)
		}
	}

	return link(kinds, start, goal), nil
}

// classify validates the matrix shape and codes and returns a deep copy as kinds.
func classify(matrix [][]int) ([][]CellKind, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrMalformedGrid)
	}
	kinds := make([][]CellKind, n)
	for r, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGrid, r, len(row), n)
		}
		kinds[r] = make([]CellKind, n)
		for c, code := range row {
			k, err := KindOf(code)
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Cell{r, c})
			}
			kinds[r][c] = k
		}
	}

	return kinds, nil
}

// link builds the adjacency map over validated kinds.
func link(kinds [][]CellKind, start, goal Cell) *Graph {
	n := len(kinds)
	g := &Graph{
		size:  n,
		kinds: kinds,
		adj:   make(map[Cell][]Edge, n*n),
		start: start,
		goal:  goal,
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if kinds[r][c] == Wall {
				continue
			}
			edges := make([]Edge, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				nb := Cell{r + d[0], c + d[1]}
				if !inBounds(n, nb) || kinds[nb.Row][nb.Col] == Wall {
					continue
				}
				edges = append(edges, Edge{To: nb, Cost: stepCost})
			}
			g.adj[Cell{r, c}] = edges
			g.edges += len(edges)
		}
	}

	return g
}

func inBounds(n int, c Cell) bool {
	return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n
}

// Size returns the side length of the square maze.
func (g *Graph) Size() int { return g.size }

// Start returns the start cell.
func (g *Graph) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Graph) Goal() Cell { return g.goal }

// Len returns the number of vertices (non-wall cells).
func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount returns the number of directed adjacency entries.
// Each undirected corridor step is counted twice.
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether c is a vertex of the graph.
func (g *Graph) Has(c Cell) bool {
	_, ok := g.adj[c]
	return ok
}

// Kind returns the kind of the cell at c; ok is false when c is out of bounds.
func (g *Graph) Kind(c Cell) (kind CellKind, ok bool) {
	if !inBounds(g.size, c) {
		return 0, false
	}

	return g.kinds[c.Row][c.Col], true
}

// Neighbors returns the edges leaving c in up, down, left, right order.
// The returned slice is shared and must not be modified.
// Returns nil for walls and cells outside the graph.
func (g *Graph) Neighbors(c Cell) []Edge {
	return g.adj[c]
}

// Cells returns every vertex in row-major order.
func (g *Graph) Cells() []Cell {
	cells := make([]Cell, 0, len(g.adj))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.kinds[r][c] != Wall {
				cells = append(cells, Cell{r, c})
			}
		}
	}

	return cells
}

// EdgeCost returns the cost of the edge a→b; ok is false when they are not adjacent.
func (g *Graph) EdgeCost(a, b Cell) (cost int, ok bool) {
	for _, e := range g.adj[a] {
		if e.To == b {
			return e.Cost, true
		}
	}

	return 0, false
}
