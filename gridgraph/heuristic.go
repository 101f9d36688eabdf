package gridgraph

// Manhattan returns |Δrow| + |Δcol| between a and b.
// Admissible and consistent for four-directional unit-cost moves.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero is the trivial heuristic; with it A* degrades to Dijkstra.
func Zero(_, _ Cell) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
