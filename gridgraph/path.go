package gridgraph

import "fmt"

// Cost sums the edge costs along p.
// Returns ErrInvalidPath if two consecutive cells are not adjacent in g.
func (p Path) Cost(g *Graph) (int, error) {
	total := 0
	for i := 1; i < len(p); i++ {
		w, ok := g.EdgeCost(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidPath, p[i-1], p[i])
		}
		total += w
	}

	return total, nil
}

// Validate checks that p starts at start, ends at goal, only steps between
// adjacent cells of g, and never repeats a cell.
func (p Path) Validate(g *Graph, start, goal Cell) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if p[0] != start {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0], start)
	}
	if p[len(p)-1] != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, p[len(p)-1], goal)
	}
	seen := make(map[Cell]struct{}, len(p))
	for i, c := range p {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v repeated at step %d", ErrInvalidPath, c, i)
		}
		seen[c] = struct{}{}
	}
	_, err := p.Cost(g)

	return err
}

// Reconstruct walks parent links back from goal to start and returns the
// forward path. parent must not contain start.
func Reconstruct(parent map[Cell]Cell, start, goal Cell) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
