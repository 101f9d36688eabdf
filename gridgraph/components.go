package gridgraph

// Components partitions the vertices into connected regions.
// Regions are ordered by their first cell in row-major order; cells inside a
// region are in BFS discovery order from that first cell.
//
// Time:   O(V + E).
// Memory: O(V) for the seen set and output.
func (g *Graph) Components() [][]Cell {
	seen := make(map[Cell]bool, len(g.adj))
	var comps [][]Cell

	for _, root := range g.Cells() {
		if seen[root] {
			continue
		}
		// flood fill from root
		queue := []Cell{root}
		seen[root] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range g.adj[queue[qi]] {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b lie in the same region.
// Cells that are not vertices are never connected.
func (g *Graph) Connected(a, b Cell) bool {
	if !g.Has(a) || !g.Has(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := map[Cell]bool{a: true}
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, e := range g.adj[queue[qi]] {
			if e.To == b {
				return true
			}
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
