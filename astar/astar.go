package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// AStar computes a minimum-cost path from start to goal in g.
//
// The frontier is a min-heap ordered by f = g + h, with equal f broken by
// insertion order so results are reproducible. gCost records the best known
// cost of every reached cell and cameFrom its predecessor. A neighbor is
// relaxed when it has no recorded cost or the new cost is strictly lower;
// heap entries superseded by a cheaper push are skipped when popped.
//
// Because the heuristic is admissible and consistent, the first time goal is
// popped its cost is optimal.
//
// Returns the result with gridgraph.ErrNotFound when the heap empties first,
// ErrGraphNil / ErrStartNotFound / ErrGoalNotFound for invalid input, or a
// context / hook error. Grid edges always cost 1, so no weight check is made.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key.
func AStar(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if !g.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotFound, goal)
	}

	V := g.Len()
	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		gCost:    make(map[gridgraph.Cell]int, V),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell, V),
		pq:       make(nodePQ, 0, V),
		res:      &Result{},
	}

	r.init(start)
	found, err := r.process()
	if err != nil {
		return r.res, err
	}
	if !found {
		return r.res, gridgraph.ErrNotFound
	}
	r.res.Path = gridgraph.Reconstruct(r.cameFrom, start, goal)
	r.res.Cost = r.gCost[goal]

	return r.res, nil
}

// Search is AStar returning only the path.
func Search(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (gridgraph.Path, error) {
	res, err := AStar(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *gridgraph.Graph
	options  Options
	goal     gridgraph.Cell
	gCost    map[gridgraph.Cell]int            // best known cost from start
	cameFrom map[gridgraph.Cell]gridgraph.Cell // predecessor on the best known path
	pq       nodePQ
	seq      int // insertion counter for tie-breaking
	res      *Result
}

// init seeds the heap with start at priority 0.
func (r *runner) init(start gridgraph.Cell) {
	r.gCost[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0, 0)
}

func (r *runner) push(c gridgraph.Cell, g, f int) {
	heap.Push(&r.pq, &nodeItem{cell: c, g: g, f: f, seq: r.seq})
	r.seq++
}

// process pops cells in f order until goal is popped or the heap is empty.
func (r *runner) process() (bool, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		// stale entry: a cheaper route was pushed after this one
		if item.g > r.gCost[item.cell] {
			continue
		}
		r.res.Expanded++
		if r.options.OnVisit != nil {
			if err := r.options.OnVisit(item.cell, item.g); err != nil {
				return false, fmt.Errorf("astar: OnVisit hook for %v: %w", item.cell, err)
			}
		}
		if item.cell == r.goal {
			return true, nil
		}
		r.relax(item.cell)
	}

	return false, nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u gridgraph.Cell) {
	base := r.gCost[u]
	for _, e := range r.g.Neighbors(u) {
		tentative := base + e.Cost
		if old, seen := r.gCost[e.To]; seen && tentative >= old {
			continue
		}
		r.gCost[e.To] = tentative
		r.cameFrom[e.To] = u
		r.push(e.To, tentative, tentative+r.options.Heuristic(e.To, r.goal))
	}
}
