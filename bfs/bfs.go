package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *gridgraph.Graph
	opts    BFSOptions
	ctx     context.Context
	start   gridgraph.Cell
	goal    gridgraph.Cell
	queue   []queueItem
	visited map[gridgraph.Cell]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start until goal is dequeued.
// Cells are marked visited when enqueued, so none is queued twice; the first
// time goal leaves the queue its path has the fewest possible edges.
// Returns the result with gridgraph.ErrNotFound when the queue empties first,
// ErrGraphNil / ErrStartNotFound / ErrGoalNotFound for invalid input, or the
// context or OnVisit error that aborted the search.
func BFS(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if !g.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotFound, goal)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make(map[gridgraph.Cell]bool, n),
		res: &BFSResult{
			Depth:  make(map[gridgraph.Cell]int, n),
			Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}

	w.enqueue(start, 0)
	found, err := w.loop()
	if err != nil {
		return w.res, err
	}
	if !found {
		return w.res, gridgraph.ErrNotFound
	}
	w.res.Path = gridgraph.Reconstruct(w.res.Parent, start, goal)

	return w.res, nil
}

// Search is BFS returning only the path.
func Search(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (gridgraph.Path, error) {
	res, err := BFS(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// enqueue marks c visited at depth d, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(c gridgraph.Cell, d int) {
	w.visited[c] = true
	w.res.Depth[c] = d
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until goal is dequeued, the queue empties, or an error.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Expanded++
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		if item.cell == w.goal {
			return true, nil
		}
		for _, e := range w.graph.Neighbors(item.cell) {
			if w.visited[e.To] {
				continue
			}
			w.res.Parent[e.To] = item.cell
			w.enqueue(e.To, item.depth+1)
		}
	}

	return false, nil
}
