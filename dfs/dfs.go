package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// frame is one level of the explicit recursion stack: the cell entered and
// the index of the next neighbor to try.
type frame struct {
	cell gridgraph.Cell
	next int
}

// dfsWalker encapsulates mutable search state.
type dfsWalker struct {
	graph   *gridgraph.Graph
	opts    DFSOptions
	goal    gridgraph.Cell
	stack   []frame
	depth   map[gridgraph.Cell]int // shallowest depth each cell was entered at
	cut     bool                   // MaxDepth stopped a branch that could still grow
	res     *DFSResult
}

// DFS searches g depth-first from start and returns the first path to goal it
// meets. Neighbors are tried in the graph's order (up, down, left, right), so
// the path found is deterministic but not necessarily shortest.
//
// The explicit stack always equals the current root→cell path: a branch that
// dead-ends is popped before the next sibling is tried, so failed branches
// leave no trace in the result. Without a depth limit cells stay visited after
// backtracking, which bounds the search at O(V + E).
//
// With WithMaxDepth(k) a cell is entered again whenever it is reached at a
// smaller depth than before, so a path is found iff one of at most k edges
// exists. If the limit cut a branch and the goal was not reached, the search
// is inconclusive and ErrDepthLimit is returned instead of ErrNotFound.
//
// Returns the result with gridgraph.ErrNotFound if goal is unreachable
// (Expanded is still populated), ErrDepthLimit as above, ErrGraphNil / ErrStartNotFound /
// ErrGoalNotFound for bad input, ErrOptionViolation for bad options, or the
// context / hook error that aborted the search.
func DFS(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if !g.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotFound, goal)
	}

	w := &dfsWalker{
		graph:   g,
		opts:    o,
		goal:    goal,
		stack:   make([]frame, 0, 64),
		depth:   make(map[gridgraph.Cell]int, g.Len()),
		res:     &DFSResult{},
	}
	found, err := w.run(start)
	if err != nil {
		return w.res, err
	}
	if !found {
		if w.cut {
			return w.res, fmt.Errorf("%w: no path within %d edges", ErrDepthLimit, o.MaxDepth)
		}
		return w.res, gridgraph.ErrNotFound
	}

	return w.res, nil
}

// Search is DFS without the bookkeeping: it returns only the path.
func Search(g *gridgraph.Graph, start, goal gridgraph.Cell, opts ...Option) (gridgraph.Path, error) {
	res, err := DFS(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// run drives the stack until goal is entered or the root frame is exhausted.
func (w *dfsWalker) run(start gridgraph.Cell) (bool, error) {
	if err := w.enter(start, 0); err != nil {
		return false, err
	}
	if start == w.goal {
		w.capture()
		return true, nil
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbs := w.graph.Neighbors(top.cell)
		depth := len(w.stack) - 1
		if top.next >= len(nbs) {
			// branch exhausted: backtrack
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			w.noteCut(nbs[top.next:], depth+1)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nb := nbs[top.next].To
		top.next++
		if !w.shouldEnter(nb, depth+1) {
			continue
		}
		if err := w.enter(nb, depth+1); err != nil {
			return false, err
		}
		if nb == w.goal {
			w.capture()
			return true, nil
		}
	}

	return false, nil
}

// shouldEnter reports whether nb is unseen or, under a depth limit, now
// reachable at a smaller depth. Cells on the stack always fail the check.
func (w *dfsWalker) shouldEnter(nb gridgraph.Cell, d int) bool {
	seen, ok := w.depth[nb]
	if !ok {
		return true
	}

	return w.opts.MaxDepth > 0 && d < seen
}

// noteCut records whether any remaining neighbor would have been entered
// had the limit allowed depth d.
func (w *dfsWalker) noteCut(rest []gridgraph.Edge, d int) {
	for _, e := range rest {
		if w.shouldEnter(e.To, d) {
			w.cut = true
			return
		}
	}
}

// enter records c at depth d, runs the hook and pushes a fresh frame.
func (w *dfsWalker) enter(c gridgraph.Cell, d int) error {
	w.depth[c] = d
	w.res.Expanded++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}
	w.stack = append(w.stack, frame{cell: c})

	return nil
}

// capture copies the current stack into the result path.
func (w *dfsWalker) capture() {
	path := make(gridgraph.Path, len(w.stack))
	for i, f := range w.stack {
		path[i] = f.cell
	}
	w.res.Path = path
}
