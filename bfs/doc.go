// Package bfs provides breadth-first maze search over a gridgraph.Graph,
// returning a path with the fewest edges between start and goal.
//
// What
//
//   - FIFO frontier seeded with start; a cell is visited when enqueued.
//   - Neighbors are enqueued in graph order (up, down, left, right), which
//     makes the path chosen among equal-length ones reproducible.
//   - The goal test happens on dequeue.
//   - Parent links are kept for every enqueued cell and the path is rebuilt
//     from them once goal is dequeued.
//
// Complexity (V = cells, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.Search(g, g.Start(), g.Goal())
//	if errors.Is(err, gridgraph.ErrNotFound) {
//	    // unreachable
//	}
//
// Options
//
//   - WithContext(ctx)   cancellation, checked once per dequeue.
//   - WithOnEnqueue(fn)  hook when a cell is enqueued.
//   - WithOnVisit(fn)    hook when a cell is dequeued; an error aborts.
//
// Errors
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound.
//   - gridgraph.ErrNotFound when the frontier empties.
//   - Context errors and wrapped OnVisit errors.
package bfs
