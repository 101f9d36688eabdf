// Package dfs implements depth-first maze search over a gridgraph.Graph.
//
// What:
//
//   - DFS(g, start, goal, opts...) returns the first start→goal path met
//     while descending neighbors in up, down, left, right order.
//   - Uses an explicit stack of (cell, next-neighbor) frames instead of
//     recursion, so large mazes cannot overflow the goroutine stack.
//   - Dead-end branches are popped before the next sibling is tried; the
//     returned path never contains a failed detour.
//   - No shortest-path guarantee; use bfs or astar for that.
//
// Complexity:
//
//   - Time:   O(V + E); with a depth limit cells may be re-entered once per
//     smaller depth, so up to O(d·(V + E)).
//   - Memory: O(V) for the visited set and stack.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per step.
//   - WithOnVisit(fn)    pre-order hook; an error aborts the search.
//   - WithMaxDepth(d)    do not descend more than d edges from start; cells
//     reached again at a smaller depth are re-entered.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound for bad input.
//   - ErrOptionViolation for a negative depth limit.
//   - ErrDepthLimit when the depth limit cut the search before the goal.
//   - gridgraph.ErrNotFound when the goal cannot be reached.
//   - context.Canceled / DeadlineExceeded, or a wrapped hook error.
package dfs
