// Package astar implements A* search on a gridgraph.Graph.
//
// Overview:
//
//   - A* expands cells in increasing f = g + h, where g is the cost so far and
//     h the Manhattan distance to the goal.
//   - Equal f values pop in insertion order, so the path returned among several
//     optimal ones is reproducible.
//   - With an admissible, consistent heuristic the first pop of the goal is a
//     minimum-cost path; on unit-cost mazes its length equals the BFS path's.
//   - WithHeuristic(gridgraph.Zero) reduces the search to Dijkstra.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); superseded heap entries are skipped lazily.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound: invalid input.
//   - gridgraph.ErrNotFound: goal unreachable.
//
// Example:
//
//	res, err := astar.AStar(g, g.Start(), g.Goal())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
