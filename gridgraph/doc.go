// Package gridgraph converts a square maze matrix into an immutable graph
// shared by the dfs, bfs and astar search packages.
//
// What:
//
//   - Build parses a [][]int of codes 0=open, 1=wall, 2=start, 3=goal.
//   - Every non-wall cell becomes a vertex; its neighbors are the in-bounds,
//     non-wall cells up, down, left and right of it (in that order), each
//     reached with cost 1.
//   - Manhattan is the distance heuristic used by A*.
//   - Path carries a search result and can validate and price itself.
//   - Components and Connected answer reachability questions.
//
// Invariants:
//
//   - Walls are never vertices nor neighbors.
//   - Adjacency is symmetric: b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b), same cost.
//   - An isolated open cell is a vertex with an empty neighbor list.
//   - The graph is never mutated after Build returns.
//
// Complexity:
//
//   - Build:      O(N²) time and memory for an N×N maze.
//   - Components: O(V + E).
//
// Errors:
//
//   - ErrMalformedGrid: empty, ragged or non-square matrix, unknown code,
//     missing or duplicate start/goal.
//   - ErrNotFound: returned by the search packages when the goal is unreachable.
//   - ErrInvalidPath: Path.Cost / Path.Validate found a broken walk.
package gridgraph
