// Package mazepath turns square text mazes into grid graphs and searches
// them from start to goal with three independent strategies.
//
// What is mazepath?
//
//	A small toolkit and CLI that brings together:
//		• Grid graphs: 0 open, 1 wall, 2 start, 3 goal; 4-neighborhood, unit cost
//		• Depth-first search with an explicit frame stack
//		• Breadth-first search (shortest in edges)
//		• A* with a Manhattan heuristic (Dijkstra with a zero heuristic)
//		• A solver that runs the strategies in sequence with slog logs and
//		  OpenTelemetry spans and metrics
//
// Layout:
//
//	gridgraph/     Cell, Graph, Path, Build, Manhattan, Components
//	dfs/           DFS, Search, WithMaxDepth
//	bfs/           BFS, Search, WithOnEnqueue
//	astar/         AStar, Search, WithHeuristic
//	mazefile/      (width,height) + [v0,...] text format: Parse, Load, Format
//	solver/        Strategy, Solver.Solve, Report
//	config/        YAML config validated with go-playground/validator
//	telemetry/     stdout trace and metric exporters
//	cmd/mazepath/  cobra CLI: solve, graph, version
//
// Quick start:
//
//	go run ./cmd/mazepath solve testdata/laberinto.txt --overlay
package mazepath
