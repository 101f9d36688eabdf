package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// BenchmarkAStar_Open200 measures A* across an empty 200×200 maze.
func BenchmarkAStar_Open200(b *testing.B) {
	const n = 200
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
	}
	grid[0][0], grid[n-1][n-1] = 2, 3
	g, err := gridgraph.Build(grid)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, g.Start(), g.Goal())
	}
}

// BenchmarkAStar_Random200 measures A* on a 200×200 maze with ~25% walls.
func BenchmarkAStar_Random200(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
		for c := range grid[r] {
			if rng.Intn(4) == 0 {
				grid[r][c] = 1
			}
		}
	}
	grid[0][0], grid[n-1][n-1] = 2, 3
	g, err := gridgraph.Build(grid)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, g.Start(), g.Goal())
	}
}
