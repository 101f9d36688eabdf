package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// randomMaze returns an n×n matrix with ~30% walls, start at (0,0), goal at (n-1,n-1).
func randomMaze(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
		for c := range grid[r] {
			if rng.Intn(10) < 3 {
				grid[r][c] = 1
			}
		}
	}
	grid[0][0] = 2
	grid[n-1][n-1] = 3

	return grid
}

// BenchmarkBuild measures Build on a random 500×500 maze.
// Complexity: O(N²)
func BenchmarkBuild(b *testing.B) {
	grid := randomMaze(500, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Build(grid); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents measures Components on a random 500×500 maze.
func BenchmarkComponents(b *testing.B) {
	g, err := gridgraph.Build(randomMaze(500, 42))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
