package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mustBuild(t *testing.T, grid [][]int) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	return g
}

var openGrid = [][]int{
	{2, 0, 0},
	{0, 0, 0},
	{0, 0, 3},
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	g := mustBuild(t, openGrid)

	_, err := bfs.BFS(nil, cell(0, 0), cell(2, 2))
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, cell(3, 0), g.Goal())
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, g.Start(), cell(0, 3))
	assert.ErrorIs(t, err, bfs.ErrGoalNotFound)
}

// TestBFS_OpenGrid: 3×3 without walls, 5 cells, cost 4.
func TestBFS_OpenGrid(t *testing.T) {
	g := mustBuild(t, openGrid)

	res, err := bfs.BFS(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{cell(0, 0), cell(1, 0), cell(2, 0), cell(2, 1), cell(2, 2)}, res.Path)
	cost, err := res.Path.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
	assert.Equal(t, 4, res.Depth[g.Goal()])
	assert.Equal(t, 9, res.Expanded)
	_, hasParent := res.Parent[g.Start()]
	assert.False(t, hasParent, "start has no parent")
}

// TestBFS_Shortest checks BFS takes the short detour rather than the first branch.
func TestBFS_Shortest(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 3, 0, 0},
		{0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
	})

	path, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.Len(t, path, 9)
	assert.NoError(t, path.Validate(g, g.Start(), g.Goal()))
}

func TestBFS_NotFound(t *testing.T) {
	g := mustBuild(t, [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 3},
	})

	res, err := bfs.BFS(g, g.Start(), g.Goal())
	assert.ErrorIs(t, err, gridgraph.ErrNotFound)
	require.NotNil(t, res)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.Expanded)
}

func TestBFS_StartIsGoal(t *testing.T) {
	g := mustBuild(t, openGrid)

	path, err := bfs.Search(g, cell(0, 2), cell(0, 2))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{cell(0, 2)}, path)
}

// TestBFS_Hooks checks enqueue-before-visit ordering and no duplicate enqueues.
func TestBFS_Hooks(t *testing.T) {
	g := mustBuild(t, openGrid)

	enqueued := map[gridgraph.Cell]int{}
	var visited []gridgraph.Cell
	_, err := bfs.Search(g, g.Start(), g.Goal(),
		bfs.WithOnEnqueue(func(c gridgraph.Cell, _ int) { enqueued[c]++ }),
		bfs.WithOnVisit(func(c gridgraph.Cell, _ int) error {
			assert.Equal(t, 1, enqueued[c], "visited %v before enqueue", c)
			visited = append(visited, c)
			return nil
		}),
	)
	require.NoError(t, err)
	for c, n := range enqueued {
		assert.Equal(t, 1, n, "%v enqueued %d times", c, n)
	}
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(1, 0), cell(0, 1)}, visited[:3])

	stop := errors.New("stop")
	_, err = bfs.Search(g, g.Start(), g.Goal(), bfs.WithOnVisit(func(gridgraph.Cell, int) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_ContextCancelled(t *testing.T) {
	g := mustBuild(t, openGrid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(g, g.Start(), g.Goal(), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
