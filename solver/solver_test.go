package solver_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solver"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mustBuild(t *testing.T, grid [][]int) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	return g
}

func newSolver(t *testing.T, strategies ...string) *solver.Solver {
	t.Helper()
	cfg := config.Default().Search
	if len(strategies) > 0 {
		cfg.Strategies = strategies
	}
	s, err := solver.New(cfg, nil)
	require.NoError(t, err)

	return s
}

// randomMaze returns an n×n maze with roughly pct% walls, start top-left and goal bottom-right.
func randomMaze(rng *rand.Rand, n, pct int) [][]int {
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
		for c := range grid[r] {
			if rng.Intn(100) < pct {
				grid[r][c] = 1
			}
		}
	}
	grid[0][0] = 2
	grid[n-1][n-1] = 3

	return grid
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	_, err := solver.New(config.Search{Strategies: []string{"dfs", "greedy"}}, nil)
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)

	_, err = solver.New(config.Search{}, nil)
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)

	_, err = solver.New(config.Search{Strategies: []string{"bfs"}, DFSMaxDepth: -2}, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	s := newSolver(t, "astar", "dfs")
	assert.Equal(t, []solver.Strategy{solver.AStar, solver.DFS}, s.Strategies())

	_, err = s.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, solver.ErrGraphNil)
}

//----------------------------------------------------------------------------//
// End-to-end mazes
//----------------------------------------------------------------------------//

// TestSolve_OpenGridShortest: 3×3 without walls, BFS/A* path of 5 cells and cost 4.
func TestSolve_OpenGridShortest(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})

	rep, err := newSolver(t).Solve(context.Background(), g)
	require.NoError(t, err)
	for _, st := range []solver.Strategy{solver.BFS, solver.AStar} {
		o, ok := rep.Outcome(st)
		require.True(t, ok)
		assert.True(t, o.Found, st)
		assert.Len(t, o.Path, 5, st)
		assert.Equal(t, 4, o.Cost, st)
	}
}

// TestSolve_StartWalledIn: start walled in on all four sides.
func TestSolve_StartWalledIn(t *testing.T) {
	g := mustBuild(t, [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 3},
	})

	rep, err := newSolver(t).Solve(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, rep.Connected)
	require.Len(t, rep.Outcomes, 3)
	for _, o := range rep.Outcomes {
		assert.False(t, o.Found, o.Strategy)
		assert.NoError(t, o.Err, o.Strategy)
		assert.Nil(t, o.Path, o.Strategy)
	}
}

// TestSolve_StartIsGoal: start == goal yields the single-cell path for every strategy.
func TestSolve_StartIsGoal(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})

	rep, err := newSolver(t).SolveBetween(context.Background(), g, cell(1, 1), cell(1, 1))
	require.NoError(t, err)
	for _, o := range rep.Outcomes {
		assert.True(t, o.Found, o.Strategy)
		assert.Equal(t, gridgraph.Path{cell(1, 1)}, o.Path, o.Strategy)
		assert.Zero(t, o.Cost, o.Strategy)
	}
}

// TestSolve_SingleCorridor: a single unbranched corridor gives identical paths.
func TestSolve_SingleCorridor(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0, 1},
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{1, 1, 0, 3},
	})

	rep, err := newSolver(t).Solve(context.Background(), g)
	require.NoError(t, err)
	want := gridgraph.Path{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2), cell(3, 2), cell(3, 3)}
	for _, o := range rep.Outcomes {
		assert.Equal(t, want, o.Path, o.Strategy)
	}
}

// TestBuild_NonSquare: non-square input never reaches the solver.
func TestBuild_NonSquare(t *testing.T) {
	_, err := gridgraph.Build([][]int{{2, 0, 0}, {0, 0, 3}})
	assert.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
}

//----------------------------------------------------------------------------//
// Cross-strategy properties
//----------------------------------------------------------------------------//

// TestProperties checks, over random mazes, that strategies agree on
// reachability, BFS and A* agree on length, every path is a valid walk, and
// re-running yields the same paths.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	s := newSolver(t)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		n := 2 + rng.Intn(11)
		g := mustBuild(t, randomMaze(rng, n, 35))

		rep, err := s.Solve(ctx, g)
		require.NoError(t, err)
		require.Len(t, rep.Outcomes, 3)

		dfsO, _ := rep.Outcome(solver.DFS)
		bfsO, _ := rep.Outcome(solver.BFS)
		aO, _ := rep.Outcome(solver.AStar)

		for _, o := range rep.Outcomes {
			require.NoError(t, o.Err)
			assert.Equal(t, rep.Connected, o.Found, "maze %d %s: reachability", i, o.Strategy)
			if o.Found {
				assert.NoError(t, o.Path.Validate(g, g.Start(), g.Goal()), "maze %d %s", i, o.Strategy)
			}
		}
		assert.Equal(t, bfsO.Found, dfsO.Found)
		assert.Equal(t, bfsO.Found, aO.Found)
		if bfsO.Found {
			assert.Equal(t, bfsO.Path.Len(), aO.Path.Len(), "maze %d: BFS vs A* length", i)
			assert.Equal(t, bfsO.Cost, aO.Cost)
			assert.GreaterOrEqual(t, dfsO.Path.Len(), bfsO.Path.Len())
		}

		again, err := s.Solve(ctx, g)
		require.NoError(t, err)
		for j := range rep.Outcomes {
			assert.Equal(t, rep.Outcomes[j].Path, again.Outcomes[j].Path, "maze %d: idempotence", i)
		}
		assert.NotEqual(t, rep.RunID, again.RunID)
	}
}

//----------------------------------------------------------------------------//
// Limits, cancellation, logging and telemetry
//----------------------------------------------------------------------------//

func TestSolve_DFSMaxDepth(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})
	cfg := config.Default().Search
	cfg.DFSMaxDepth = 3
	s, err := solver.New(cfg, nil)
	require.NoError(t, err)

	rep, err := s.Solve(context.Background(), g)
	require.NoError(t, err)
	d, _ := rep.Outcome(solver.DFS)
	assert.False(t, d.Found)
	assert.ErrorIs(t, d.Err, dfs.ErrDepthLimit, "a truncated search is not a missing path")
	b, _ := rep.Outcome(solver.BFS)
	assert.True(t, b.Found, "depth limit applies to DFS only")
}

// TestSolve_DFSMaxDepthAgreesWithBFS uses a maze where plain DFS reaches the
// cell before the goal along a detour; a limit that fits the shortest path
// must still find one.
func TestSolve_DFSMaxDepthAgreesWithBFS(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 3},
	})
	cfg := config.Default().Search
	cfg.DFSMaxDepth = 7
	s, err := solver.New(cfg, nil)
	require.NoError(t, err)

	rep, err := s.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, rep.Connected)
	for _, o := range rep.Outcomes {
		require.NoError(t, o.Err, o.Strategy)
		assert.True(t, o.Found, o.Strategy)
		assert.Equal(t, 6, o.Cost, o.Strategy)
	}
}

// TestSolve_Cancelled verifies an aborted strategy does not stop the others.
func TestSolve_Cancelled(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := newSolver(t).Solve(ctx, g)
	require.NoError(t, err)
	require.Len(t, rep.Outcomes, 3)
	for _, o := range rep.Outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled, o.Strategy)
		assert.False(t, o.Found)
	}
}

func TestSolve_Logs(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 1},
		{0, 3},
	})
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	s, err := solver.New(config.Default().Search, logger)
	require.NoError(t, err)

	rep, err := s.Solve(context.Background(), g)
	require.NoError(t, err)

	var msgs []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		assert.Equal(t, rep.RunID, rec["run_id"])
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Equal(t, []string{"solving maze", "path found", "path found", "path found"}, msgs)
}

func TestSolve_Telemetry(t *testing.T) {
	before := len(spanRecorder.Ended())
	g := mustBuild(t, [][]int{
		{2, 0},
		{0, 3},
	})

	_, err := newSolver(t, "bfs", "astar").Solve(context.Background(), g)
	require.NoError(t, err)

	names := map[string]int{}
	for _, sp := range spanRecorder.Ended()[before:] {
		names[sp.Name()]++
	}
	assert.Equal(t, 1, names["Solver.Solve"])
	assert.Equal(t, 2, names["Solver.run"])

	var rm metricdata.ResourceMetrics
	require.NoError(t, metricReader.Collect(context.Background(), &rm))
	seen := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			seen[m.Name] = true
		}
	}
	assert.True(t, seen["maze_search_total"])
	assert.True(t, seen["maze_search_expanded_nodes"])
	assert.True(t, seen["maze_search_duration_seconds"])
}

func TestRun_SingleStrategy(t *testing.T) {
	g := mustBuild(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})
	s := newSolver(t)

	o := s.Run(context.Background(), g, solver.AStar, cell(0, 0), cell(0, 2))
	require.NoError(t, o.Err)
	require.True(t, o.Found)
	assert.Equal(t, gridgraph.Path{cell(0, 0), cell(0, 1), cell(0, 2)}, o.Path)
	assert.Equal(t, 2, o.Cost)

	same := s.Run(context.Background(), g, solver.BFS, cell(1, 1), cell(1, 1))
	require.True(t, same.Found)
	assert.Equal(t, gridgraph.Path{cell(1, 1)}, same.Path)
	assert.Equal(t, 0, same.Cost)
}
