// Package solver runs the configured search strategies over one maze graph
// and collects their outcomes.
//
// Strategies run one after another and share nothing but the read-only
// graph. A strategy that finds no path, fails, or times out does not stop
// the ones after it.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// ErrGraphNil is returned by Solve for a nil graph.
var ErrGraphNil = errors.New("solver: graph is nil")

// Outcome is the result of one strategy.
type Outcome struct {
	Strategy Strategy
	// Path is nil unless Found.
	Path     gridgraph.Path
	Cost     int
	Expanded int
	Found    bool
	// Err is set when the search was aborted (timeout, cancellation, bad input).
	// A plain "no path" leaves Err nil and Found false.
	Err      error
	Duration time.Duration
}

// Report collects the outcomes of one Solve call.
type Report struct {
	RunID string
	Start gridgraph.Cell
	Goal  gridgraph.Cell
	// Connected is the flood-fill answer to "is goal reachable from start".
	Connected bool
	Outcomes  []Outcome
}

// Outcome returns the outcome for s, if it was run.
func (r *Report) Outcome(s Strategy) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Strategy == s {
			return o, true
		}
	}

	return Outcome{}, false
}

// Solver runs strategies according to a config.Search.
type Solver struct {
	cfg        config.Search
	strategies []Strategy
	logger     *slog.Logger
}

// New validates cfg and returns a Solver. A nil logger discards logs.
func New(cfg config.Search, logger *slog.Logger) (*Solver, error) {
	strategies, err := ParseStrategies(cfg.Strategies)
	if err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies configured", ErrUnknownStrategy)
	}
	if cfg.Timeout < 0 || cfg.DFSMaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative limit", config.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Solver{cfg: cfg, strategies: strategies, logger: logger}, nil
}

// Strategies returns the strategies in run order.
func (s *Solver) Strategies() []Strategy {
	return append([]Strategy(nil), s.strategies...)
}

// Solve runs every configured strategy from g.Start() to g.Goal().
func (s *Solver) Solve(ctx context.Context, g *gridgraph.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return s.SolveBetween(ctx, g, g.Start(), g.Goal())
}

// SolveBetween runs every configured strategy from start to goal.
func (s *Solver) SolveBetween(ctx context.Context, g *gridgraph.Graph, start, goal gridgraph.Cell) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "Solver.Solve",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("maze.size", g.Size()),
			attribute.Int("maze.cells", g.Len()),
		),
	)
	defer span.End()

	logger := s.logger.With(slog.String("run_id", runID))
	report := &Report{
		RunID:     runID,
		Start:     start,
		Goal:      goal,
		Connected: g.Connected(start, goal),
		Outcomes:  make([]Outcome, 0, len(s.strategies)),
	}
	logger.Info("solving maze",
		slog.Int("size", g.Size()),
		slog.Int("cells", g.Len()),
		slog.Int("edges", g.EdgeCount()),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Bool("connected", report.Connected),
	)

	for _, st := range s.strategies {
		o := s.run(ctx, g, st, start, goal)
		report.Outcomes = append(report.Outcomes, o)
		switch {
		case o.Err != nil:
			logger.Warn("search aborted",
				slog.String("strategy", string(st)),
				slog.Duration("duration", o.Duration),
				slog.Any("error", o.Err),
			)
		case o.Found:
			logger.Info("path found",
				slog.String("strategy", string(st)),
				slog.Int("length", o.Path.Len()),
				slog.Int("cost", o.Cost),
				slog.Int("expanded", o.Expanded),
				slog.Duration("duration", o.Duration),
			)
		default:
			logger.Info("no path found",
				slog.String("strategy", string(st)),
				slog.Int("expanded", o.Expanded),
				slog.Duration("duration", o.Duration),
			)
		}
	}

	return report, nil
}

// Run executes a single strategy with the solver's limits.
func (s *Solver) Run(ctx context.Context, g *gridgraph.Graph, st Strategy, start, goal gridgraph.Cell) Outcome {
	return s.run(ctx, g, st, start, goal)
}

func (s *Solver) run(ctx context.Context, g *gridgraph.Graph, st Strategy, start, goal gridgraph.Cell) Outcome {
	ctx, span := tracer.Start(ctx, "Solver.run",
		trace.WithAttributes(attribute.String("strategy", string(st))),
	)
	defer span.End()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	began := time.Now()
	o := search(ctx, g, st, start, goal, s.cfg.DFSMaxDepth)
	o.Duration = time.Since(began)

	span.SetAttributes(
		attribute.Bool("found", o.Found),
		attribute.Int("expanded", o.Expanded),
		attribute.Int("path.length", o.Path.Len()),
	)
	if o.Err != nil {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	}
	recordSearchMetrics(ctx, o)

	return o
}

// search dispatches to the algorithm package and normalizes its result.
func search(ctx context.Context, g *gridgraph.Graph, st Strategy, start, goal gridgraph.Cell, maxDepth int) Outcome {
	o := Outcome{Strategy: st}
	var (
		path gridgraph.Path
		err  error
	)
	switch st {
	case DFS:
		var res *dfs.DFSResult
		res, err = dfs.DFS(g, start, goal, dfs.WithContext(ctx), dfs.WithMaxDepth(maxDepth))
		if res != nil {
			path, o.Expanded = res.Path, res.Expanded
		}
	case BFS:
		var res *bfs.BFSResult
		res, err = bfs.BFS(g, start, goal, bfs.WithContext(ctx))
		if res != nil {
			path, o.Expanded = res.Path, res.Expanded
		}
	case AStar:
		var res *astar.Result
		res, err = astar.AStar(g, start, goal, astar.WithContext(ctx))
		if res != nil {
			path, o.Expanded = res.Path, res.Expanded
		}
	default:
		o.Err = fmt.Errorf("%w: %q", ErrUnknownStrategy, st)
		return o
	}

	// dfs.ErrDepthLimit is inconclusive, so it stays an error rather than NotFound.
	switch {
	case errors.Is(err, gridgraph.ErrNotFound):
		return o
	case err != nil:
		o.Err = err
		return o
	}
	cost, err := path.Cost(g)
	if err != nil {
		o.Err = err
		return o
	}
	o.Path, o.Cost, o.Found = path, cost, true

	return o
}
