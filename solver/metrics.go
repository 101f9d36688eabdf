package solver

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for search operations.
var (
	tracer = otel.Tracer("mazepath.solver")
	meter  = otel.Meter("mazepath.solver")
)

// Metrics for search runs.
var (
	searchTotal    metric.Int64Counter
	searchExpanded metric.Int64Histogram
	searchLatency  metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"maze_search_total",
			metric.WithDescription("Total number of maze searches by strategy and outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchExpanded, err = meter.Int64Histogram(
			"maze_search_expanded_nodes",
			metric.WithDescription("Cells expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchLatency, err = meter.Float64Histogram(
			"maze_search_duration_seconds",
			metric.WithDescription("Duration of maze searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records one finished search.
func recordSearchMetrics(ctx context.Context, o Outcome) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", string(o.Strategy)),
		attribute.Bool("found", o.Found),
		attribute.Bool("error", o.Err != nil),
	)

	searchTotal.Add(ctx, 1, attrs)
	searchExpanded.Record(ctx, int64(o.Expanded), attrs)
	searchLatency.Record(ctx, o.Duration.Seconds(), attrs)
}
