package mln

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("gomln.mln")
	meter  = otel.Meter("gomln.mln")
)

var (
	loadLatency    metric.Float64Histogram
	clausesEmitted metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		loadLatency, err = meter.Float64Histogram(
			"gomln_mln_load_duration_seconds",
			metric.WithDescription("Duration of model construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		clausesEmitted, err = meter.Int64Counter(
			"gomln_mln_clauses_total",
			metric.WithDescription("Total number of weighted clauses produced by translations"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startBuildSpan(ctx context.Context, nbEntries, nbConstants int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "mln.New",
		trace.WithAttributes(
			attribute.Int("mln.entries", nbEntries),
			attribute.Int("mln.constants", nbConstants),
		),
	)
}

func startTranslateSpan(ctx context.Context, index int, formula string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "mln.translate",
		trace.WithAttributes(
			attribute.Int("mln.entry", index),
			attribute.String("mln.formula", formula),
		),
	)
}

func recordLoadMetrics(ctx context.Context, duration time.Duration, nbClauses int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	loadLatency.Record(ctx, duration.Seconds(), attrs)
	if success {
		clausesEmitted.Add(ctx, int64(nbClauses))
	}
}
