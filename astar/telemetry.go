package astar

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/astargrid/gridgraph"
)

const instrumentationName = "github.com/katalvlaran/astargrid/astar"

// outcomeError labels searches that returned an error.
const outcomeError = "error"

// telemetry holds the tracer, instruments and logger of one Searcher.
type telemetry struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger *slog.Logger

	searchTotal    metric.Int64Counter
	searchDuration metric.Float64Histogram
	expandedNodes  metric.Int64Histogram
	borderPeak     metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
}

func newTelemetry(o *Options) *telemetry {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := o.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	return &telemetry{
		tracer: tp.Tracer(instrumentationName),
		meter:  mp.Meter(instrumentationName),
		logger: o.Logger,
	}
}

// initMetrics creates the instruments on first use.
func (t *telemetry) initMetrics() error {
	t.metricsOnce.Do(func() {
		var err error

		t.searchTotal, err = t.meter.Int64Counter(
			"astar_search_total",
			metric.WithDescription("Total number of A* searches by outcome"),
		)
		if err != nil {
			t.metricsErr = err
			return
		}

		t.searchDuration, err = t.meter.Float64Histogram(
			"astar_search_duration_seconds",
			metric.WithDescription("Duration of A* searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			t.metricsErr = err
			return
		}

		t.expandedNodes, err = t.meter.Int64Histogram(
			"astar_expanded_nodes",
			metric.WithDescription("Number of nodes marked visited per search"),
		)
		if err != nil {
			t.metricsErr = err
			return
		}

		t.borderPeak, err = t.meter.Int64Histogram(
			"astar_border_peak",
			metric.WithDescription("Largest border length per search"),
		)
		if err != nil {
			t.metricsErr = err
			return
		}
	})
	if t.metricsErr != nil {
		t.logger.Warn("astar: metrics disabled", slog.String("error", t.metricsErr.Error()))
	}

	return t.metricsErr
}

// start opens the search span. g may be nil.
func (t *telemetry) start(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Position, precision int64) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("astar.start", start.String()),
		attribute.String("astar.end", end.String()),
		attribute.Int64("astar.precision", precision),
	}
	if g != nil {
		attrs = append(attrs,
			attribute.Int("astar.grid.width", g.Width),
			attribute.Int("astar.grid.height", g.Height),
		)
	}

	return t.tracer.Start(ctx, "astar.Search", trace.WithAttributes(attrs...))
}

// finish annotates the span, records metrics and logs the completion.
func (t *telemetry) finish(ctx context.Context, span trace.Span, res Result, err error, elapsed time.Duration) {
	outcome := res.Outcome.String()
	if err != nil {
		outcome = outcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(
		attribute.String("astar.outcome", outcome),
		attribute.Int("astar.expanded", res.Expanded),
		attribute.Int("astar.border_peak", res.BorderPeak),
	)
	if res.Found() {
		span.SetAttributes(
			attribute.Int64("astar.cost", res.Cost),
			attribute.Float64("astar.distance", res.Distance),
			attribute.Int("astar.path_length", len(res.Path)),
		)
	}

	if t.initMetrics() == nil {
		attrs := metric.WithAttributes(attribute.String("outcome", outcome))
		t.searchTotal.Add(ctx, 1, attrs)
		t.searchDuration.Record(ctx, elapsed.Seconds(), attrs)
		t.expandedNodes.Record(ctx, int64(res.Expanded))
		t.borderPeak.Record(ctx, int64(res.BorderPeak))
	}

	logAttrs := []any{
		slog.String("outcome", outcome),
		slog.Int("expanded", res.Expanded),
		slog.Int("border_peak", res.BorderPeak),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	if res.Found() {
		logAttrs = append(logAttrs, slog.Float64("distance", res.Distance), slog.Int("path_length", len(res.Path)))
	}
	t.logger.DebugContext(ctx, "A* search completed", logAttrs...)
}
