// Package astar defines options, sentinel errors and result types for
// A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates a start or end position outside the grid.
	// It is the same value as gridgraph.ErrOutOfBounds.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrResourceExhausted indicates that no border storage could be
	// acquired for the search. The grid is left untouched.
	ErrResourceExhausted = errors.New("astar: border storage exhausted")
)

// DefaultPrecision scales Euclidean distances before truncation.
// log10(DefaultPrecision) decimal digits survive in every cost.
const DefaultPrecision int64 = 10

// Outcome tells whether a search reached its goal.
type Outcome int

const (
	// NotFound means the border emptied before the goal was reached.
	NotFound Outcome = iota
	// Found means the goal was dequeued; Result carries the path.
	Found
)

// String returns "not_found" or "found".
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one search.
//
// For Found, Cost is the scaled integer path cost (the goal's G), Distance is
// Cost divided by the precision, and Path lists the positions from start to
// goal inclusive. A search with start == end is Found with Distance 0 and a
// one-element Path. For NotFound, Distance and Cost are 0 and Path is nil.
type Result struct {
	Outcome    Outcome
	Distance   float64
	Cost       int64
	Path       []gridgraph.Position
	Expanded   int // nodes marked Visited
	BorderPeak int // largest border length observed
}

// Found reports whether the search reached its goal.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Option configures a Searcher or a one-shot Search.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks of a search.
type Options struct {
	// Ctx allows cancellation of package-level Search calls and carries the
	// parent span. Searcher.Search takes its context as an argument instead.
	Ctx context.Context

	// Precision multiplies Euclidean distances before truncation. Must be ≥ 1.
	Precision int64

	// BorderCapacity is the initial capacity of the border. The border grows
	// past it as needed. 0 selects the grid perimeter, 2·(W+H).
	BorderCapacity int

	// MaxConcurrent bounds how many searches may hold border storage at once
	// through one Searcher. 0 means unbounded.
	MaxConcurrent int

	// DeferredExpansion expands the node dequeued in the previous iteration
	// instead of the current one.
	DeferredExpansion bool

	// ReachabilityCheck runs a component test first and reports NotFound
	// without touching the grid when start and end are disconnected.
	ReachabilityCheck bool

	// OnVisit is called each time a node is marked Visited. Returning an
	// error aborts the search with that error wrapped.
	OnVisit func(p gridgraph.Position) error

	// OnBorder is called whenever a node is inserted into, or repositioned
	// within, the border, with its new G and H.
	OnBorder func(p gridgraph.Position, g, h int64)

	// Logger receives a Debug record per completed search.
	Logger *slog.Logger

	// TracerProvider and MeterProvider supply telemetry. nil selects the
	// global providers.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Precision = DefaultPrecision
//   - perimeter-sized initial border, no concurrency bound
//   - immediate expansion, no reachability pre-check
//   - no-op hooks, slog.Default(), global telemetry providers.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Precision: DefaultPrecision,
		OnVisit:   func(gridgraph.Position) error { return nil },
		OnBorder:  func(gridgraph.Position, int64, int64) {},
		Logger:    slog.Default(),
	}
}

// violation records the first invalid option.
func (o *Options) violation(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithContext sets a custom context for cancellation and span parenting.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPrecision sets the cost scaling factor.
//
//	p ≥ 1: costs keep log10(p) decimal digits
//	p < 1: invalid option → ErrOptionViolation
func WithPrecision(p int64) Option {
	return func(o *Options) {
		if p < 1 {
			o.violation("Precision must be at least 1 (%d)", p)
			return
		}
		o.Precision = p
	}
}

// WithBorderCapacity sets the initial border capacity. Negative values are
// rejected with ErrOptionViolation.
func WithBorderCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violation("BorderCapacity cannot be negative (%d)", n)
			return
		}
		o.BorderCapacity = n
	}
}

// WithMaxConcurrent bounds the number of searches holding border storage at
// once. 0 removes the bound; negative values are rejected.
func WithMaxConcurrent(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violation("MaxConcurrent cannot be negative (%d)", n)
			return
		}
		o.MaxConcurrent = n
	}
}

// WithDeferredExpansion selects the lock-step driver that expands the node
// dequeued one iteration earlier.
func WithDeferredExpansion() Option {
	return func(o *Options) {
		o.DeferredExpansion = true
	}
}

// WithReachabilityCheck enables the component pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithOnVisit registers a callback run on every Visited node; returning an
// error from it stops the search.
func WithOnVisit(fn func(p gridgraph.Position) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnBorder registers a callback run on every border insertion.
func WithOnBorder(fn func(p gridgraph.Position, g, h int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBorder = fn
		}
	}
}

// WithLogger sets the logger used for completion records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the provider of the search tracer.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider sets the provider of the search instruments.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = mp
	}
}
