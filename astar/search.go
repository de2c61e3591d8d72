package astar

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// walker encapsulates mutable state of one search.
type walker struct {
	grid     *gridgraph.Grid
	opts     *Options
	ctx      context.Context
	border   *Border
	goal     gridgraph.Position
	goalIdx  int
	expanded int
}

// Searcher runs searches with a fixed set of Options, reusing border storage
// between calls. It is safe for concurrent use on distinct grids.
type Searcher struct {
	opts Options
	sem  *semaphore.Weighted // nil when MaxConcurrent is 0
	pool sync.Pool
	tel  *telemetry
}

// NewSearcher builds a Searcher from opts.
// Returns ErrOptionViolation when any option is invalid.
func NewSearcher(opts ...Option) (*Searcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Searcher{
		opts: o,
		tel:  newTelemetry(&o),
	}
	s.pool.New = func() any { return &Border{} }
	if o.MaxConcurrent > 0 {
		s.sem = semaphore.NewWeighted(int64(o.MaxConcurrent))
	}

	return s, nil
}

// Search finds a cheapest path from start to end on g. The grid must not be
// carrying state from an earlier search; call g.Reset between searches.
//
// On return every touched node is Border or Visited, and the nodes of the
// found path (start and end included) are Path.
//
// Returns ErrNilGrid, ErrOutOfBounds, ErrResourceExhausted, the context error
// wrapped on cancellation, or an OnVisit error wrapped. An unreachable goal
// is not an error: Result.Outcome is NotFound.
func (s *Searcher) Search(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Position) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	began := time.Now()
	ctx, span := s.tel.start(ctx, g, start, end, s.opts.Precision)
	defer span.End()

	res, err := s.search(ctx, span, g, start, end)
	s.tel.finish(ctx, span, res, err, time.Since(began))

	return res, err
}

func (s *Searcher) search(ctx context.Context, span trace.Span, g *gridgraph.Grid, start, end gridgraph.Position) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Width, g.Height)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, g.Width, g.Height)
	}

	startIdx, goalIdx := g.Index(start), g.Index(end)
	// Obstacles never become Visited or Path, so a blocked endpoint ends the
	// search before anything is marked.
	if !g.Nodes[startIdx].State.Traversable() || !g.Nodes[goalIdx].State.Traversable() {
		span.AddEvent("blocked_endpoint")
		return Result{}, nil
	}
	if s.opts.ReachabilityCheck && !g.Connected(start, end) {
		span.AddEvent("reachability_short_circuit")
		return Result{}, nil
	}

	border, release, err := s.acquire(g)
	if err != nil {
		return Result{}, err
	}
	defer release()

	w := &walker{
		grid:    g,
		opts:    &s.opts,
		ctx:     ctx,
		border:  border,
		goal:    end,
		goalIdx: goalIdx,
	}
	goal, found, err := w.run(startIdx)
	res := Result{Expanded: w.expanded, BorderPeak: border.Peak()}
	if err != nil {
		if ctx.Err() != nil {
			span.AddEvent("cancelled", trace.WithAttributes(
				attribute.Int("astar.expanded", w.expanded),
			))
		}
		return res, err
	}
	if !found {
		return res, nil
	}

	res.Outcome = Found
	res.Cost = g.Nodes[goal].G
	res.Distance = Descale(res.Cost, s.opts.Precision)
	res.Path = w.extractPath(goal)

	return res, nil
}

// acquire takes border storage sized for g. Without a free slot it fails
// immediately with ErrResourceExhausted.
func (s *Searcher) acquire(g *gridgraph.Grid) (*Border, func(), error) {
	if s.sem != nil && !s.sem.TryAcquire(1) {
		return nil, nil, ErrResourceExhausted
	}

	capacity := s.opts.BorderCapacity
	if capacity == 0 {
		capacity = 2 * (g.Width + g.Height)
	}
	b := s.pool.Get().(*Border)
	b.attach(g, capacity)

	release := func() {
		b.detach()
		s.pool.Put(b)
		if s.sem != nil {
			s.sem.Release(1)
		}
	}

	return b, release, nil
}

// run drives the search from startIdx until the goal is dequeued or the
// border empties. It returns the goal index and whether it was reached.
func (w *walker) run(startIdx int) (goal int, found bool, err error) {
	last, next := startIdx, startIdx
	for next != w.goalIdx {
		// cancellation check (once per iteration)
		select {
		case <-w.ctx.Done():
			return 0, false, fmt.Errorf("astar: search cancelled: %w", w.ctx.Err())
		default:
		}

		if err := w.visit(next); err != nil {
			return 0, false, err
		}
		if w.opts.DeferredExpansion {
			w.expand(last)
		} else {
			w.expand(next)
		}

		last = next
		var ok bool
		if next, ok = w.border.PopFront(); !ok {
			return 0, false, nil
		}
	}

	return next, true, nil
}

// visit marks node idx Visited and calls OnVisit.
func (w *walker) visit(idx int) error {
	n := &w.grid.Nodes[idx]
	n.State = gridgraph.Visited
	w.expanded++
	if err := w.opts.OnVisit(n.Pos); err != nil {
		return fmt.Errorf("astar: OnVisit error at %v: %w", n.Pos, err)
	}

	return nil
}

// extractPath marks the parent chain of goal as Path and returns it in
// start-to-goal order.
func (w *walker) extractPath(goal int) []gridgraph.Position {
	var path []gridgraph.Position
	for i := goal; ; {
		n := &w.grid.Nodes[i]
		n.State = gridgraph.Path
		path = append(path, n.Pos)
		if !n.HasParent() {
			break
		}
		i = n.Parent
	}
	slices.Reverse(path)

	return path
}

// Search runs a one-shot search from start to end on g.
// See Searcher.Search for the contract; opts may also carry WithContext.
func Search(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (Result, error) {
	s, err := NewSearcher(opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Search(s.opts.Ctx, g, start, end)
}

// RunSearch searches from start to end on g with default options and
// returns the path length in grid units, 0 when no path exists, or -1 when
// the search could not run.
//
// A path of length 0 (start == end) is indistinguishable from no path here;
// use Search when the difference matters.
func RunSearch(start, end gridgraph.Position, g *gridgraph.Grid) float64 {
	res, err := Search(g, start, end)
	if err != nil {
		return -1
	}

	return res.Distance
}
