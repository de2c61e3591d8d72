// Package dijkstra implements uniform-cost search over a gridgraph.Grid.
//
// Cells are vertices; every traversable cell is joined to its up to eight
// traversable neighbors by an edge whose weight is given by StepCost.
// It processes cells in order of increasing distance using a min-heap,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; every cell has at most 8 edges.
//   - Space: O(V) for distances, predecessors and the lazy heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Distances computes shortest distances from Options.Source to every cell
// of g. Obstacles and cells beyond MaxDistance keep distance Infinity.
// The grid's search state is read for walkability only and never written.
//
// Returns:
//
//   - dist: arena-indexed distances (Infinity if unreachable).
//   - prev: arena-indexed predecessors when ReturnPath is set, nil
//     otherwise. prev[v] == gridgraph.NoParent for the source and for
//     unreachable cells.
//   - err:  error if inputs are invalid or a negative step cost is seen.
//
// Validation order:
//  1. options (ErrBadMaxDistance).
//  2. Source supplied (ErrSourceNotSet).
//  3. g non-nil (ErrNilGrid).
//  4. Source inside g (ErrOutOfBounds).
func Distances(g *gridgraph.Grid, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.sourceSet {
		return nil, nil, ErrSourceNotSet
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %v in %dx%d grid", ErrOutOfBounds, cfg.Source, g.Width, g.Height)
	}

	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source-to-target path from the output of Distances.
// Returns nil when target is outside g, unreached, or prev is nil.
func PathTo(g *gridgraph.Grid, dist []int64, prev []int, target gridgraph.Position) []gridgraph.Position {
	if g == nil || prev == nil || !g.InBounds(target) {
		return nil
	}
	t := g.Index(target)
	if dist[t] == Infinity {
		return nil
	}

	var path []gridgraph.Position
	for v := t; v != gridgraph.NoParent; v = prev[v] {
		path = append(path, g.Position(v))
	}
	slices.Reverse(path)

	return path
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *gridgraph.Grid // read-only within Distances
	options Options
	dist    []int64 // arena index → best distance from Source
	prev    []int   // arena index → predecessor on the shortest path
	visited []bool  // finalized cells
	pq      nodePQ  // lazy min-heap
}

// init sets every distance to Infinity and pushes Source with distance 0.
// Obstacles start out visited so they are never relaxed into.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = gridgraph.NoParent
		r.visited[i] = !r.g.Nodes[i].State.Traversable()
	}

	src := r.g.Index(r.options.Source)
	if r.visited[src] {
		// Source is an obstacle: nothing is reachable, not even itself.
		return
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinalized cell and relaxes
// its neighbors, stopping when the heap empties or exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// stale heap entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unfinalized neighbor of u.
func (r *runner) relax(u int) error {
	var err error
	from := r.g.Position(u)
	r.g.Neighbors(u, func(v int) {
		if err != nil || r.visited[v] {
			return
		}
		to := r.g.Position(v)
		w := r.options.StepCost(from, to)
		if w < 0 {
			err = fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, from, to, w)
			return
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			return
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	})

	return err
}

// nodeItem is a cell and its tentative distance from the source.
type nodeItem struct {
	idx  int   // arena index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay
// in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
