// Package dijkstra_test contains unit tests for grid Dijkstra.
// These tests validate input checking, unit and Euclidean step costs,
// obstacles, MaxDistance and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/astargrid/dijkstra"
	"github.com/katalvlaran/astargrid/gridgraph"
)

// euclid10 weighs a move by its Euclidean length scaled by 10 and truncated.
func euclid10(a, b gridgraph.Position) int64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return int64(math.Sqrt(dx*dx+dy*dy) * 10)
}

func pos(x, y int) gridgraph.Position { return gridgraph.Position{X: x, Y: y} }

func mustGrid(t *testing.T, values [][]int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.From2D(values)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDistances_SourceNotSet(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	if _, _, err := dijkstra.Distances(g); err != dijkstra.ErrSourceNotSet {
		t.Fatalf("Expected ErrSourceNotSet, got %v", err)
	}
}

func TestDistances_NilGrid(t *testing.T) {
	// ErrSourceNotSet has priority over ErrNilGrid.
	if _, _, err := dijkstra.Distances(nil); err != dijkstra.ErrSourceNotSet {
		t.Fatalf("Expected ErrSourceNotSet, got %v", err)
	}
	if _, _, err := dijkstra.Distances(nil, dijkstra.Source(pos(0, 0))); err != dijkstra.ErrNilGrid {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestDistances_SourceOutOfBounds(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	_, _, err := dijkstra.Distances(g, dijkstra.Source(pos(2, 0)))
	if !errors.Is(err, dijkstra.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestDistances_BadMaxDistance(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	_, _, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)), dijkstra.WithMaxDistance(-1))
	if err != dijkstra.ErrBadMaxDistance {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
}

func TestDistances_NegativeCost(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 1)
	_, _, err := dijkstra.Distances(g,
		dijkstra.Source(pos(0, 0)),
		dijkstra.WithStepCost(func(_, _ gridgraph.Position) int64 { return -1 }),
	)
	if !errors.Is(err, dijkstra.ErrNegativeCost) {
		t.Fatalf("Expected ErrNegativeCost, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: open grids, walls, step costs.
// ------------------------------------------------------------------------

func TestDistances_UnitCostOpenGrid(t *testing.T) {
	// Every move costs 1, so distance is the Chebyshev distance.
	g, _ := gridgraph.NewGrid(3, 3)
	dist, prev, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{
		0, 1, 2,
		1, 1, 2,
		2, 2, 2,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
	if prev != nil {
		t.Errorf("prev = %v; want nil without WithReturnPath", prev)
	}
}

// TestDistances_WallDetour routes around a vertical wall.
//
//	S 0 T
//	1 0 1
//	1 1 1
func TestDistances_WallDetour(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	src, dst := pos(0, 0), pos(2, 0)

	t.Run("UnitCost", func(t *testing.T) {
		dist, _, err := dijkstra.Distances(g, dijkstra.Source(src))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := dist[g.Index(dst)]; got != 4 {
			t.Errorf("dist[T] = %d; want 4", got)
		}
	})

	t.Run("Euclidean", func(t *testing.T) {
		dist, prev, err := dijkstra.Distances(g,
			dijkstra.Source(src),
			dijkstra.WithStepCost(euclid10),
			dijkstra.WithReturnPath(),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 10 + 14 + 14 + 10
		if got := dist[g.Index(dst)]; got != 48 {
			t.Errorf("dist[T] = %d; want 48", got)
		}
		path := dijkstra.PathTo(g, dist, prev, dst)
		want := []gridgraph.Position{pos(0, 0), pos(0, 1), pos(1, 2), pos(2, 1), pos(2, 0)}
		if !reflect.DeepEqual(path, want) {
			t.Errorf("path = %v; want %v", path, want)
		}
	})
}

// ------------------------------------------------------------------------
// 3. Obstacles, caps and edge cases.
// ------------------------------------------------------------------------

func TestDistances_ObstaclesAndEnclosure(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	dist, prev, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dist[g.Index(pos(1, 1))]; got != dijkstra.Infinity {
		t.Errorf("obstacle dist = %d; want Infinity", got)
	}
	if got := dist[g.Index(pos(2, 2))]; got != dijkstra.Infinity {
		t.Errorf("enclosed dist = %d; want Infinity", got)
	}
	if path := dijkstra.PathTo(g, dist, prev, pos(2, 2)); path != nil {
		t.Errorf("PathTo(enclosed) = %v; want nil", path)
	}
	// Around the ring: three moves along the top, a diagonal, three down.
	if got := dist[g.Index(pos(4, 4))]; got != 7 {
		t.Errorf("dist[(4,4)] = %d; want 7", got)
	}
}

func TestDistances_MaxDistance(t *testing.T) {
	g, _ := gridgraph.NewGrid(5, 1)
	dist, _, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{0, 1, 2, dijkstra.Infinity, dijkstra.Infinity}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
}

func TestDistances_SourceIsObstacle(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}})
	dist, _, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, d := range dist {
		if d != dijkstra.Infinity {
			t.Errorf("dist[%d] = %d; want Infinity", i, d)
		}
	}
}

func TestDistances_LeavesGridUntouched(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 0},
		{0, 1, 1},
	})
	before := g.Clone()
	if _, _, err := dijkstra.Distances(g, dijkstra.Source(pos(0, 0)), dijkstra.WithReturnPath()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(g.Nodes, before.Nodes) {
		t.Errorf("grid nodes changed by Distances")
	}
}

func TestPathTo_Source(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	dist, prev, _ := dijkstra.Distances(g, dijkstra.Source(pos(1, 1)), dijkstra.WithReturnPath())
	path := dijkstra.PathTo(g, dist, prev, pos(1, 1))
	if want := []gridgraph.Position{pos(1, 1)}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if path := dijkstra.PathTo(g, dist, nil, pos(0, 0)); path != nil {
		t.Errorf("PathTo without prev = %v; want nil", path)
	}
}
