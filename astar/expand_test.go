package astar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/gridgraph"
)

func newTestWalker(t *testing.T, g *gridgraph.Grid, goal gridgraph.Position) *walker {
	t.Helper()
	o := DefaultOptions()
	return &walker{
		grid:    g,
		opts:    &o,
		ctx:     context.Background(),
		border:  NewBorder(g, 0),
		goal:    goal,
		goalIdx: g.Index(goal),
	}
}

// TestExpand_FirstDiscovery expands the center of a 3×3 grid whose top-left
// cell is already visited and top-middle cell is an obstacle.
func TestExpand_FirstDiscovery(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetWalkable(gridgraph.Position{X: 1, Y: 0}, false))
	g.Node(gridgraph.Position{X: 0, Y: 0}).State = gridgraph.Visited
	center := g.Index(gridgraph.Position{X: 1, Y: 1})
	g.Nodes[center].State = gridgraph.Visited

	w := newTestWalker(t, g, gridgraph.Position{X: 2, Y: 2})
	w.expand(center)

	// (F, H): (2,2)=(14,0) (2,1)=(20,10) (1,2)=(20,10) (0,1)=(32,22) (2,0)=(34,20) (0,2)=(34,20)
	assert.Equal(t, []gridgraph.Position{
		{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 2},
	}, w.border.Positions())

	n := g.Node(gridgraph.Position{X: 0, Y: 1})
	assert.Equal(t, center, n.Parent)
	assert.Equal(t, int64(10), n.G)
	assert.Equal(t, int64(22), n.H)
	assert.Equal(t, int64(32), n.F)
	assert.Equal(t, gridgraph.Border, n.State)

	assert.Equal(t, gridgraph.Visited, g.Node(gridgraph.Position{X: 0, Y: 0}).State)
	assert.Equal(t, gridgraph.Unreachable, g.Node(gridgraph.Position{X: 1, Y: 0}).State)
	assert.Equal(t, 6, g.CountState(gridgraph.Border))
}

// TestExpand_Relaxation moves a border node to its cheaper key and leaves it
// alone when the offer is not strictly better.
func TestExpand_Relaxation(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 1)
	require.NoError(t, err)
	w := newTestWalker(t, g, gridgraph.Position{X: 2, Y: 0})

	a, b, c := 0, 1, 2
	g.Nodes[b].Parent = c
	g.Nodes[b].G, g.Nodes[b].H, g.Nodes[b].F = 50, 10, 60
	g.Nodes[b].State = gridgraph.Border
	require.True(t, w.border.InsertSorted(b))

	var offers []int64
	w.opts.OnBorder = func(_ gridgraph.Position, gv, _ int64) { offers = append(offers, gv) }

	g.Nodes[a].State = gridgraph.Visited
	w.expand(a)
	assert.Equal(t, a, g.Nodes[b].Parent)
	assert.Equal(t, int64(10), g.Nodes[b].G)
	assert.Equal(t, int64(20), g.Nodes[b].F)
	assert.Equal(t, int64(10), g.Nodes[b].H, "H is kept on relaxation")
	assert.Equal(t, 1, w.border.Len())
	assert.Equal(t, []int64{10}, offers)

	// Same cost again from the far side: not strictly better.
	g.Nodes[c].G = 0
	g.Nodes[c].State = gridgraph.Visited
	w.expand(c)
	assert.Equal(t, a, g.Nodes[b].Parent)
	assert.Equal(t, int64(10), g.Nodes[b].G)
	assert.Equal(t, 1, w.border.Len())
	assert.Equal(t, []int64{10}, offers)
}
