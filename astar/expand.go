package astar

import "github.com/katalvlaran/astargrid/gridgraph"

// expand offers every neighbor of node parent to the border.
//
// Neighbors are visited row by row from (x-1, y-1) to (x+1, y+1), clipped
// to the grid. A neighbor is skipped when it is the parent's own parent, is
// already Visited, or is an obstacle. Otherwise:
//
//   - first discovery: parent, G, H and F are set and the node is inserted;
//   - a strictly cheaper G: parent, G and F are updated and the node is
//     moved to its new slot (removed first when on the border);
//   - anything else leaves the node and the border as they were.
//
// Every neighbor that passes the skip rules ends up in state Border.
func (w *walker) expand(parent int) {
	p := &w.grid.Nodes[parent]
	w.grid.Neighbors(parent, func(i int) {
		if i == p.Parent {
			return
		}
		n := &w.grid.Nodes[i]
		if n.State == gridgraph.Visited || !n.State.Traversable() {
			return
		}
		if w.relax(n, i, p, parent) {
			w.border.InsertSorted(i)
			w.opts.OnBorder(n.Pos, n.G, n.H)
		}
		n.State = gridgraph.Border
	})
}

// relax reports whether reaching n through p is accepted and, when it is,
// records the new costs on n. An improved node is taken off the border
// before its key changes; the caller inserts it again.
func (w *walker) relax(n *gridgraph.Node, idx int, p *gridgraph.Node, parent int) bool {
	g := p.G + Distance(n.Pos, p.Pos, w.opts.Precision)
	switch {
	case !n.HasParent():
		n.H = Distance(n.Pos, w.goal, w.opts.Precision)
	case g < n.G:
		if w.border.Contains(idx) {
			w.border.Remove(idx)
		}
	default:
		return false
	}
	n.Parent = parent
	n.G = g
	n.F = g + n.H

	return true
}
