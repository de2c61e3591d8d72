package gridgraph

// Components finds all 8-connected regions of traversable cells, i.e. the
// sets of cells a search can move between. Obstacles belong to no region.
// Returns a slice of components; each component lists arena indices in BFS
// discovery order, and components are ordered by their first cell in
// row-major order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and output.
func (g *Grid) Components() [][]int {
	label := make([]int, len(g.Nodes))
	for i := range label {
		label[i] = -1
	}

	var comps [][]int
	for i0 := range g.Nodes {
		if !g.Nodes[i0].State.Traversable() || label[i0] >= 0 {
			continue
		}
		// BFS to collect component
		id := len(comps)
		label[i0] = id
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			g.Neighbors(queue[qi], func(v int) {
				if label[v] >= 0 || !g.Nodes[v].State.Traversable() {
					return
				}
				label[v] = id
				queue = append(queue, v)
			})
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b lie in the same 8-connected region of
// traversable cells. Out-of-bounds positions and obstacles are connected to
// nothing, except that a position is always connected to itself when it is
// in bounds.
//
// Time: O(W·H·8) worst case, stopping as soon as b is found.
func (g *Grid) Connected(a, b Position) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}
	src, dst := g.Index(a), g.Index(b)
	if !g.Nodes[src].State.Traversable() || !g.Nodes[dst].State.Traversable() {
		return false
	}

	seen := make([]bool, len(g.Nodes))
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		found := false
		g.Neighbors(queue[qi], func(v int) {
			if found || seen[v] || !g.Nodes[v].State.Traversable() {
				return
			}
			if v == dst {
				found = true
				return
			}
			seen[v] = true
			queue = append(queue, v)
		})
		if found {
			return true
		}
	}

	return false
}
