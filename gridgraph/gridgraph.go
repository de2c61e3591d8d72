package gridgraph

import "fmt"

// NewGrid constructs a width×height Grid with every cell Walkable.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Nodes:  make([]Node, width*height),
	}
	for i := range g.Nodes {
		g.Nodes[i] = Node{
			Pos:    g.Position(i),
			State:  Walkable,
			Parent: NoParent,
		}
	}

	return g, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice where
// values[y][x] != 0 marks a walkable cell and 0 an obstacle.
// The input is only read; later changes to it do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] == 0 {
				g.Nodes[g.index(x, y)].State = Unreachable
			}
		}
	}

	return g, nil
}

// Dimensions returns the grid size.
func (g *Grid) Dimensions() Dimensions {
	return Dimensions{Width: g.Width, Height: g.Height}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Nodes)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to its row-major arena index. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return g.index(p.X, p.Y)
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// Node returns the node at p, or nil if p is out of bounds.
func (g *Grid) Node(p Position) *Node {
	if !g.InBounds(p) {
		return nil
	}
	return &g.Nodes[g.Index(p)]
}

// SetWalkable marks the cell at p as Walkable or Unreachable.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) SetWalkable(p Position, walkable bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}
	n := &g.Nodes[g.Index(p)]
	if walkable {
		n.State = Walkable
	} else {
		n.State = Unreachable
	}
	n.Parent = NoParent
	n.G, n.H, n.F = 0, 0, 0

	return nil
}

// Reset prepares the grid for a new, unrelated search: every traversable
// cell returns to Walkable and all parents and costs are cleared.
// Obstacles stay obstacles.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for i := range g.Nodes {
		g.Nodes[i].reset()
	}
}

// Clone returns a deep copy of the grid, search state included.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Nodes:  make([]Node, len(g.Nodes)),
	}
	copy(c.Nodes, g.Nodes)

	return c
}

// Neighbors calls fn with the arena index of every in-bounds cell within
// Chebyshev distance 1 of idx, excluding idx itself. Cells are visited row
// by row from y-1 to y+1 and, within a row, from x-1 to x+1; searches rely
// on this order for deterministic tie-breaking.
// Walk state is not inspected; callers filter obstacles themselves.
// Complexity: O(1).
func (g *Grid) Neighbors(idx int, fn func(int)) {
	x, y := idx%g.Width, idx/g.Width
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
			continue
		}
		fn(g.index(nx, ny))
	}
}

// CountState returns how many cells are currently in state s.
func (g *Grid) CountState(s WalkState) int {
	n := 0
	for i := range g.Nodes {
		if g.Nodes[i].State == s {
			n++
		}
	}
	return n
}
