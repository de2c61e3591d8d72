// Package gridgraph defines the cell, position and walk-state types
// shared by every search over a Grid.
package gridgraph

import "fmt"

// NoParent marks a node without a predecessor: the start of a search,
// or a node the current pass has not reached.
const NoParent = -1

// Position identifies a cell. X is the column, Y the row.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dimensions is the size of a grid in cells.
type Dimensions struct {
	Width, Height int
}

// WalkState tags the role a cell plays in the current search pass.
type WalkState uint8

const (
	// Unreachable cells are obstacles.
	Unreachable WalkState = iota
	// Walkable cells are traversable and untouched by the current pass.
	Walkable
	// Border cells have been discovered by an expansion.
	Border
	// Visited cells have been dequeued and expanded.
	Visited
	// Path cells lie on the reconstructed route.
	Path
)

var walkStateNames = [...]string{
	Unreachable: "unreachable",
	Walkable:    "walkable",
	Border:      "border",
	Visited:     "visited",
	Path:        "path",
}

// String returns the lower-case name of the state.
func (s WalkState) String() string {
	if int(s) < len(walkStateNames) {
		return walkStateNames[s]
	}
	return fmt.Sprintf("WalkState(%d)", uint8(s))
}

// Traversable reports whether a search may step onto a cell in state s.
func (s WalkState) Traversable() bool {
	return s != Unreachable
}

// Node is one cell of the arena together with its per-pass search state.
//
// G is the best known cost from the start, H the heuristic estimate to the
// goal, F = G + H. All three are integers scaled by the search precision so
// that ordering comparisons are exact.
type Node struct {
	Pos    Position
	State  WalkState
	Parent int // arena index of the predecessor, or NoParent
	G, H   int64
	F      int64
}

// HasParent reports whether the node has been reached from another node.
func (n *Node) HasParent() bool {
	return n.Parent != NoParent
}

// reset clears the per-pass state, keeping obstacles as they are.
func (n *Node) reset() {
	if n.State.Traversable() {
		n.State = Walkable
	}
	n.Parent = NoParent
	n.G, n.H, n.F = 0, 0, 0
}

// Grid is a rectangular arena of nodes addressed by Position.
// Nodes are stored row-major; Index and Position convert between the two.
type Grid struct {
	Width, Height int
	Nodes         []Node
}

// neighborOffsets lists the 8 moves row by row (dy outer, dx inner),
// skipping the cell itself.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
