package astar

import (
	"slices"
	"sort"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Border is the open list of a search: arena indices of grid nodes sorted
// ascending by F, ties broken by H ascending. Nodes with equal (F, H) keep
// insertion order, new entries going after the existing ones.
//
// The keys are read from the grid on every comparison, so a node's F and H
// must not change while it is on the border. Remove it, update the costs,
// then insert it again.
type Border struct {
	grid   *gridgraph.Grid
	items  []int
	member []bool // member[i] is true while node i is on the border
	peak   int
}

// NewBorder returns an empty border over g with room for capacity entries
// before its first reallocation.
func NewBorder(g *gridgraph.Grid, capacity int) *Border {
	b := &Border{}
	b.attach(g, capacity)

	return b
}

// attach binds b to g, emptying it. Storage is reused when large enough.
func (b *Border) attach(g *gridgraph.Grid, capacity int) {
	b.grid = g
	if cap(b.items) < capacity {
		b.items = make([]int, 0, capacity)
	} else {
		b.items = b.items[:0]
	}
	n := g.Len()
	if cap(b.member) < n {
		b.member = make([]bool, n)
	} else {
		b.member = b.member[:n]
		clear(b.member)
	}
	b.peak = 0
}

// detach drops the grid reference so a pooled border does not pin it.
func (b *Border) detach() {
	b.grid = nil
	b.items = b.items[:0]
}

// after reports whether node a sorts strictly after node n.
func (b *Border) after(a, n int) bool {
	na, nn := &b.grid.Nodes[a], &b.grid.Nodes[n]
	if na.F != nn.F {
		return na.F > nn.F
	}

	return na.H > nn.H
}

// Len returns the number of nodes on the border.
func (b *Border) Len() int {
	return len(b.items)
}

// Peak returns the largest length the border reached since it was emptied.
func (b *Border) Peak() int {
	return b.peak
}

// Contains reports whether node idx is on the border. O(1).
func (b *Border) Contains(idx int) bool {
	return b.member[idx]
}

// InsertSorted places node idx after every entry whose key is less than or
// equal to its own. It returns false, leaving the border unchanged, when idx
// is already present.
//
// Time: O(log B) to locate plus O(B) to shift.
func (b *Border) InsertSorted(idx int) bool {
	if b.member[idx] {
		return false
	}
	at := sort.Search(len(b.items), func(i int) bool {
		return b.after(b.items[i], idx)
	})
	b.items = slices.Insert(b.items, at, idx)
	b.member[idx] = true
	if len(b.items) > b.peak {
		b.peak = len(b.items)
	}

	return true
}

// Remove deletes node idx from the border, preserving the order of the
// rest. It returns false when idx is not present.
func (b *Border) Remove(idx int) bool {
	if !b.member[idx] {
		return false
	}
	at := b.locate(idx)
	b.items = slices.Delete(b.items, at, at+1)
	b.member[idx] = false

	return true
}

// locate returns the slot holding idx, which must be on the border.
// Entries are found by binary search over their key; a linear scan covers
// callers that changed the key in place.
func (b *Border) locate(idx int) int {
	lo := sort.Search(len(b.items), func(i int) bool {
		return !b.after(idx, b.items[i])
	})
	for i := lo; i < len(b.items) && !b.after(b.items[i], idx); i++ {
		if b.items[i] == idx {
			return i
		}
	}

	return slices.Index(b.items, idx)
}

// PopFront removes and returns the node with the smallest key.
// ok is false when the border is empty.
func (b *Border) PopFront() (idx int, ok bool) {
	if len(b.items) == 0 {
		return 0, false
	}
	idx = b.items[0]
	b.items = slices.Delete(b.items, 0, 1)
	b.member[idx] = false

	return idx, true
}

// FindIndex returns the border slot of the node at p, scanning in order.
// ok is false when no node at p is on the border.
func (b *Border) FindIndex(p gridgraph.Position) (slot int, ok bool) {
	for i, idx := range b.items {
		if b.grid.Nodes[idx].Pos == p {
			return i, true
		}
	}

	return -1, false
}

// Positions returns the border contents in order.
func (b *Border) Positions() []gridgraph.Position {
	out := make([]gridgraph.Position, len(b.items))
	for i, idx := range b.items {
		out[i] = b.grid.Nodes[idx].Pos
	}

	return out
}
