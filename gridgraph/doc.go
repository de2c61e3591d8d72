// Package gridgraph holds the rectangular cell arena that grid searches run on.
//
// What:
//
//   - Grid owns one Node per cell, stored row-major (index = y*Width + x).
//   - Each Node carries its Position, a WalkState tag and the mutable search
//     state of the current pass: Parent (an arena index, never a pointer) and
//     the scaled costs G, H and F.
//   - Neighbors enumerates the up-to-8 cells within Chebyshev distance 1,
//     clipped to the grid, in a fixed row-by-row order.
//   - Components groups traversable cells into 8-connected regions.
//
// Why:
//
//   - Searches mutate per-cell state in place, so the arena is allocated once
//     and reused; Reset returns it to a fresh state between passes.
//   - Index-based parent links keep the arena movable and copyable (Clone).
//
// Walk states:
//
//	Unreachable  obstacle; never expanded into, never assigned costs
//	Walkable     traversable and untouched by the current pass
//	Border       discovered, currently or formerly on the open list
//	Visited      dequeued and expanded; never re-enters the open list
//	Path         on the reconstructed route
//
// Complexity:
//
//   - NewGrid, From2D, Reset, Clone: O(W×H) time and memory.
//   - Neighbors: O(1) per call (at most 8 callbacks).
//   - Components: O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions, or an input with no rows/columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: a position outside the grid.
//
// Thread safety: a Grid is not safe for concurrent use. Two searches over the
// same Grid race on the per-cell search state.
package gridgraph
