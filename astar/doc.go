// Package astar finds shortest paths on a gridgraph.Grid with A* search,
// 8-directional movement and Euclidean step costs.
//
// Overview:
//
//   - Costs are Euclidean distances multiplied by a precision factor and
//     truncated to int64 (Distance), so every comparison on the open list is
//     an exact integer comparison. The default precision of 10 keeps one
//     decimal digit: an orthogonal step costs 10, a diagonal step 14.
//   - The heuristic H of a node is Distance(node, goal).
//   - The open list (Border) is a growable slice of arena indices kept sorted
//     by (F, H). Entries with equal keys keep insertion order, which makes
//     repeated runs on the same grid produce the same path.
//   - A node whose cost improves while on the border is removed and
//     reinserted at its new key; a node is never on the border twice.
//   - Search state lives in the grid itself: every node touched ends up
//     Border, Visited or Path. Call Grid.Reset before an unrelated search.
//
// Search driver:
//
//	Running:   pop the best border node, mark it Visited, expand its neighbors
//	Found:     the goal was dequeued; its G is the scaled path cost
//	NotFound:  the border emptied first (Result.Outcome == NotFound)
//
// By default the node expanded in each iteration is the node just dequeued.
// WithDeferredExpansion reproduces an older lock-step variant that expands
// the node dequeued one iteration earlier; it can report NotFound or a
// longer path on some grids (a 3×1 corridor, for example) and exists for
// compatibility with results produced by that variant.
//
// Resource model:
//
//   - A Searcher owns a pool of border storage. WithMaxConcurrent bounds how
//     many searches may hold storage at once; when none is available Search
//     fails with ErrResourceExhausted before touching the grid.
//   - Storage is returned to the pool on every exit path.
//   - Searches over distinct grids may share a Searcher concurrently. A single
//     grid must never be searched by two goroutines at once.
//
// Observability:
//
//   - Each search runs inside an OpenTelemetry span ("astar.Search") and
//     updates the astar_search_total, astar_search_duration_seconds,
//     astar_expanded_nodes and astar_border_peak instruments.
//   - A Debug record is written to the configured slog.Logger on completion.
//
// Errors:
//
//   - ErrNilGrid:           grid pointer is nil.
//   - ErrOutOfBounds:       start or end lies outside the grid.
//   - ErrOptionViolation:   an Option received an invalid value.
//   - ErrResourceExhausted: no border storage could be acquired.
//
// Not finding a path is not an error; it is reported through Result.Outcome.
//
// Complexity:
//
//   - Time:  O(V·(B + log B)) where V = expanded nodes and B = border length
//     (insertion shifts the slice; lookups are binary searches).
//   - Space: O(W×H) for the membership bitset plus O(B) for the border.
package astar
