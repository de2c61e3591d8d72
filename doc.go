// Package astargrid finds shortest paths across 2D grids with A* search,
// eight-way movement and Euclidean costs.
//
// 🚀 What is astargrid?
//
//	A small library built around one in-memory grid type:
//		• Grid arena: walkable cells, obstacles, per-cell search state
//		• A* search: integer-scaled Euclidean costs, deterministic tie-breaking
//		• Reference search: Dijkstra over the same cells and step costs
//
// ✨ Why choose astargrid?
//
//   - Exact integer comparisons: costs are scaled and truncated, never compared as floats
//   - Reproducible: equal keys keep insertion order, so the same grid yields the same path
//   - Observable: OpenTelemetry spans and metrics plus slog records per search
//   - Bounded: a Searcher caps concurrent searches and reuses border storage
//
// Packages:
//
//	gridgraph/  Position, WalkState, Node, Grid; neighbors and connected regions
//	astar/      cost model, border, expansion, driver, path extraction, Searcher
//	dijkstra/   uniform-cost search over a Grid with an injected step cost
//
// Quick ASCII example (S start, T goal, # obstacle, * path):
//
//	S * * * . .
//	# # # # * #
//	. * . # * .
//	* # * * . #
//	* # # # # .
//	T . . . . .
//
//	astar.RunSearch(S, T, grid) == 12.6
//
//	go get github.com/katalvlaran/astargrid
package astargrid
