// Package dijkstra provides exact single-source shortest distances over a
// gridgraph.Grid with 8-directional movement and a caller-supplied step cost.
//
// Overview:
//
//   - Distances explores cells in order of increasing distance from a source
//     cell, skipping obstacles, and returns arena-indexed distance and
//     predecessor slices.
//   - The step cost is injected (WithStepCost), so the same neighborhood can be
//     weighted by hop count (UnitCost, the default) or by a Euclidean metric
//     such as astar.Distance. With the latter it serves as the exact baseline
//     for A* results.
//   - Unlike astar, it never writes walk states into the grid.
//
// Key features:
//
//   - ReturnPath: returns predecessors so PathTo can rebuild each path.
//   - MaxDistance: stops exploring beyond a given distance.
//
// Performance and complexity:
//
//   - Time:  O(V log V), V = W×H (at most 8 edges per cell).
//   - Space: O(V) for distances, predecessors and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrSourceNotSet:   no Source option.
//   - ErrNilGrid:        grid pointer is nil.
//   - ErrOutOfBounds:    Source lies outside the grid.
//   - ErrNegativeCost:   StepCost returned a negative value.
//   - ErrBadMaxDistance: MaxDistance < 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Distances(
//	    g,
//	    dijkstra.Source(gridgraph.Position{X: 0, Y: 0}),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := dijkstra.PathTo(g, dist, prev, gridgraph.Position{X: 4, Y: 4})
package dijkstra
