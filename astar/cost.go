package astar

import (
	"math"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Distance returns the Euclidean distance between a and b multiplied by
// precision and truncated toward zero.
//
//	Distance((0,0), (1,0), 10) == 10
//	Distance((0,0), (1,1), 10) == 14
//	Distance((0,0), (3,4), 10) == 50
//
// The result is symmetric, non-negative, and 0 exactly when a == b.
// Each step cost is truncated on its own, so a long diagonal run can sum to
// slightly less than the truncated straight-line distance over it.
func Distance(a, b gridgraph.Position, precision int64) int64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return int64(math.Sqrt(dx*dx+dy*dy) * float64(precision))
}

// Descale converts a scaled integer cost back to a distance.
func Descale(cost, precision int64) float64 {
	return float64(cost) / float64(precision)
}
