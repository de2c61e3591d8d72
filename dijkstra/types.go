// Package dijkstra defines types and configuration options for
// uniform-cost search over a gridgraph.Grid.
//
// Options:
//
//	– Source:       starting cell (required, must lie inside the grid).
//	– StepCost:     cost of moving between two adjacent cells; default 1.
//	– ReturnPath:   if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:  optional cap on distances to explore; cells beyond are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrSourceNotSet   if Source was never supplied.
//	– ErrOutOfBounds    if Source lies outside the grid.
//	– ErrNegativeCost   if StepCost returns a negative value.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceNotSet indicates that no Source option was supplied.
	ErrSourceNotSet = errors.New("dijkstra: source cell not set")

	// ErrOutOfBounds indicates a Source outside the grid.
	// It is the same value as gridgraph.ErrOutOfBounds.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrNegativeCost indicates that StepCost returned a negative value.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity is the distance reported for unreached cells.
const Infinity int64 = math.MaxInt64

// StepCostFunc returns the cost of moving from cell a to the adjacent cell b.
type StepCostFunc func(a, b gridgraph.Position) int64

// Options configures the behavior of Distances.
//
// MaxDistance – cells whose distance would exceed it are not explored.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Source      gridgraph.Position // starting cell
	StepCost    StepCostFunc       // edge weight between neighbors
	ReturnPath  bool               // whether to return the predecessor slice
	MaxDistance int64              // maximum distance to explore

	sourceSet bool
	err       error
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.sourceSet = true
	}
}

// WithStepCost sets the cost of moving between adjacent cells.
// A nil fn keeps the unit cost.
func WithStepCost(fn StepCostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// WithReturnPath enables the predecessor slice in the result.
// If not set, prev == nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// UnitCost charges 1 for every move, orthogonal or diagonal.
func UnitCost(_, _ gridgraph.Position) int64 { return 1 }

// DefaultOptions returns Options with unit step cost, no path output and
// no distance cap. Source is left unset.
func DefaultOptions() Options {
	return Options{
		StepCost:    UnitCost,
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}
