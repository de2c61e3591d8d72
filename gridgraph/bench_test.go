package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// randomGrid builds an n×n grid where roughly one cell in five is an obstacle.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5) // 0 is an obstacle
		}
		values[y] = row
	}
	g, err := gridgraph.From2D(values)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	return g
}

// BenchmarkComponents measures Components on a random 1000×1000 grid.
// Complexity: O(W×H×8)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}

// BenchmarkReset measures clearing search state on a 1000×1000 grid.
func BenchmarkReset(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
	}
}
