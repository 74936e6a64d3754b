// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkToNetwork measures conversion of a random 300×300 grid.
func BenchmarkToNetwork(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(5)
		}
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ToNetwork()
	}
}
