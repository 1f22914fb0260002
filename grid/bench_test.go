package grid_test

import (
	"testing"

	"github.com/katalvlaran/pipeloop/grid"
)

// BenchmarkAll measures a full row-major pass over a 1000×1000 grid.
// Complexity: O(R×C)
func BenchmarkAll(b *testing.B) {
	const n = 1000
	g, err := grid.New(make([]int, n*n), n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range g.All() {
			sum += v
		}
		_ = sum
	}
}

// BenchmarkMap measures building a derived 1000×1000 grid.
func BenchmarkMap(b *testing.B) {
	const n = 1000
	g, err := grid.New(make([]int, n*n), n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Map(g, func(_ grid.Coord, v int) int { return v + 1 })
	}
}
