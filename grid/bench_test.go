package grid_test

import (
	"math/rand"
	"testing"

	"github.com/navlab/gridplan/grid"
)

// randomCells builds a deterministic n×n matrix with the given obstacle
// probability.
func randomCells(n int, ratio float64, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]int, n)
		for c := 0; c < n; c++ {
			if rng.Float64() < ratio {
				cells[r][c] = 1
			}
		}
	}
	return cells
}

// BenchmarkNeighbors_Conn8 measures neighbor expansion over every free
// cell of a 500×500 grid at 15% density.
func BenchmarkNeighbors_Conn8(b *testing.B) {
	g, err := grid.New(randomCells(500, 0.15, 42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	free := g.FreeCells()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := free[i%len(free)]
		if _, err := g.Neighbors(c, grid.Conn8); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInflate measures inflation of a 200×200 grid with a unit
// robot radius.
func BenchmarkInflate(b *testing.B) {
	g, err := grid.New(randomCells(200, 0.15, 42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Inflate(1.0)
	}
}
