package grid_test

import (
	"fmt"

	"github.com/navlab/gridplan/grid"
)

// ExampleGrid_Neighbors demonstrates neighbor expansion under both
// motion models. The obstacle at (1,1) removes one orthogonal neighbor,
// and under Conn8 the diagonal between two blockers stays excluded.
func ExampleGrid_Neighbors() {
	g, _ := grid.New([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	four, _ := g.Neighbors(grid.Cell{Row: 0, Col: 0}, grid.Conn4)
	eight, _ := g.Neighbors(grid.Cell{Row: 0, Col: 0}, grid.Conn8)
	fmt.Println("Conn4:", len(four), "neighbors")
	fmt.Println("Conn8:", len(eight), "neighbors")
	for _, s := range eight {
		fmt.Printf("  -> %v cost %.3f\n", s.Cell, s.Cost)
	}

	// Output:
	// Conn4: 2 neighbors
	// Conn8: 2 neighbors
	//   -> (1,0) cost 1.000
	//   -> (0,1) cost 1.000
}

// ExampleGrid_Inflate shows how a robot radius closes a one-cell gap.
func ExampleGrid_Inflate() {
	g, _ := grid.New([][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 1, 0},
	})

	free, _ := g.IsFree(grid.Cell{Row: 1, Col: 1})
	fmt.Println("gap traversable before inflation:", free)

	inflated := g.Inflate(1.0)
	free, _ = inflated.IsFree(grid.Cell{Row: 1, Col: 1})
	fmt.Println("gap traversable after inflation:", free)

	// Output:
	// gap traversable before inflation: true
	// gap traversable after inflation: false
}
