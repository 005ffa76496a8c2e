package search_test

import (
	"fmt"

	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

// ExampleSearch demonstrates a 4-connected BFS navigation query around
// a wall.
func ExampleSearch() {
	g, _ := grid.New([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})

	res, _ := search.Search(g,
		grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0},
		search.BFS, search.GraphSearch,
		search.WithConnectivity(grid.Conn4),
	)

	fmt.Println("success:", res.Success)
	fmt.Println("cost:", res.Cost)
	for _, c := range res.Path {
		fmt.Println(c)
	}

	// Output:
	// success: true
	// cost: 6
	// (0,0)
	// (0,1)
	// (0,2)
	// (1,2)
	// (2,2)
	// (2,1)
	// (2,0)
}

// ExampleSearch_disciplines contrasts graph and tree discipline on the
// same unreachable query: graph search drains the frontier, tree search
// runs into the expansion safety limit.
func ExampleSearch_disciplines() {
	g, _ := grid.New([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	})
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3}

	graph, _ := search.Search(g, start, goal, search.BFS, search.GraphSearch,
		search.WithConnectivity(grid.Conn4))
	tree, _ := search.Search(g, start, goal, search.BFS, search.TreeSearch,
		search.WithConnectivity(grid.Conn4), search.WithExpansionLimit(100))

	fmt.Println("graph:", graph.Outcome, "expanded", graph.Expanded)
	fmt.Println("tree:", tree.Outcome, "expanded", tree.Expanded)

	// Output:
	// graph: exhausted expanded 8
	// tree: limit_exceeded expanded 100
}
