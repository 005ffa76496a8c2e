package search_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

// emptyGrid builds an n×n obstacle-free grid.
func emptyGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g
}

func TestSearch_InvalidInputs(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	_, err = search.Search(nil, grid.Cell{}, grid.Cell{}, search.BFS, search.GraphSearch)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar} {
		// blocked start
		_, err = search.Search(g, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 1}, alg, search.GraphSearch)
		assert.ErrorIs(t, err, search.ErrInvalidEndpoint, "%v blocked start must fail", alg)
		// out-of-bounds goal
		_, err = search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9}, alg, search.GraphSearch)
		assert.ErrorIs(t, err, search.ErrInvalidEndpoint, "%v OOB goal must fail", alg)
	}

	_, err = search.Search(g, grid.Cell{}, grid.Cell{Row: 1, Col: 1}, search.BFS, search.GraphSearch,
		search.WithExpansionLimit(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestAStar_DiagonalCorridor: on an empty 10×10 grid under Conn8, the
// optimal path is the main diagonal — 10 cells at cost 9√2 — and the
// larger-g tie-break walks it without detours.
func TestAStar_DiagonalCorridor(t *testing.T) {
	g := emptyGrid(t, 10)
	res, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9},
		search.AStar, search.GraphSearch, search.WithConnectivity(grid.Conn8))
	require.NoError(t, err)

	require.True(t, res.Success)
	assert.Equal(t, search.Succeeded, res.Outcome)
	assert.Len(t, res.Path, 10)
	assert.InDelta(t, 9*math.Sqrt2, res.Cost, 1e-9)
	// f stays constant along the diagonal, so the larger-g preference
	// expands exactly the ten cells on it.
	assert.Equal(t, 10, res.Expanded)
	assert.Greater(t, res.PeakFrontier, 0)
}

// TestBFS_WallGap: a full wall at column 2 with a single opening at
// (4,2) forces every 4-connected path through that opening.
func TestBFS_WallGap(t *testing.T) {
	cells := [][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)

	res, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4},
		search.BFS, search.GraphSearch, search.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Contains(t, res.Path, grid.Cell{Row: 4, Col: 2})
	for _, c := range res.Path {
		free, err := g.IsFree(c)
		require.NoError(t, err)
		assert.True(t, free, "path crosses blocked cell %v", c)
	}
	// Shortest 4-connected route: 4 down, 4 right through the gap.
	assert.Len(t, res.Path, 9)
}

// TestBFS_ShortestEdgeCount: graph-discipline BFS on a uniform-step grid
// returns a path minimal in edge count.
func TestBFS_ShortestEdgeCount(t *testing.T) {
	g := emptyGrid(t, 6)
	res, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 3},
		search.BFS, search.GraphSearch, search.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	require.True(t, res.Success)
	// Manhattan distance 8 → 9 cells.
	assert.Len(t, res.Path, 9)
	assert.InDelta(t, 8.0, res.Cost, 1e-9)
}

// TestAStar_NeverWorse: the A* path cost is ≤ whatever BFS and DFS find
// on the same grid and motion model.
func TestAStar_NeverWorse(t *testing.T) {
	cells := [][]int{
		{0, 0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1},
		{0, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{1, 1, 0, 0, 0, 0},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 5}

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		astar, err := search.Search(g, start, goal, search.AStar, search.GraphSearch,
			search.WithConnectivity(conn))
		require.NoError(t, err)
		require.True(t, astar.Success, "A* must find the existing path under %v", conn)

		for _, alg := range []search.Algorithm{search.BFS, search.DFS} {
			other, err := search.Search(g, start, goal, alg, search.GraphSearch,
				search.WithConnectivity(conn))
			require.NoError(t, err)
			require.True(t, other.Success)
			assert.LessOrEqual(t, astar.Cost, other.Cost+1e-9,
				"A* cost beaten by %v under %v", alg, conn)
		}
	}
}

// walledOffGoal returns a grid whose goal corner is sealed behind a
// ring of obstacles: the goal stays a valid free endpoint but no path
// reaches it.
func walledOffGoal(t *testing.T) (*grid.Grid, grid.Cell, grid.Cell) {
	t.Helper()
	cells := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4}
}

// TestGraphSearch_Exhausted: with the goal unreachable, graph discipline
// drains the frontier and reports a plain non-success.
func TestGraphSearch_Exhausted(t *testing.T) {
	g, start, goal := walledOffGoal(t)
	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar} {
		res, err := search.Search(g, start, goal, alg, search.GraphSearch,
			search.WithConnectivity(grid.Conn4))
		require.NoError(t, err, "no-path must not be an error for %v", alg)
		assert.False(t, res.Success)
		assert.Equal(t, search.Exhausted, res.Outcome)
		assert.Nil(t, res.Path)
	}
}

// TestTreeSearch_LimitTerminates: tree discipline revisits cells forever
// on a cyclic grid, so the expansion limit is the only thing standing
// between an unreachable goal and an infinite loop.
func TestTreeSearch_LimitTerminates(t *testing.T) {
	g, start, goal := walledOffGoal(t)
	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar} {
		res, err := search.Search(g, start, goal, alg, search.TreeSearch,
			search.WithConnectivity(grid.Conn4),
			search.WithExpansionLimit(500))
		require.NoError(t, err, "limit hit must not be an error for %v", alg)
		assert.False(t, res.Success)
		assert.Equal(t, search.LimitExceeded, res.Outcome)
		assert.Equal(t, 500, res.Expanded)
	}
}

// TestTreeSearch_FindsReachableGoal: tree-discipline A* still reaches a
// nearby goal before the limit; the heuristic keeps it directed even
// without deduplication.
func TestTreeSearch_FindsReachableGoal(t *testing.T) {
	g := emptyGrid(t, 8)
	res, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 7, Col: 7},
		search.AStar, search.TreeSearch, search.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 7*math.Sqrt2, res.Cost, 1e-9)
}

// TestSearch_StartEqualsGoal degenerates to a single-cell path.
func TestSearch_StartEqualsGoal(t *testing.T) {
	g := emptyGrid(t, 3)
	res, err := search.Search(g, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 1, Col: 1},
		search.BFS, search.GraphSearch)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestSearch_Cancellation: a pre-cancelled context aborts the run with
// the context's error.
func TestSearch_Cancellation(t *testing.T) {
	g := emptyGrid(t, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 19, Col: 19},
		search.BFS, search.GraphSearch, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_ResultMetadata: the result echoes the configuration that
// produced it.
func TestSearch_ResultMetadata(t *testing.T) {
	g := emptyGrid(t, 4)
	res, err := search.Search(g, grid.Cell{}, grid.Cell{Row: 3, Col: 3},
		search.DFS, search.TreeSearch, search.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	assert.Equal(t, search.DFS, res.Algorithm)
	assert.Equal(t, search.TreeSearch, res.Discipline)
	assert.Equal(t, grid.Conn8, res.Conn)
}
