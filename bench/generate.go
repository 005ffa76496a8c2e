package bench

import (
	"fmt"
	"math/rand"

	"github.com/navlab/gridplan/grid"
)

// GenerateMap builds a randomized occupancy grid for one benchmark run.
// Boundary cells are always walls; each interior cell independently
// becomes an obstacle with probability ratio before inflation by
// robotRadius. Generation is deterministic: the same seed, size class,
// ratio, and radius always produce bit-identical grids.
//
// Returns ErrInvalidRatio when ratio lies outside [0, 1).
// Complexity: O(n²) for an n×n preset, plus inflation.
func GenerateMap(size SizeClass, ratio float64, seed int64, robotRadius float64) (*grid.Grid, error) {
	if ratio < 0 || ratio >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	n := size.Dimension()
	rng := rand.New(rand.NewSource(seed))

	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]int, n)
		for c := 0; c < n; c++ {
			// Forced boundary walls keep every path inside the map.
			if r == 0 || r == n-1 || c == 0 || c == n-1 {
				cells[r][c] = 1
				continue
			}
			if rng.Float64() < ratio {
				cells[r][c] = 1
			}
		}
	}

	return grid.New(cells, grid.WithRobotRadius(robotRadius))
}

// pickEndpoints chooses a random pair of distinct free cells to serve as
// start and goal. Reachability is deliberately not prechecked: the search
// is always attempted and an unreachable pair is recorded as a failed
// run, not an error.
// Returns ErrNoFreeCells when fewer than two free cells exist.
func pickEndpoints(g *grid.Grid, rng *rand.Rand) (start, goal grid.Cell, err error) {
	free := g.FreeCells()
	if len(free) < 2 {
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("%w: %d free", ErrNoFreeCells, len(free))
	}
	start = free[rng.Intn(len(free))]
	goal = free[rng.Intn(len(free))]
	for goal == start {
		goal = free[rng.Intn(len(free))]
	}
	return start, goal, nil
}
