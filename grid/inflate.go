package grid

import "math"

// Inflate returns a new Grid sharing the same raw obstacle layer but with
// the inflation layer recomputed for the given robot radius. The receiver
// is left untouched, preserving per-run immutability. Inflation is
// deterministic and idempotent: the same raw obstacles and radius always
// derive the same layer.
//
// A free cell is inflated when the euclidean world distance between its
// center and any raw obstacle center is strictly less than
// radius + resolution/2 (the obstacle is assumed to fill its cell).
// A radius ≤ 0 yields an empty inflation layer.
// Complexity: O(B×k²) time where B is the obstacle count and k the
// inflation reach in cells; memory O(R×C).
func (g *Grid) Inflate(radius float64) *Grid {
	ng := &Grid{
		rows:        g.rows,
		cols:        g.cols,
		resolution:  g.resolution,
		originX:     g.originX,
		originY:     g.originY,
		robotRadius: radius,
		obstacles:   g.obstacles,
	}
	ng.inflated = ng.computeInflation(radius)
	return ng
}

// computeInflation derives the inflation layer by stamping a disc of
// blocked cells around every raw obstacle. Stamping visits only the
// bounded neighborhood of each obstacle, which matches the per-cell
// distance scan of the naive formulation cell for cell.
func (g *Grid) computeInflation(radius float64) [][]bool {
	inflated := make([][]bool, g.rows)
	for r := range inflated {
		inflated[r] = make([]bool, g.cols)
	}
	if radius <= 0 {
		return inflated
	}

	// reach is the blocking distance between cell centers in world units.
	reach := radius + g.resolution/2
	span := int(math.Ceil(reach / g.resolution))

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.obstacles[r][c] {
				continue
			}
			for dr := -span; dr <= span; dr++ {
				for dc := -span; dc <= span; dc++ {
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
						continue
					}
					if g.obstacles[nr][nc] || inflated[nr][nc] {
						continue
					}
					ds := math.Hypot(float64(dr)*g.resolution, float64(dc)*g.resolution)
					if ds < reach {
						inflated[nr][nc] = true
					}
				}
			}
		}
	}

	return inflated
}
