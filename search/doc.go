// Package search plans paths on an occupancy grid with three algorithms
// under two exploration disciplines.
//
// What:
//
//   - Search(g, start, goal, alg, disc, opts...): one stateless entry
//     point covering BFS, DFS, and A*.
//   - GraphSearch deduplicates revisited cells with a closed set;
//     TreeSearch deliberately re-expands them, bounded only by the
//     expansion limit. The contrast between the two disciplines on the
//     same grid is the point, not an accident.
//   - Result reports path, cost, expanded-node count, peak frontier
//     size, elapsed time, and the terminal Outcome.
//
// Why:
//
//   - Navigation: a single start/goal query on a loaded map.
//   - Benchmarking: the bench package drives many Search calls across
//     the planner × discipline × motion cross-product.
//
// Guarantees:
//
//   - BFS (graph) finds a path minimal in edge count on uniform-step
//     grids.
//   - A* (graph) finds a cost-optimal path; the Manhattan (Conn4) and
//     octile (Conn8) heuristics never overestimate, and consistency
//     means closed cells are never reopened.
//   - DFS offers no optimality guarantee.
//
// Errors:
//
//   - ErrNilGrid:         nil grid pointer.
//   - ErrInvalidEndpoint: start or goal blocked or out of bounds.
//   - ErrOptionViolation: invalid option supplied.
//   - context errors when the supplied context is cancelled.
//
// A search that finds no path is not an error: the Result carries
// Success=false with Outcome Exhausted or LimitExceeded.
package search
