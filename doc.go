// Package gridplan plans paths for a mobile robot on a discretized 2D
// occupancy grid and benchmarks the planners against each other.
//
// What's inside:
//
//   - grid:   the occupancy/cost model — inflation by robot radius,
//     coordinate transforms, 4-/8-connected neighbor expansion with
//     corner-cut exclusion.
//   - search: BFS, DFS, and A* over any grid, each runnable in
//     tree-based (revisits allowed) or graph-based (closed-set
//     deduplicated) discipline, with per-run statistics.
//   - bench:  procedural map generation, the parallel experiment
//     runner, and statistical aggregation of many runs.
//   - cmd/gridplan: CLI for single navigation queries and benchmark
//     batches.
//
// The search engine is stateless: every invocation owns its frontier,
// closed set, and predecessor arena exclusively, so navigation calls and
// benchmark workers never share mutable state.
package gridplan
