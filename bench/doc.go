// Package bench generates randomized benchmark maps, drives the search
// engine across the planner × discipline × motion cross-product, and
// aggregates per-run metrics into summary statistics.
//
// What:
//
//   - GenerateMap: deterministic seeded grids at small/medium/large
//     presets with a configurable obstacle ratio and boundary walls.
//   - RunBatch: runs every configuration on every generated map over a
//     worker pool; each configuration owns its search state exclusively,
//     so only the final collection point is synchronized.
//   - Summarize: mean/median/min/max/stddev per metric, grouped by
//     planner, discipline, motion, or map size.
//   - WriteCSV: flat export consumed by the reporting layer.
//
// Failure policy:
//
//   - "No path found" and "expansion limit reached" are experimental
//     outcomes, recorded in the batch and never propagated as errors.
//   - Structural defects abort early: ErrInvalidRatio,
//     ErrMalformedConfig, ErrNoFreeCells.
//
// Concurrency: configurations are independent; RunBatch fans them out to
// a worker pool sized by config (default GOMAXPROCS) and supports
// cooperative cancellation between configurations via context.
package bench
