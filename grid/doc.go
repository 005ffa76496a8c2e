// Package grid models a mobile robot's workspace as a rectangular 2D
// occupancy grid and exposes the neighbor-expansion rules the search
// layer plans over.
//
// What:
//
//   - Grid wraps a rectangular [][]int matrix (nonzero = obstacle) with a
//     resolution, an origin offset, and a robot radius.
//   - Obstacle inflation derives a second blocking layer from the raw
//     obstacles so paths keep clearance for the robot body.
//   - Neighbors yields traversable (cell, cost) steps under Conn4 or
//     Conn8, charging √2·resolution for diagonals and refusing diagonal
//     moves that cut a corner between two blocked orthogonal cells.
//
// Why:
//
//   - Navigation: a loaded occupancy matrix becomes a planning substrate.
//   - Benchmarking: procedurally generated grids share the same model.
//
// Complexity:
//
//   - New:        O(R×C) plus inflation.
//   - Inflate:    O(B×k²)  (B = obstacles, k = inflation reach in cells).
//   - Neighbors:  O(1)     (at most 8 candidate moves).
//   - FreeCells:  O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:       input matrix has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfBounds:     coordinate outside grid dimensions.
//   - ErrOptionViolation: invalid construction option.
package grid
