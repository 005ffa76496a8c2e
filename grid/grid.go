// Package grid models a robot workspace as a rectangular occupancy grid.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8) with per-step costs
//   - Obstacle inflation by the robot radius
//   - Grid-to-world and world-to-grid coordinate transforms
//
// Cells with a nonzero input value are obstacles; all others are free.
package grid

import (
	"fmt"
	"math"
)

// Grid is an immutable occupancy grid. It stores the raw obstacle layer as
// read from the input matrix and a derived inflation layer marking cells
// the robot cannot occupy because an obstacle lies within its radius.
// All mutation is confined to construction; Inflate returns a new Grid.
type Grid struct {
	rows, cols  int
	resolution  float64
	originX     float64
	originY     float64
	robotRadius float64
	obstacles   [][]bool // raw obstacle layer, [row][col]
	inflated    [][]bool // derived from obstacles and robotRadius
}

// New constructs a Grid from a non-empty, rectangular 2D matrix where a
// nonzero value marks an obstacle. The input is deep-copied to ensure
// immutability. Inflation runs immediately when a positive robot radius
// is configured.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrOptionViolation.
// Complexity: O(R×C) time and memory, plus inflation (see Inflate).
func New(cells [][]int, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Deep copy into the raw obstacle layer.
	obstacles := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		obstacles[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			obstacles[r][c] = cells[r][c] != 0
		}
	}

	g := &Grid{
		rows:        rows,
		cols:        cols,
		resolution:  o.resolution,
		originX:     o.originX,
		originY:     o.originY,
		robotRadius: o.robotRadius,
		obstacles:   obstacles,
	}
	g.inflated = g.computeInflation(o.robotRadius)

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Resolution returns the size of one cell in world units.
func (g *Grid) Resolution() float64 { return g.resolution }

// RobotRadius returns the radius used to derive the inflation layer.
func (g *Grid) RobotRadius() float64 { return g.robotRadius }

// InBounds reports whether cell lies within the grid dimensions.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsFree reports whether a cell is traversable: neither a raw obstacle nor
// blocked by inflation. Returns ErrOutOfBounds (with the offending cell)
// when the coordinate lies outside grid dimensions.
func (g *Grid) IsFree(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return !g.blocked(c.Row, c.Col), nil
}

// blocked assumes in-bounds coordinates.
func (g *Grid) blocked(row, col int) bool {
	return g.obstacles[row][col] || g.inflated[row][col]
}

// Neighbors returns the traversable neighbors of c under the given motion
// model, each paired with its step cost: resolution for an orthogonal
// move, √2·resolution for a diagonal one. Out-of-bounds and blocked cells
// are excluded. A diagonal move is also excluded when both orthogonal
// cells flanking it are blocked, so the robot never cuts a corner through
// a diagonal gap.
// Returns ErrOutOfBounds when c itself lies outside the grid.
// Complexity: O(1) — at most 8 candidate moves.
func (g *Grid) Neighbors(c Cell, conn Connectivity) ([]Step, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	steps := make([]Step, 0, 8)
	for _, d := range orthoOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(Cell{nr, nc}) || g.blocked(nr, nc) {
			continue
		}
		steps = append(steps, Step{Cell: Cell{nr, nc}, Cost: g.resolution})
	}
	if conn == Conn4 {
		return steps, nil
	}
	for _, d := range diagOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(Cell{nr, nc}) || g.blocked(nr, nc) {
			continue
		}
		// Corner-cut exclusion: both flanking orthogonal cells blocked.
		if g.blocked(c.Row+d[0], c.Col) && g.blocked(c.Row, c.Col+d[1]) {
			continue
		}
		steps = append(steps, Step{Cell: Cell{nr, nc}, Cost: math.Sqrt2 * g.resolution})
	}

	return steps, nil
}

// StepCost returns the cost of moving between two adjacent cells:
// √2·resolution when both coordinates change, resolution otherwise.
func (g *Grid) StepCost(from, to Cell) float64 {
	if from.Row != to.Row && from.Col != to.Col {
		return math.Sqrt2 * g.resolution
	}
	return g.resolution
}

// FreeCells enumerates every traversable cell in row-major order.
// Complexity: O(R×C).
func (g *Grid) FreeCells() []Cell {
	free := make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.blocked(r, c) {
				free = append(free, Cell{r, c})
			}
		}
	}
	return free
}

// GridToWorld converts a cell to the world coordinates of its center:
// world = origin + index·resolution + resolution/2.
func (g *Grid) GridToWorld(c Cell) (x, y float64) {
	x = g.originX + float64(c.Col)*g.resolution + g.resolution/2
	y = g.originY + float64(c.Row)*g.resolution + g.resolution/2
	return x, y
}

// WorldToGrid converts world coordinates to the containing cell.
// Returns ErrOutOfBounds when the point falls outside the grid.
func (g *Grid) WorldToGrid(x, y float64) (Cell, error) {
	c := Cell{
		Row: int(math.Floor((y - g.originY) / g.resolution)),
		Col: int(math.Floor((x - g.originX) / g.resolution)),
	}
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: world point (%v,%v) maps to %v", ErrOutOfBounds, x, y, c)
	}
	return c, nil
}
