// Package grid defines core types, options, and sentinel errors
// for the occupancy-grid model of github.com/navlab/gridplan.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Connectivity selects the motion model: orthogonal moves only (Conn4)
// or orthogonal plus diagonal moves (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns the conventional short name of the motion model.
func (c Connectivity) String() string {
	if c == Conn4 {
		return "4n"
	}
	return "8n"
}

// ParseConnectivity maps the external configuration spelling ("4n"/"8n")
// to a Connectivity value.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4n":
		return Conn4, nil
	case "8n":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("%w: unknown connectivity %q", ErrOptionViolation, s)
	}
}

// Cell identifies a single grid cell by row and column.
// Cells are identity-comparable and used as map keys throughout.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)" for error context and logs.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step pairs a reachable neighbor cell with the cost of moving into it.
type Step struct {
	Cell Cell
	Cost float64
}

// neighbor offsets, precomputed per connectivity.
// The first four entries are the orthogonal moves shared by both models;
// diagOffsets extend them for Conn8.
var (
	orthoOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagOffsets  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Option configures grid construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*options)

type options struct {
	resolution  float64
	originX     float64
	originY     float64
	robotRadius float64
	err         error
}

func defaultOptions() options {
	return options{resolution: 1.0}
}

// WithResolution sets the size of one grid cell in world units.
// Must be positive; the default is 1.0.
func WithResolution(res float64) Option {
	return func(o *options) {
		if res <= 0 || math.IsNaN(res) {
			o.err = fmt.Errorf("%w: resolution must be positive (%v)", ErrOptionViolation, res)
			return
		}
		o.resolution = res
	}
}

// WithOrigin sets the world coordinates of the grid's (0,0) corner.
func WithOrigin(x, y float64) Option {
	return func(o *options) {
		o.originX, o.originY = x, y
	}
}

// WithRobotRadius sets the robot radius in world units used for obstacle
// inflation. A radius ≤ 0 disables inflation.
func WithRobotRadius(r float64) Option {
	return func(o *options) {
		if math.IsNaN(r) {
			o.err = fmt.Errorf("%w: robot radius is NaN", ErrOptionViolation)
			return
		}
		o.robotRadius = r
	}
}
