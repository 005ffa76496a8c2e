// Package search defines algorithms, disciplines, options, and sentinel
// errors for grid path search.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/navlab/gridplan/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidEndpoint is returned when start or goal is blocked or
	// out of bounds.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultExpansionLimit bounds tree-discipline searches, which may revisit
// cells indefinitely on cyclic grids.
const DefaultExpansionLimit = 50000

// Algorithm selects the frontier ordering policy.
type Algorithm int

const (
	// BFS expands the frontier in strict FIFO order.
	BFS Algorithm = iota
	// DFS expands the frontier in strict LIFO order.
	DFS
	// AStar expands the frontier in order of f = g + h,
	// with an admissible heuristic matched to the motion model.
	AStar
)

// String returns the planner's display name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return "A*"
	}
}

// ParseAlgorithm maps the external configuration spelling
// ("BFS"/"DFS"/"Astar") to an Algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "BFS":
		return BFS, nil
	case "DFS":
		return DFS, nil
	case "Astar", "A*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, s)
	}
}

// Discipline selects the duplicate-handling policy.
type Discipline int

const (
	// GraphSearch deduplicates revisited cells via a closed set; each
	// cell is expanded at most once.
	GraphSearch Discipline = iota
	// TreeSearch never checks for previously seen cells, so the same
	// cell may be expanded many times with different costs. Termination
	// is bounded only by the expansion limit.
	TreeSearch
)

// String returns the discipline's short name.
func (d Discipline) String() string {
	if d == TreeSearch {
		return "tree"
	}
	return "graph"
}

// ParseDiscipline maps "graph"/"tree" to a Discipline value.
func ParseDiscipline(s string) (Discipline, error) {
	switch s {
	case "graph":
		return GraphSearch, nil
	case "tree":
		return TreeSearch, nil
	default:
		return 0, fmt.Errorf("%w: unknown discipline %q", ErrOptionViolation, s)
	}
}

// Outcome records how a search terminated.
type Outcome int

const (
	// Succeeded means the goal was reached and a path reconstructed.
	Succeeded Outcome = iota
	// Exhausted means the frontier emptied before reaching the goal.
	Exhausted
	// LimitExceeded means the expansion safety limit fired. This is a
	// normal experimental outcome, not an error.
	LimitExceeded
)

// String returns the outcome's short name.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return "limit_exceeded"
	}
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters customizing a single search invocation.
type Options struct {
	// Ctx allows cancellation; checked once per expansion loop.
	Ctx context.Context

	// Conn selects the motion model. Default Conn8.
	Conn grid.Connectivity

	// ExpansionLimit caps expanded nodes; exceeding it terminates the
	// search with Outcome LimitExceeded. Must be positive.
	ExpansionLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Conn8 motion
//   - DefaultExpansionLimit (50000) expansions.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Conn:           grid.Conn8,
		ExpansionLimit: DefaultExpansionLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects the 4- or 8-connected motion model.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithExpansionLimit caps the number of node expansions.
//
//	n > 0: limit to n expansions
//	n ≤ 0: invalid option → ErrOptionViolation
func WithExpansionLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ExpansionLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpansionLimit = n
	}
}

// Result holds the outcome of one search invocation.
//   - Path: ordered cells from start to goal; nil when no path was found.
//   - Cost: total path cost under the active motion model.
//   - Expanded: nodes popped from the frontier and expanded; the primary
//     cost metric, independent of wall-clock time.
//   - PeakFrontier: maximum size the frontier ever reached.
type Result struct {
	Algorithm  Algorithm
	Discipline Discipline
	Conn       grid.Connectivity

	Path         []grid.Cell
	Cost         float64
	Expanded     int
	PeakFrontier int
	Elapsed      time.Duration
	Outcome      Outcome
	Success      bool
}
