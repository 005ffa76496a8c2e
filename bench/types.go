// Package bench defines core types, configuration, and sentinel errors
// for the path-planning benchmark harness.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

// Sentinel errors for benchmark operations.
var (
	// ErrInvalidRatio indicates an obstacle ratio outside [0, 1).
	ErrInvalidRatio = errors.New("bench: obstacle ratio must be in [0, 1)")
	// ErrMalformedConfig indicates a structurally invalid batch configuration.
	ErrMalformedConfig = errors.New("bench: malformed batch config")
	// ErrNoFreeCells indicates a generated map with fewer than two free
	// cells, leaving no valid start/goal pair.
	ErrNoFreeCells = errors.New("bench: map has fewer than two free cells")
)

// SizeClass selects a fixed map dimension preset.
type SizeClass int

const (
	// Small maps are 10×10.
	Small SizeClass = iota
	// Medium maps are 50×50.
	Medium
	// Large maps are 100×100.
	Large
)

// Dimension returns the preset side length for the size class.
func (s SizeClass) Dimension() int {
	switch s {
	case Small:
		return 10
	case Medium:
		return 50
	default:
		return 100
	}
}

// String returns the size class's short name.
func (s SizeClass) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	default:
		return "large"
	}
}

// ParseSizeClass maps "small"/"medium"/"large" to a SizeClass.
func ParseSizeClass(s string) (SizeClass, error) {
	switch s {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	default:
		return 0, fmt.Errorf("%w: unknown size class %q", ErrMalformedConfig, s)
	}
}

// Record couples one search result with the configuration and map that
// produced it.
type Record struct {
	search.Result

	MapID string
	Size  SizeClass
	Ratio float64
	Trial int
	Start grid.Cell
	Goal  grid.Cell
}

// Batch owns the results produced by one RunBatch invocation.
type Batch struct {
	ID       string
	Started  time.Time
	Finished time.Time
	Records  []Record
}

// GroupBy selects the key Summarize aggregates records under.
type GroupBy int

const (
	// ByPlanner groups records per algorithm (the default).
	ByPlanner GroupBy = iota
	// ByDiscipline groups records per graph/tree discipline.
	ByDiscipline
	// ByMotion groups records per 4n/8n motion model.
	ByMotion
	// BySize groups records per map size class.
	BySize
)

// key derives the group label for a record.
func (g GroupBy) key(r Record) string {
	switch g {
	case ByDiscipline:
		return r.Discipline.String()
	case ByMotion:
		return r.Conn.String()
	case BySize:
		return r.Size.String()
	default:
		return r.Algorithm.String()
	}
}

// Stats holds the five summary statistics reported per metric.
type Stats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summary aggregates one group's records. RuntimeMS covers all runs;
// Expanded and PeakFrontier likewise. PathLength and PathCost cover
// successful runs only, since a failed search has no path to measure.
type Summary struct {
	Count       int
	SuccessRate float64

	RuntimeMS    Stats
	Expanded     Stats
	PeakFrontier Stats
	PathLength   Stats
	PathCost     Stats
}
