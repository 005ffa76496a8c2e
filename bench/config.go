package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

// BatchConfig describes one experiment batch: which maps to generate and
// the planner × discipline × motion cross-product to run on each.
// Fields use the external configuration spellings ("Astar", "8n",
// "graph") and are resolved to typed values during validation.
type BatchConfig struct {
	Sizes          []string  `yaml:"sizes"`
	Ratios         []float64 `yaml:"obstacle_ratios"`
	Planners       []string  `yaml:"planners"`
	Disciplines    []string  `yaml:"disciplines"`
	Motions        []string  `yaml:"motions"`
	Trials         int       `yaml:"trials"`
	Seed           int64     `yaml:"seed"`
	RobotRadius    float64   `yaml:"robot_radius"`
	ExpansionLimit int       `yaml:"expansion_limit"`
	Workers        int       `yaml:"workers"`
}

// DefaultConfig returns the batch the original comparison study ran:
// all three planners in both disciplines and both motion models over
// small/medium/large maps at 15% obstacle density.
func DefaultConfig() *BatchConfig {
	return &BatchConfig{
		Sizes:          []string{"small", "medium", "large"},
		Ratios:         []float64{0.15},
		Planners:       []string{"BFS", "DFS", "Astar"},
		Disciplines:    []string{"graph", "tree"},
		Motions:        []string{"4n", "8n"},
		Trials:         5,
		Seed:           42,
		RobotRadius:    1.0,
		ExpansionLimit: search.DefaultExpansionLimit,
	}
}

// LoadConfig reads a BatchConfig from a YAML file, layered over defaults.
func LoadConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return cfg, nil
}

// plan is a fully resolved, typed batch configuration.
type plan struct {
	sizes       []SizeClass
	ratios      []float64
	planners    []search.Algorithm
	disciplines []search.Discipline
	motions     []grid.Connectivity
	trials      int
	seed        int64
	robotRadius float64
	limit       int
	workers     int
}

// Validate checks the configuration's structure. Every defect is wrapped
// in ErrMalformedConfig (or ErrInvalidRatio for ratio bounds) with the
// offending value.
func (c *BatchConfig) Validate() error {
	_, err := c.resolve()
	return err
}

// resolve validates the configuration and maps its external spellings to
// typed values.
func (c *BatchConfig) resolve() (*plan, error) {
	p := &plan{
		ratios:      c.Ratios,
		trials:      c.Trials,
		seed:        c.Seed,
		robotRadius: c.RobotRadius,
		limit:       c.ExpansionLimit,
		workers:     c.Workers,
	}
	if len(c.Sizes) == 0 || len(c.Ratios) == 0 || len(c.Planners) == 0 ||
		len(c.Disciplines) == 0 || len(c.Motions) == 0 {
		return nil, fmt.Errorf("%w: sizes, obstacle_ratios, planners, disciplines and motions must all be non-empty", ErrMalformedConfig)
	}
	if c.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive (%d)", ErrMalformedConfig, c.Trials)
	}
	if c.ExpansionLimit <= 0 {
		return nil, fmt.Errorf("%w: expansion_limit must be positive (%d)", ErrMalformedConfig, c.ExpansionLimit)
	}
	for _, r := range c.Ratios {
		if r < 0 || r >= 1 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, r)
		}
	}
	for _, s := range c.Sizes {
		sc, err := ParseSizeClass(s)
		if err != nil {
			return nil, err
		}
		p.sizes = append(p.sizes, sc)
	}
	for _, s := range c.Planners {
		alg, err := search.ParseAlgorithm(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		p.planners = append(p.planners, alg)
	}
	for _, s := range c.Disciplines {
		d, err := search.ParseDiscipline(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		p.disciplines = append(p.disciplines, d)
	}
	for _, s := range c.Motions {
		conn, err := grid.ParseConnectivity(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		p.motions = append(p.motions, conn)
	}
	return p, nil
}
