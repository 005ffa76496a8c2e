// Command gridplan runs a single navigation query or a benchmark batch
// against the grid search engine and reports the results.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/navlab/gridplan/bench"
	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

var (
	configFile string
	csvOut     string
	groupBy    string
	workers    int
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gridplan",
		Short: "grid path planning and benchmark harness",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")

	navCmd := &cobra.Command{
		Use:   "nav",
		Short: "plan a single start/goal path on a configured map",
		RunE:  runNav,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run a benchmark batch and summarize planner performance",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&csvOut, "csv", "", "write per-run records to a CSV file")
	benchCmd.Flags().StringVar(&groupBy, "group-by", "planner", "summary grouping: planner|discipline|motion|size")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")

	rootCmd.AddCommand(navCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// navConfig mirrors the validated configuration record the navigation
// layer hands to the core.
type navConfig struct {
	Motion         string  `yaml:"motion"`
	Planner        string  `yaml:"planner"`
	UseTreeSearch  bool    `yaml:"use_tree_search"`
	Start          [2]int  `yaml:"start"`
	Goal           [2]int  `yaml:"goal"`
	Resolution     float64 `yaml:"resolution"`
	RobotRadius    float64 `yaml:"robot_radius"`
	ExpansionLimit int     `yaml:"expansion_limit"`
	Grid           [][]int `yaml:"grid"`
}

func runNav(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return fmt.Errorf("nav requires --config")
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}
	cfg := navConfig{Motion: "8n", Planner: "Astar", Resolution: 1.0, ExpansionLimit: search.DefaultExpansionLimit}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	conn, err := grid.ParseConnectivity(cfg.Motion)
	if err != nil {
		return err
	}
	alg, err := search.ParseAlgorithm(cfg.Planner)
	if err != nil {
		return err
	}
	disc := search.GraphSearch
	if cfg.UseTreeSearch {
		disc = search.TreeSearch
	}

	m, err := grid.New(cfg.Grid,
		grid.WithResolution(cfg.Resolution),
		grid.WithRobotRadius(cfg.RobotRadius),
	)
	if err != nil {
		return err
	}

	start := grid.Cell{Row: cfg.Start[0], Col: cfg.Start[1]}
	goal := grid.Cell{Row: cfg.Goal[0], Col: cfg.Goal[1]}
	slog.Info("planning", "planner", alg, "discipline", disc, "motion", conn,
		"start", start, "goal", goal, "rows", m.Rows(), "cols", m.Cols())

	res, err := search.Search(m, start, goal, alg, disc,
		search.WithContext(cmd.Context()),
		search.WithConnectivity(conn),
		search.WithExpansionLimit(cfg.ExpansionLimit),
	)
	if err != nil {
		return err
	}

	slog.Info("search finished", "outcome", res.Outcome,
		"path_len", len(res.Path), "cost", res.Cost,
		"expanded", res.Expanded, "peak_frontier", res.PeakFrontier,
		"elapsed", res.Elapsed)
	if !res.Success {
		fmt.Println("no path found")
		return nil
	}
	fmt.Println(renderPath(m, res.Path))
	return nil
}

// renderPath draws the grid with obstacles as '#', the path as '*', and
// its endpoints as 'S'/'G'.
func renderPath(m *grid.Grid, path []grid.Cell) string {
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var sb strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			switch {
			case len(path) > 0 && cell == path[0]:
				sb.WriteByte('S')
			case len(path) > 0 && cell == path[len(path)-1]:
				sb.WriteByte('G')
			case onPath[cell]:
				sb.WriteByte('*')
			default:
				if free, _ := m.IsFree(cell); free {
					sb.WriteByte('.')
				} else {
					sb.WriteByte('#')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := bench.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = bench.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	var gb bench.GroupBy
	switch groupBy {
	case "planner":
		gb = bench.ByPlanner
	case "discipline":
		gb = bench.ByDiscipline
	case "motion":
		gb = bench.ByMotion
	case "size":
		gb = bench.BySize
	default:
		return fmt.Errorf("unknown group-by %q", groupBy)
	}

	slog.Info("running batch", "sizes", cfg.Sizes, "ratios", cfg.Ratios,
		"planners", cfg.Planners, "trials", cfg.Trials, "seed", cfg.Seed)

	batch, err := bench.RunBatch(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("batch finished", "id", batch.ID, "records", len(batch.Records),
		"elapsed", batch.Finished.Sub(batch.Started))

	summary := bench.Summarize(batch, gb)
	printSummary(summary)
	chartExpansions(summary)

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := bench.WriteCSV(f, batch); err != nil {
			return err
		}
		slog.Info("wrote CSV", "path", csvOut)
	}
	return nil
}

func printSummary(summary map[string]bench.Summary) {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "group\truns\tsuccess\truntime ms (mean/med)\texpanded (mean/med)\tpath cost (mean)")
	for _, k := range keys {
		s := summary[k]
		fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%.3f / %.3f\t%.1f / %.1f\t%.3f\n",
			k, s.Count, s.SuccessRate*100,
			s.RuntimeMS.Mean, s.RuntimeMS.Median,
			s.Expanded.Mean, s.Expanded.Median,
			s.PathCost.Mean)
	}
	w.Flush()
}

// chartExpansions plots the mean expanded-node count per group, the
// primary cost metric of the comparison.
func chartExpansions(summary map[string]bench.Summary) {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) < 2 {
		return
	}
	data := make([]float64, len(keys))
	for i, k := range keys {
		data[i] = summary[k].Expanded.Mean
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("mean expansions: "+strings.Join(keys, ", ")),
	))
}
