// Package bench drives many search invocations across procedurally
// generated maps and aggregates their results.
package bench

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/navlab/gridplan/grid"
	"github.com/navlab/gridplan/search"
)

// job is one (map, planner, discipline, motion) configuration awaiting
// execution. Each job owns its map reference read-only; search state is
// private to the invocation, so jobs run concurrently without locking.
type job struct {
	m     *grid.Grid
	mapID string
	size  SizeClass
	ratio float64
	trial int
	start grid.Cell
	goal  grid.Cell

	alg  search.Algorithm
	disc search.Discipline
	conn grid.Connectivity
}

// RunBatch validates cfg, generates one map per (size, ratio, trial)
// triple, and runs the full planner × discipline × motion cross-product
// on each across a worker pool. Every configuration on a given map
// shares the same start/goal pair, keeping planner comparisons fair.
//
// Failure policy: a search that finds no path is recorded as data and
// the batch continues. Structural errors (invalid ratio, malformed
// config, a map with no usable endpoints) abort and are returned.
// Cancellation is cooperative: workers check ctx before starting each
// configuration and the partially filled batch is returned with ctx's
// error.
func RunBatch(ctx context.Context, cfg *BatchConfig) (*Batch, error) {
	p, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	batch := &Batch{ID: uuid.NewString(), Started: time.Now()}

	// Generate maps up front so structural failures surface before any
	// search runs. Seeds advance deterministically from the batch seed.
	var jobs []job
	mapSeed := p.seed
	for _, size := range p.sizes {
		for _, ratio := range p.ratios {
			for trial := 0; trial < p.trials; trial++ {
				m, err := GenerateMap(size, ratio, mapSeed, p.robotRadius)
				if err != nil {
					return nil, err
				}
				rng := rand.New(rand.NewSource(mapSeed + 1))
				start, goal, err := pickEndpoints(m, rng)
				if err != nil {
					return nil, err
				}
				mapID := uuid.NewString()
				for _, alg := range p.planners {
					for _, disc := range p.disciplines {
						for _, conn := range p.motions {
							jobs = append(jobs, job{
								m: m, mapID: mapID, size: size, ratio: ratio, trial: trial,
								start: start, goal: goal,
								alg: alg, disc: disc, conn: conn,
							})
						}
					}
				}
				mapSeed += 2
			}
		}
	}

	workers := p.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A worker hitting a structural error cancels its siblings and the
	// feed loop; the first error wins.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobCh := make(chan job)
	recCh := make(chan Record)
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				// cancellation check before each configuration
				select {
				case <-runCtx.Done():
					return
				default:
				}
				res, err := search.Search(j.m, j.start, j.goal, j.alg, j.disc,
					search.WithContext(runCtx),
					search.WithConnectivity(j.conn),
					search.WithExpansionLimit(p.limit),
				)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}
				recCh <- Record{
					Result: *res,
					MapID:  j.mapID,
					Size:   j.size,
					Ratio:  j.ratio,
					Trial:  j.trial,
					Start:  j.start,
					Goal:   j.goal,
				}
			}
		}()
	}

	// Single collector: the batch slice is the only shared structure.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for rec := range recCh {
			batch.Records = append(batch.Records, rec)
		}
	}()

feed:
	for _, j := range jobs {
		select {
		case <-runCtx.Done():
			break feed
		case jobCh <- j:
		}
	}
	close(jobCh)
	wg.Wait()
	close(recCh)
	<-done

	batch.Finished = time.Now()
	sortRecords(batch.Records)

	// Caller cancellation outranks worker errors, which at that point
	// are just the context error echoed back from Search.
	if ctx.Err() != nil {
		return batch, ctx.Err()
	}
	select {
	case err := <-errCh:
		return batch, err
	default:
	}
	return batch, nil
}

// sortRecords imposes a deterministic order on results collected from
// concurrent workers, so summaries and exports are reproducible.
func sortRecords(recs []Record) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.Ratio != b.Ratio {
			return a.Ratio < b.Ratio
		}
		if a.Trial != b.Trial {
			return a.Trial < b.Trial
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		if a.Discipline != b.Discipline {
			return a.Discipline < b.Discipline
		}
		return a.Conn < b.Conn
	})
}
