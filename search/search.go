// Package search implements breadth-first, depth-first, and A* path
// search over a grid.Grid, each runnable in graph (deduplicated) or tree
// (revisit-allowed) discipline. The three algorithms share one expansion
// skeleton and differ only along two orthogonal axes: the frontier
// ordering policy and the duplicate-handling policy.
package search

import (
	"fmt"
	"math"
	"time"

	"github.com/navlab/gridplan/grid"
)

// Search plans a path on g from start to goal using the given algorithm
// and discipline, applying any number of functional Options.
//
// Preconditions: start and goal must be free cells within bounds;
// returns ErrInvalidEndpoint otherwise. ErrNilGrid and ErrOptionViolation
// cover the remaining invalid inputs.
//
// A failed search (frontier exhausted or expansion limit reached) is a
// normal outcome: the Result carries Success=false and a nil Path, and
// no error is returned. Each call is a fresh automaton with no state
// shared across invocations.
//
// Complexity (graph discipline): O(N·d) for BFS/DFS and O(N·d·log N) for
// A*, where N ≤ R×C and d is the branching factor (4 or 8). Tree
// discipline is bounded by the expansion limit instead of N.
func Search(g *grid.Grid, start, goal grid.Cell, alg Algorithm, disc Discipline, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkEndpoint(g, start, "start"); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, goal, "goal"); err != nil {
		return nil, err
	}

	w := &walker{
		grid:  g,
		opts:  o,
		alg:   alg,
		disc:  disc,
		goal:  goal,
		front: newFrontier(alg),
		res: &Result{
			Algorithm:  alg,
			Discipline: disc,
			Conn:       o.Conn,
		},
	}
	if disc == GraphSearch {
		w.closed = make(map[grid.Cell]bool)
		w.bestG = make(map[grid.Cell]float64)
	}

	started := time.Now()
	w.seed(start)
	err := w.loop()
	w.res.Elapsed = time.Since(started)
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// checkEndpoint wraps blocked or out-of-bounds endpoints in
// ErrInvalidEndpoint with enough context to diagnose without rerunning.
func checkEndpoint(g *grid.Grid, c grid.Cell, role string) error {
	free, err := g.IsFree(c)
	if err != nil {
		return fmt.Errorf("%w: %s %v out of bounds", ErrInvalidEndpoint, role, c)
	}
	if !free {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, role, c)
	}
	return nil
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	grid  *grid.Grid
	opts  Options
	alg   Algorithm
	disc  Discipline
	goal  grid.Cell
	front frontier

	closed map[grid.Cell]bool    // graph discipline only
	bestG  map[grid.Cell]float64 // graph discipline only: best known g per discovered cell

	seq int
	res *Result
}

// seed pushes the start node onto the frontier.
func (w *walker) seed(start grid.Cell) {
	n := &node{cell: start, g: 0, seq: w.seq}
	if w.alg == AStar {
		n.f = w.heuristic(start)
	}
	w.seq++
	if w.disc == GraphSearch {
		w.bestG[start] = 0
	}
	w.push(n)
}

// push inserts a node and tracks the peak frontier size.
func (w *walker) push(n *node) {
	w.front.push(n)
	if w.front.len() > w.res.PeakFrontier {
		w.res.PeakFrontier = w.front.len()
	}
}

// loop processes the frontier until the goal is reached, the frontier
// empties, the expansion limit fires, or the context is cancelled.
func (w *walker) loop() error {
	for w.front.len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		n := w.front.pop()

		// Lazy decrease-key leaves stale entries in the A* heap;
		// a closed cell has already been expanded along a path no
		// worse than this one. Skipped pops are not counted.
		if w.disc == GraphSearch && w.closed[n.cell] {
			continue
		}

		if w.res.Expanded >= w.opts.ExpansionLimit {
			w.res.Outcome = LimitExceeded
			return nil
		}
		w.res.Expanded++

		if n.cell == w.goal {
			w.finish(n)
			return nil
		}
		if w.disc == GraphSearch {
			w.closed[n.cell] = true
		}
		if err := w.expand(n); err != nil {
			return err
		}
	}
	w.res.Outcome = Exhausted
	return nil
}

// expand generates n's neighbors and pushes those admitted by the
// discipline's duplicate policy.
func (w *walker) expand(n *node) error {
	steps, err := w.grid.Neighbors(n.cell, w.opts.Conn)
	if err != nil {
		return err
	}
	for _, s := range steps {
		ng := n.g + s.Cost

		if w.disc == GraphSearch {
			if w.closed[s.Cell] {
				continue
			}
			if old, seen := w.bestG[s.Cell]; seen {
				// BFS/DFS never revisit a discovered cell; A*
				// relaxes when a strictly cheaper path appears,
				// re-inserting with the new predecessor.
				if w.alg != AStar || ng >= old {
					continue
				}
			}
			w.bestG[s.Cell] = ng
		}

		child := &node{cell: s.Cell, g: ng, seq: w.seq, parent: n}
		if w.alg == AStar {
			child.f = ng + w.heuristic(s.Cell)
		}
		w.seq++
		w.push(child)
	}
	return nil
}

// finish reconstructs the path by following parent links from the goal
// node back to the start, then reversing.
func (w *walker) finish(goal *node) {
	depth := 0
	for n := goal; n != nil; n = n.parent {
		depth++
	}
	path := make([]grid.Cell, depth)
	for n, i := goal, depth-1; n != nil; n, i = n.parent, i-1 {
		path[i] = n.cell
	}
	w.res.Path = path
	w.res.Cost = goal.g
	w.res.Outcome = Succeeded
	w.res.Success = true
}

// heuristic estimates the remaining cost from c to the goal: Manhattan
// distance under Conn4, octile distance under Conn8. Both are admissible
// and consistent for their motion model, so closed cells never need
// reopening.
func (w *walker) heuristic(c grid.Cell) float64 {
	dr := abs(c.Row - w.goal.Row)
	dc := abs(c.Col - w.goal.Col)
	res := w.grid.Resolution()
	if w.opts.Conn == grid.Conn4 {
		return float64(dr+dc) * res
	}
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}
	return (float64(hi) + (math.Sqrt2-1)*float64(lo)) * res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
