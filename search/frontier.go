package search

import (
	"container/heap"

	"github.com/navlab/gridplan/grid"
)

// node is the search-internal record for one discovered state: a cell,
// its accumulated path cost g, its priority f (g + heuristic, A* only),
// an insertion sequence number for stable tie-breaking, and the parent
// link used solely for path reconstruction. Nodes live only for the
// duration of one Search invocation.
type node struct {
	cell   grid.Cell
	g, f   float64
	seq    int
	parent *node
}

// frontier abstracts the discovered-but-not-yet-expanded set. The three
// algorithms differ only in the ordering policy this interface hides:
// FIFO for BFS, LIFO for DFS, min-f priority queue for A*.
type frontier interface {
	push(n *node)
	pop() *node
	len() int
}

// newFrontier selects the ordering policy for the given algorithm.
func newFrontier(alg Algorithm) frontier {
	switch alg {
	case BFS:
		return &fifoFrontier{}
	case DFS:
		return &lifoFrontier{}
	default:
		pq := &pqFrontier{}
		heap.Init(pq)
		return pq
	}
}

// fifoFrontier is a strict first-in-first-out queue.
type fifoFrontier struct {
	items []*node
}

func (q *fifoFrontier) push(n *node) { q.items = append(q.items, n) }

func (q *fifoFrontier) pop() *node {
	n := q.items[0]
	q.items = q.items[1:]
	return n
}

func (q *fifoFrontier) len() int { return len(q.items) }

// lifoFrontier is a strict last-in-first-out stack.
type lifoFrontier struct {
	items []*node
}

func (s *lifoFrontier) push(n *node) { s.items = append(s.items, n) }

func (s *lifoFrontier) pop() *node {
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n
}

func (s *lifoFrontier) len() int { return len(s.items) }

// pqFrontier is a min-heap ordered by f. Ties on f prefer the larger g
// (nodes closer to the goal, fewer wasted expansions), then fall back to
// insertion order for stability.
type pqFrontier struct {
	items []*node
}

func (pq *pqFrontier) Len() int { return len(pq.items) }

func (pq *pqFrontier) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (pq *pqFrontier) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *pqFrontier) Push(x any) { pq.items = append(pq.items, x.(*node)) }

func (pq *pqFrontier) Pop() any {
	old := pq.items
	n := old[len(old)-1]
	old[len(old)-1] = nil
	pq.items = old[:len(old)-1]
	return n
}

func (pq *pqFrontier) push(n *node) { heap.Push(pq, n) }

func (pq *pqFrontier) pop() *node { return heap.Pop(pq).(*node) }

func (pq *pqFrontier) len() int { return len(pq.items) }
