package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: slice indexed by vertex id; +Inf marks unreachable vertices.
//   - prev: predecessor slice if WithReturnPath was given (nil otherwise);
//     prev[v] == -1 for the source and for unreachable vertices.
//   - err:  ErrNilGraph or ErrSourceRange on invalid input.
func Dijkstra(g *core.Digraph, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and the source vertex.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceRange, source, g.VertexCount())
	}

	// 3) Prepare state and run.
	r := newRunner(g, cfg, source)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Digraph
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// newRunner initializes distances to +Inf, pushes the source at 0 and
// allocates the predecessor slice only when it will be returned.
func newRunner(g *core.Digraph, cfg Options, source int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := 0; i < n; i++ {
			r.prev[i] = -1
		}
	}

	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process is the main loop: extract the minimum, skip stale entries, relax.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Stale heap entry for an already finalized vertex.
		if r.visited[item.id] {
			continue
		}
		// Beyond the cap nothing closer can ever appear; stop.
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax examines u's out-arcs and improves neighbor distances.
func (r *runner) relax(u int) {
	for _, a := range r.g.OutArcs(u) {
		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates on equal distances.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem pairs a vertex with the distance it was pushed at.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, breaking ties by id so
// extraction order is deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
