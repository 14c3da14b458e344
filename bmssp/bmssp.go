package bmssp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlpath/core"
)

// Solver owns all mutable state of one block-batched SSSP computation:
// tentative distances, predecessors and path lengths over a read-only
// core.Digraph, plus the structural parameters derived from ln n.
//
// A Solver is single-threaded and not safe for concurrent use; two Solvers
// over the same graph are fine, each owns its own arrays.
type Solver struct {
	g      *core.Digraph
	source int
	n      int

	// Structural parameters (see doc.go): k bounds frontier growth and the
	// base-case width, t the per-level batch factor, lMax the recursion depth.
	k    int
	t    int
	lMax int

	// blockSize is the blockD hint: the configured override, or
	// max(32, ⌊(ln n)^(2/3)⌋) when derived.
	blockSize int

	dHat    []float64
	pred    []int
	pathLen []int

	solved bool
}

// New validates the inputs and prepares a solver for the given source.
// The graph must not be mutated while the solver is alive.
func New(g *core.Digraph, source int, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceRange, source, g.VertexCount())
	}

	n := g.VertexCount()

	// ln n drives everything; clamp so tiny graphs get sane parameters.
	logn := math.Max(2, math.Log(float64(maxInt(2, n))))
	k := maxInt(2, int(math.Floor(math.Cbrt(logn))))
	t := maxInt(1, int(math.Floor(math.Pow(logn, 2.0/3.0))))
	lMax := maxInt(0, int(math.Ceil(math.Log(float64(maxInt(2, n)))/math.Max(1, float64(t)))))

	bs := cfg.BlockSize
	if bs == 0 {
		bs = maxInt(32, int(math.Pow(math.Log(float64(maxInt(2, n))), 2.0/3.0)))
	}

	return &Solver{
		g:         g,
		source:    source,
		n:         n,
		k:         k,
		t:         t,
		lMax:      lMax,
		blockSize: bs,
		dHat:      make([]float64, n),
		pred:      make([]int, n),
		pathLen:   make([]int, n),
	}, nil
}

// Solve runs the recursive driver from the configured source and returns a
// copy of the distance vector; unreachable vertices hold +Inf. Solve is
// restartable: each call resets state and recomputes from scratch, and two
// calls over the same graph yield bit-identical results.
func (s *Solver) Solve() []float64 {
	for i := 0; i < s.n; i++ {
		s.dHat[i] = inf
		s.pred[i] = none
		s.pathLen[i] = 0
	}
	s.dHat[s.source] = 0
	s.pathLen[s.source] = sourcePathLen

	s.bmssp(s.lMax, inf, []int{s.source})
	s.solved = true

	out := make([]float64, s.n)
	copy(out, s.dHat)

	return out
}

// bmssp is the recursive driver: settle every vertex whose true distance
// lies below b, starting from the seed set (sorted ascending). It returns
// the bound actually honored (≤ b when the overflow exit fired) and the set
// of vertices settled at this level.
func (s *Solver) bmssp(l int, b float64, seeds []int) (float64, map[int]struct{}) {
	if len(seeds) == 0 {
		return b, make(map[int]struct{})
	}

	// Level 0: settle one small neighborhood around the best seed.
	if l == 0 {
		x := seeds[0]
		for _, c := range seeds[1:] {
			if s.compareByDist(c, x) < 0 {
				x = c
			}
		}

		return s.baseCase(b, x)
	}

	// 1) Elect pivots; W is everything provably below the bound so far.
	w, pivots := s.findPivots(b, seeds)

	// 2) One batched structure per invocation, discarded on return.
	d := newBlockD(s.blockSize, b)
	for _, p := range pivots {
		d.insert(p, s.dHat[p])
	}

	// 3) Batch width grows with the level so deeper levels pull wider.
	m := maxInt(1, 2*(l-1)*s.t)

	u := make(map[int]struct{})

	// The root invocation has no parent to resume a truncated band, so it
	// alone is exempt from both size limits and drains D completely.
	root := l == s.lMax

	// 4) Drain D band by band. The loop guard k²·max(2,l) and the in-loop
	//    overflow exit k²·l·t are intentionally different knobs; both come
	//    from the algorithm as published and stay verbatim.
	for !d.isEmpty() {
		if !root && len(u) >= s.k*s.k*maxInt(2, l) {
			// Size guard: stop mid-band, but report how far settling
			// actually got so the parent can re-feed the remainder. The
			// smallest value still queued bounds everything unfinished.
			retB := math.Min(b, d.minValue())
			for x := range w {
				if s.dHat[x] < retB-eps {
					u[x] = struct{}{}
				}
			}

			return retB, u
		}

		si, bi := d.pull(m)
		if len(si) == 0 {
			break
		}
		sort.Ints(si)

		// Recurse one level down with the tightened bound.
		bPrime, ui := s.bmssp(l-1, bi, si)
		for v := range ui {
			u[v] = struct{}{}
		}

		// Route each relaxed candidate by band: [bi, b) re-enters D directly,
		// [bPrime, bi) is batched for prepending.
		var batch []dItem
		for _, x := range sortedSet(ui) {
			for _, a := range s.g.OutArcs(x) {
				cand := s.dHat[x] + a.Weight
				if cand > s.dHat[a.To]+eps {
					continue
				}
				s.relax(x, a.To, a.Weight)
				switch {
				case cand >= bi-eps && cand < b-eps:
					d.insert(a.To, cand)
				case cand >= bPrime-eps && cand < bi-eps:
					batch = append(batch, dItem{key: a.To, val: cand})
				}
			}
		}

		// Seeds the recursion did not settle fall back into the open band.
		for _, x := range si {
			if s.dHat[x] >= bPrime-eps && s.dHat[x] < bi-eps {
				batch = append(batch, dItem{key: x, val: s.dHat[x]})
			}
		}
		d.batchPrepend(batch)

		// Overflow exit: enough settled that finishing the band is wasted
		// work — shrink the bound and hand everything below it upward.
		if !root && len(u) >= s.k*s.k*l*s.t {
			retB := math.Min(bPrime, b)
			for x := range w {
				if s.dHat[x] < retB-eps {
					u[x] = struct{}{}
				}
			}

			return retB, u
		}
	}

	// 5) Final merge: everything W reached below the bound is settled.
	for x := range w {
		if s.dHat[x] < b-eps {
			u[x] = struct{}{}
		}
	}

	return b, u
}

// relax applies u→v with weight w to the solver state.
//
// Strict improvement (cand+eps < dHat[v]) overwrites distance, predecessor
// and path length. An equal distance (within eps) adopts u as predecessor
// only when (dHat[u], pathLen[u], u) precedes the incumbent predecessor's
// key — the tie-break that pins the predecessor forest deterministically.
func (s *Solver) relax(u, v int, w float64) bool {
	cand := s.dHat[u] + w
	if cand < s.dHat[v]-eps {
		s.dHat[v] = cand
		s.pred[v] = u
		s.pathLen[v] = s.pathLen[u] + 1

		return true
	}
	if math.Abs(cand-s.dHat[v]) <= eps {
		if s.pred[v] == none || s.compareByDist(u, s.pred[v]) < 0 {
			s.pred[v] = u
			s.pathLen[v] = s.pathLen[u] + 1

			return true
		}
	}

	return false
}

// compareByDist orders vertices by the total key (dHat, pathLen, id).
func (s *Solver) compareByDist(a, b int) int {
	if s.dHat[a] != s.dHat[b] {
		if s.dHat[a] < s.dHat[b] {
			return -1
		}

		return 1
	}
	if s.pathLen[a] != s.pathLen[b] {
		if s.pathLen[a] < s.pathLen[b] {
			return -1
		}

		return 1
	}
	if a != b {
		if a < b {
			return -1
		}

		return 1
	}

	return 0
}

// Dist returns the computed distance to v (+Inf if unreachable).
func (s *Solver) Dist(v int) (float64, error) {
	if !s.solved {
		return 0, ErrNotSolved
	}
	if !s.g.HasVertex(v) {
		return 0, fmt.Errorf("%w: v=%d, n=%d", ErrVertexRange, v, s.n)
	}

	return s.dHat[v], nil
}

// Pred returns v's predecessor on the chosen shortest path, or -1 for the
// source and for unreachable vertices.
func (s *Solver) Pred(v int) (int, error) {
	if !s.solved {
		return none, ErrNotSolved
	}
	if !s.g.HasVertex(v) {
		return none, fmt.Errorf("%w: v=%d, n=%d", ErrVertexRange, v, s.n)
	}

	return s.pred[v], nil
}

// PathTo reconstructs the source→v path along the predecessor chain.
func (s *Solver) PathTo(v int) ([]int, error) {
	if !s.solved {
		return nil, ErrNotSolved
	}
	if !s.g.HasVertex(v) {
		return nil, fmt.Errorf("%w: v=%d, n=%d", ErrVertexRange, v, s.n)
	}
	if math.IsInf(s.dHat[v], 1) {
		return nil, fmt.Errorf("%w: v=%d", ErrNoPath, v)
	}

	// Walk back, then reverse in place.
	path := []int{v}
	for cur := v; cur != s.source; {
		cur = s.pred[cur]
		if cur == none {
			return nil, fmt.Errorf("%w: v=%d", ErrNoPath, v)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// maxInt is the two-argument integer max (no generics in this codebase).
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
