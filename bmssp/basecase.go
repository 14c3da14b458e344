package bmssp

import "container/heap"

// baseCase settles a small neighborhood exactly once recursion bottoms out.
// Starting from x (the seed with the smallest tentative distance), it runs
// a Dijkstra-style exploration bounded two ways: at most k+1 vertices are
// processed (popped and relaxed), and no candidate at or beyond the bound
// B is taken.
//
// The queue uses the lazy decrease-key idiom: improvements push duplicates
// carrying a fresh (dist, pathLen, id) snapshot, and pops of an
// already-processed vertex are skipped. U0 is the processed set — counting
// discoveries instead would let a heavy first arc evict the cheap frontier
// behind it and strand settled-looking vertices mid-band.
//
// Return value:
//   - |U0| ≤ k: the whole neighborhood fit — return (B, U0).
//   - |U0| = k+1: the band was cut — shrink the bound to B′ = max dHat
//     over U0 and return (B′, {v ∈ U0 : dHat[v] < B′−eps}); everything
//     trimmed is re-discovered by the caller's next band.
//   - Plateau: if that trim would leave nothing (every vertex of U0 sits
//     at B′), return (B, U0) instead.
func (s *Solver) baseCase(b float64, x int) (float64, map[int]struct{}) {
	u0 := make(map[int]struct{}, s.k+1)

	pq := make(caseHeap, 0, s.k+1)
	heap.Init(&pq)
	heap.Push(&pq, caseItem{dist: s.dHat[x], pathLen: s.pathLen[x], id: x})

	for pq.Len() > 0 && len(u0) < s.k+1 {
		u := heap.Pop(&pq).(caseItem).id
		if _, done := u0[u]; done {
			continue
		}
		u0[u] = struct{}{}

		for _, a := range s.g.OutArcs(u) {
			cand := s.dHat[u] + a.Weight
			if cand > s.dHat[a.To]+eps || cand >= b-eps {
				continue
			}
			s.relax(u, a.To, a.Weight)
			if _, done := u0[a.To]; !done {
				heap.Push(&pq, caseItem{dist: s.dHat[a.To], pathLen: s.pathLen[a.To], id: a.To})
			}
		}
	}

	if len(u0) <= s.k {
		return b, u0
	}

	// Over-full: cut back to the largest settled distance.
	bPrime := -1.0
	for v := range u0 {
		if s.dHat[v] > bPrime {
			bPrime = s.dHat[v]
		}
	}
	u := make(map[int]struct{}, len(u0))
	for v := range u0 {
		if s.dHat[v] < bPrime-eps {
			u[v] = struct{}{}
		}
	}

	// Plateau: every processed vertex sits exactly at B′, which happens on
	// zero-weight cycles and exact ties. All of them hold the minimal
	// remaining distance in the band, so they are final by the usual
	// Dijkstra argument; trimming them would hand the caller an empty
	// batch and re-queue the seed at the same value forever.
	if len(u) == 0 {
		return b, u0
	}

	return bPrime, u
}

// caseItem is a queue entry carrying the full tie-break key.
type caseItem struct {
	dist    float64
	pathLen int
	id      int
}

// caseHeap is a min-heap of caseItem under the total order
// (dist, pathLen, id) ascending.
type caseHeap []caseItem

func (h caseHeap) Len() int { return len(h) }

func (h caseHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	if h[i].pathLen != h[j].pathLen {
		return h[i].pathLen < h[j].pathLen
	}

	return h[i].id < h[j].id
}

func (h caseHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *caseHeap) Push(x interface{}) { *h = append(*h, x.(caseItem)) }

func (h *caseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
