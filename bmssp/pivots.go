package bmssp

import (
	"sort"

	"github.com/golang-collections/collections/stack"
)

// findPivots grows a bounded reachable set W from the seed set S and elects
// the pivot subset P ⊆ S worth recursing on.
//
// Procedure:
//  1. Run up to k rounds of relaxations out of the current frontier,
//     admitting into W every vertex whose candidate distance stays below B.
//  2. If W blows up past k·|S| the whole seed set is returned as P — the
//     frontier is already broad enough that electing pivots buys nothing.
//  3. Otherwise build the tight-edge forest on W (arcs whose head distance
//     equals tail distance + weight within eps) and keep as pivots the
//     seeds whose subtree spans at least k vertices.
//
// S must be sorted ascending; frontier layers are walked in ascending id
// order so relaxations apply in a reproducible sequence. dHat/pred/pathLen
// are updated in place as a side effect.
func (s *Solver) findPivots(b float64, seeds []int) (map[int]struct{}, []int) {
	w := make(map[int]struct{}, len(seeds))
	for _, v := range seeds {
		w[v] = struct{}{}
	}
	prev := append([]int(nil), seeds...)

	for step := 1; step <= s.k; step++ {
		next := make(map[int]struct{})
		for _, u := range prev {
			for _, a := range s.g.OutArcs(u) {
				cand := s.dHat[u] + a.Weight
				if cand > s.dHat[a.To]+eps {
					continue
				}
				// Strict improvements overwrite; ties are left alone here —
				// the full tie-break only runs in relax, after recursion.
				if cand < s.dHat[a.To]-eps {
					s.dHat[a.To] = cand
					s.pred[a.To] = u
					s.pathLen[a.To] = s.pathLen[u] + 1
				}
				if cand < b-eps {
					if _, seen := w[a.To]; !seen {
						w[a.To] = struct{}{}
						next[a.To] = struct{}{}
					}
				}
			}
		}

		// Cheap-pivot case: superlinear growth relative to the seed set.
		if len(w) > s.k*len(seeds) {
			return w, append([]int(nil), seeds...)
		}

		prev = sortedSet(next)
	}

	// Tight-edge forest on W: u→v is tight when dHat[v] = dHat[u]+w (eps).
	wSorted := sortedSet(w)
	fAdj := make(map[int][]int, len(w))
	for _, u := range wSorted {
		for _, a := range s.g.OutArcs(u) {
			if _, in := w[a.To]; !in {
				continue
			}
			diff := s.dHat[a.To] - (s.dHat[u] + a.Weight)
			if diff <= eps && diff >= -eps {
				fAdj[u] = append(fAdj[u], a.To)
			}
		}
	}

	// Subtree sizes rooted at each seed, via iterative post-order: one work
	// stack drives the traversal, a second accumulates the finish order.
	// The forest can be bushy and deep, so no recursion here.
	subtree := make(map[int]int, len(w))
	visited := make(map[int]struct{}, len(w))
	for _, root := range seeds {
		if _, in := w[root]; !in {
			continue
		}
		if _, done := visited[root]; done {
			continue
		}
		work := stack.New()
		order := stack.New()
		work.Push(root)
		for work.Len() > 0 {
			u := work.Pop().(int)
			if _, done := visited[u]; done {
				continue
			}
			visited[u] = struct{}{}
			order.Push(u)
			for _, v := range fAdj[u] {
				if _, done := visited[v]; !done {
					work.Push(v)
				}
			}
		}
		for order.Len() > 0 {
			u := order.Pop().(int)
			size := 1
			for _, v := range fAdj[u] {
				size += subtree[v]
			}
			subtree[u] = size
		}
	}

	// Pivots: seeds whose tight subtree reaches k vertices.
	p := make([]int, 0, len(seeds))
	for _, root := range seeds {
		if _, in := w[root]; !in {
			continue
		}
		if subtree[root] >= s.k {
			p = append(p, root)
		}
	}

	return w, p
}

// sortedSet flattens a vertex set into an ascending slice.
func sortedSet(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
