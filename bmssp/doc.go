// Package bmssp implements the recursive block-batched single-source
// shortest-path solver for directed graphs with non-negative real weights.
//
// What
//
//   - Solve computes exact shortest-path distances from one source over a
//     core.Digraph, together with predecessors and path lengths for
//     deterministic tie-breaking and path reconstruction.
//   - Instead of popping a global heap one vertex at a time, the solver
//     partitions tentative distances into bounded bands [B′, B) and settles
//     each band with a recursive call:
//   - findPivots: k rounds of bounded relaxations grow a reachable set W
//     and elect pivot seeds P whose tight-edge subtrees have size ≥ k.
//   - blockD: a buffered priority structure (sorted blocks D0 plus an
//     append-only buffer D1) that amortizes many cheap inserts against
//     occasional batched "pull the M smallest" extractions.
//   - baseCase: a bounded Dijkstra exploration that settles at most k+1
//     vertices once recursion bottoms out.
//
// Why
//
//   - The batched structure trades per-operation heap discipline for bulk
//     reorganization, the engineering idea behind breaking the comparison-
//     sorting barrier for directed SSSP.
//   - Distances match a binary-heap Dijkstra within 1e-6 on every input;
//     the dijkstra package exists precisely for that cross-check.
//
// Determinism
//
//	Given the same Digraph (same vertex numbering, same arc insertion
//	order) and the same source, Solve produces bit-identical distances,
//	predecessors and path lengths. All floating-point comparisons share a
//	fixed tolerance, ties are resolved by the total order
//	(distance, path length, vertex id), and every set whose iteration
//	order could influence a relaxation is walked in ascending id order.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Memory: O(V + E) solver-wide, plus O(|W|) per live recursion level;
//     recursion depth is at most lMax ≈ ln V / t.
//   - Time: heuristically below Dijkstra's sort bound on broad frontiers;
//     blockD rebuilds cost O(|current| log |current|) but are amortized
//     over at least mergeThreshold buffered inserts.
//
// Usage
//
//	g, _ := core.NewDigraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 3, 3)
//
//	s, err := bmssp.New(g, 0)
//	if err != nil { ... }
//	dist := s.Solve()        // [0 1 3 6]
//	path, _ := s.PathTo(3)   // [0 1 2 3]
package bmssp
