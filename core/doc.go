// SPDX-License-Identifier: MIT

// Package core provides the dense directed graph underlying every lvlpath
// solver.
//
// What
//
//   - Digraph: a directed adjacency-list graph whose vertex set is the
//     integer range [0, n), with non-negative float64 edge weights.
//   - Arcs are stored per source vertex in insertion order; parallel edges,
//     zero-weight edges and self-loops are all permitted.
//   - The structure is append-only: AddEdge grows adjacency lists, nothing
//     ever removes or reorders them. Solvers treat the graph as read-only.
//
// Why
//
//   - Shortest-path work over [0, n) wants flat arrays, not hash maps:
//     distances, predecessors and path lengths all index by vertex id.
//   - Insertion order is part of the determinism contract — two runs over
//     the same Digraph must relax arcs in the same order.
//
// Determinism
//
//	OutArcs(u) returns arcs exactly in AddEdge order. Iterating vertices
//	0..n-1 and their arc slices reproduces the construction sequence.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - NewDigraph: O(V) allocation.
//   - AddEdge:    amortized O(1).
//   - OutArcs:    O(1) (slice header; the backing array is shared).
//   - Memory:     O(V + E).
package core
