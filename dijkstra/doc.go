// Package dijkstra implements the classic binary-heap shortest-path
// algorithm over a core.Digraph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing arcs and updating distances accordingly.
//
// Inside lvlpath it is the reference everything else is measured against:
// the bmssp solver must agree with it within 1e-6 on every finite entry,
// and the bench harness races the two on the same random graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each arc relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor slices.
//   - O(E) worst-case heap occupancy under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Weights are validated at AddEdge time by core, so there is no
//     negative-weight pre-scan here; a paranoid caller can still rely on
//     the core sentinel ErrBadWeight at construction.
//   - We stop exploring once the minimum distance in the heap exceeds
//     MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries via the visited slice.
package dijkstra
