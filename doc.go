// Package lvlpath is a single-source shortest-path toolkit for directed
// graphs with non-negative real edge weights.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic, pure-Go library built around the block-batched
//	BMSSP solver — the recursive algorithm that sidesteps the comparison-
//	sorting barrier by settling vertices in bounded distance bands instead
//	of popping a global heap one vertex at a time:
//		• core/     — dense directed graph over vertices [0, n)
//		• bmssp/    — the recursive block-batched solver (the main event)
//		• dijkstra/ — classic binary-heap baseline for cross-checking
//		• builder/  — reproducible random digraphs for tests & benchmarks
//
// ✨ Why choose lvlpath?
//
//   - Deterministic by contract – same graph + same source ⇒ bit-identical
//     distances, predecessors and path lengths, every run
//   - Cross-checked – every solve can be validated against dijkstra/ within
//     1e-6; the bench harness does exactly that
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───1
//	     \   \
//	      2───3
//
//	a diamond: two equal-cost routes from 0 to 3, resolved by a total
//	(distance, path-length, id) tie-break.
//
// The cmd/lvlpath binary exposes the same machinery on the command line:
// `lvlpath solve` reads a plain-text graph from stdin, `lvlpath bench`
// races bmssp against dijkstra over random graphs and emits CSV.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
