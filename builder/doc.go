// SPDX-License-Identifier: MIT

// Package builder generates reproducible random digraphs for lvlpath tests
// and benchmarks.
//
// Canonical model:
//   - RandomDigraph(n, m): sample exactly m distinct directed edges over
//     [0, n), rejecting self-loops and duplicate (u, v) pairs, with weights
//     drawn uniformly from {1, …, ⌊MaxWeight⌋}.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n·(n−1) (else ErrTooManyEdges).
//   - MaxWeight ≥ 1 (else ErrBadWeightRange).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - A fixed seed yields the identical edge list on every platform: the
//     RNG is a plain seeded math/rand source and the rejection order of
//     candidate pairs is part of the contract. Seed 0 maps to a stable
//     default so the zero configuration is still reproducible.
package builder
