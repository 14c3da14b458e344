// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by the generators.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: need at least one vertex")

	// ErrTooManyEdges indicates m exceeds the n·(n−1) simple-digraph capacity.
	ErrTooManyEdges = errors.New("builder: edge count exceeds simple digraph capacity")

	// ErrBadWeightRange indicates MaxWeight < 1.
	ErrBadWeightRange = errors.New("builder: MaxWeight must be at least 1")
)

// defaultSeed is the fixed seed substituted when callers pass seed 0.
// Arbitrary but stable, so the zero configuration stays reproducible.
const defaultSeed int64 = 1

// defaultMaxWeight matches the benchmark harness default.
const defaultMaxWeight = 100.0

// Options configures random graph generation.
type Options struct {
	// Seed drives the RNG; 0 selects the stable default seed.
	Seed int64

	// MaxWeight bounds edge weights: uniform integers in {1, …, ⌊MaxWeight⌋}.
	MaxWeight float64
}

// Option is a functional option for RandomDigraph.
type Option func(*Options)

// DefaultOptions returns the baseline: default seed, weights in {1, …, 100}.
func DefaultOptions() Options {
	return Options{Seed: 0, MaxWeight: defaultMaxWeight}
}

// WithSeed fixes the RNG seed (0 keeps the stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxWeight sets the upper weight bound (inclusive, truncated to an
// integer when drawing).
func WithMaxWeight(maxW float64) Option {
	return func(o *Options) {
		o.MaxWeight = maxW
	}
}

// RandomDigraph samples a simple random digraph with n vertices and exactly
// m edges: no self-loops, no duplicate (u, v) pairs, weights uniform in
// {1, …, ⌊MaxWeight⌋}. The same (n, m, options) always produces the same
// graph, including the order edges are added in.
func RandomDigraph(n, m int, opts ...Option) (*core.Digraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate parameters early.
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	capacity := int64(n) * int64(n-1)
	if m < 0 || int64(m) > capacity {
		return nil, fmt.Errorf("%w: m=%d, capacity=%d", ErrTooManyEdges, m, capacity)
	}
	if cfg.MaxWeight < 1 {
		return nil, fmt.Errorf("%w: MaxWeight=%g", ErrBadWeightRange, cfg.MaxWeight)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	// 2) Rejection-sample distinct ordered pairs. Density is capped by the
	//    caller's m ≤ n·(n−1), so the loop terminates; for the sparse graphs
	//    benchmarks use, rejections are rare.
	seen := make(map[int64]struct{}, m)
	maxW := int(cfg.MaxWeight)
	for added := 0; added < m; {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		key := int64(u)*int64(n) + int64(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		w := float64(1 + rng.Intn(maxW))
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("builder: AddEdge(%d→%d, w=%g): %w", u, v, w, err)
		}
		added++
	}

	return g, nil
}
