// Package bmssp defines the configuration surface and shared constants of
// the block-batched SSSP solver.
package bmssp

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrSourceRange is returned when the source vertex lies outside [0, n).
	ErrSourceRange = errors.New("bmssp: source vertex out of range")

	// ErrVertexRange is returned by readouts for vertices outside [0, n).
	ErrVertexRange = errors.New("bmssp: vertex out of range")

	// ErrNotSolved is returned by readouts invoked before Solve.
	ErrNotSolved = errors.New("bmssp: Solve has not been called")

	// ErrNoPath is returned by PathTo for vertices unreachable from the source.
	ErrNoPath = errors.New("bmssp: no path to vertex")

	// ErrBadBlockSize signals a WithBlockSize argument below the structural minimum.
	ErrBadBlockSize = errors.New("bmssp: block size must be at least 16")
)

const (
	// eps is the global tolerance for distance comparisons: strict
	// improvement requires cand+eps < old, equality means |a−b| ≤ eps.
	eps = 1e-12

	// pullStaleEps is the wider tolerance used only when pull() decides
	// whether a buffered record still matches the authoritative value.
	// It absorbs rounding accumulated between insert and extraction and is
	// intentionally looser than eps.
	pullStaleEps = 1e-9

	// none marks an absent predecessor.
	none = -1

	// minBlockSize is the smallest admissible blockD block.
	minBlockSize = 16

	// minMergeThreshold bounds how small the D1 fold-back trigger may get.
	minMergeThreshold = 8

	// sourcePathLen is the path length assigned to the source vertex:
	// the chosen predecessor chain contains exactly one vertex.
	sourcePathLen = 1
)

// inf is the distance of a vertex not yet reached.
var inf = math.Inf(1)

// Options tunes non-semantic knobs of the solver. The zero value defers
// every choice to the derived defaults.
type Options struct {
	// BlockSize overrides the blockD block size hint. 0 means derive it
	// from the graph size as max(32, ⌊(ln n)^(2/3)⌋). Values below 16 are
	// rejected by WithBlockSize.
	BlockSize int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the zero configuration: all knobs derived.
func DefaultOptions() Options {
	return Options{BlockSize: 0}
}

// WithBlockSize fixes the blockD block size instead of deriving it from
// ln n. The batched structure needs a minimum width to amortize rebuilds,
// so sizes below 16 panic with ErrBadBlockSize (programmer error, caught
// at configuration time like the other option constructors in lvlpath).
func WithBlockSize(bs int) Option {
	return func(o *Options) {
		if bs < minBlockSize {
			panic(ErrBadBlockSize.Error())
		}
		o.BlockSize = bs
	}
}
