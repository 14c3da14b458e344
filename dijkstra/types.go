// Package dijkstra defines configuration options and error values for the
// binary-heap shortest-path baseline.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Digraph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceRange indicates the source vertex lies outside [0, n).
	ErrSourceRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
//
// ReturnPath  – if true, return the predecessor slice; otherwise it is nil.
// MaxDistance – vertices whose distance would exceed this cap are not
// explored. Must be ≥ 0; default +Inf (no cap).
type Options struct {
	ReturnPath  bool
	MaxDistance float64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: no predecessor slice,
// no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at the given distance. Negative or NaN
// values panic with ErrBadMaxDistance (programmer error, caught at
// configuration time).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}
