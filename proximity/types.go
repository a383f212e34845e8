// Package proximity classifies localities by the length of their roads.
package proximity

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the exclusive upper bound, in distance units, under
// which a road counts as short.
const DefaultThreshold int64 = 15

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("proximity: graph is nil")

	// ErrBadThreshold is returned when the threshold is zero or negative.
	ErrBadThreshold = errors.New("proximity: threshold must be positive")
)

// Option configures ShortEdgeVertices.
type Option func(*Options)

// Options holds the classifier parameters.
type Options struct {
	// Threshold: a road is short when its weight is strictly below it.
	Threshold int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Threshold = DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold overrides the short-road bound. t ≤ 0 is recorded and
// surfaced as ErrBadThreshold.
func WithThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadThreshold, t)
			return
		}
		o.Threshold = t
	}
}
