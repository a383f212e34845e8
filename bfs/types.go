// Package bfs provides tunable options and error definitions
// for breadth-first enumeration of simple paths over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// Sentinel errors for path enumeration.
var (
	// ErrStartVertexNotFound is returned when the origin ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned when the destination ID is absent.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures enumeration via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when SimplePaths is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize enumeration.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnPath is called for every path reaching the target, in emission
	// order. If it returns an error, enumeration aborts and propagates it.
	OnPath func(p core.Path) error

	// MaxDepth, if > 0, drops partial paths longer than this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxPaths, if > 0, stops after this many paths have been emitted.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no result limit (MaxPaths == 0)
//   - no-op OnPath hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnPath:   func(core.Path) error { return nil },
		MaxDepth: 0,
		MaxPaths: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath registers a callback to run on every emitted path; returning
// an error from this callback stops the enumeration.
func WithOnPath(fn func(p core.Path) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithMaxDepth bounds the number of hops of any emitted path.
//
//	d > 0: limit to d hops
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxPaths stops the enumeration once n paths have been emitted.
// n == 0 means unlimited; n < 0 is recorded as ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
