// Package dfs defines types and options for the depth-first queries over a
// core.Graph: longest simple path, reachability and connectivity.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/rutas/core"
)

// VertexState represents the visitation state of a vertex during the
// iterative reachability walk.
const (
	White = iota // White: the vertex has not been reached yet.
	Gray         // Gray: the vertex is on the stack, waiting to be expanded.
	Black        // Black: the vertex has been expanded.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any query.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the origin or root vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the destination vertex does not
	// exist in the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")
)

// Option configures optional behavior of the dfs queries.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the dfs queries.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// LongestPath checks it before every expansion, Connected before every pop.
	Ctx context.Context

	// Root selects the start of the connectivity walk.
	// "" means the first declared vertex.
	Root string

	// OnVisit, if non-nil, is invoked when the connectivity walk expands a
	// vertex. Returning an error aborts the walk with that error.
	OnVisit func(id string) error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - Root = "" (first declared vertex)
//   - No visit hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		Root:    "",
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot returns an Option that starts the connectivity walk at id.
func WithRoot(id string) Option {
	return func(o *DFSOptions) {
		o.Root = id
	}
}

// WithOnVisit returns an Option that installs fn as an expansion hook for
// the connectivity walk.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// LongestResult is the outcome of LongestPath.
//
// Found is false when the destination is unreachable; Path is then empty
// and its Weight is 0.
type LongestResult struct {
	Path  core.Path
	Found bool
}
