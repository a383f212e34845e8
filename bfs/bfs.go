// Package bfs enumerates every cycle-free path between two vertices of a
// core.Graph in breadth-first discovery order.
//
// Each queue entry carries the whole partial path. A neighbor is appended
// only if it does not already occur in that path, and a path that reaches
// the destination is emitted and never extended.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the loop early once MaxPaths is reached.
var errStop = errors.New("bfs: stop")

// queueItem is one partial path under expansion.
type queueItem struct {
	vertices []string
	weight   int64
}

// last returns the vertex at the frontier of the partial path.
func (q queueItem) last() string { return q.vertices[len(q.vertices)-1] }

// walker encapsulates mutable enumeration state.
type walker struct {
	graph  *core.Graph
	opts   BFSOptions
	ctx    context.Context
	target string
	queue  []queueItem
	paths  []core.Path
}

// SimplePaths returns every simple path from → to, in the order a
// breadth-first expansion reaches the destination (fewest hops first,
// ties in adjacency order). origin == destination yields [[origin]].
// No path yields an empty, non-nil slice.
//
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrTargetVertexNotFound for
// invalid input, ErrOptionViolation for bad options, ErrNeighbors for graph
// failures, ctx.Err() on cancellation, or any error returned by OnPath.
//
// The number of simple paths can grow exponentially with the graph; use
// WithMaxDepth or WithMaxPaths on large networks.
func SimplePaths(g *core.Graph, from, to string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, to)
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		target: to,
		queue:  make([]queueItem, 0, g.Order()),
		paths:  make([]core.Path, 0),
	}

	// Seed queue with the one-vertex path
	w.queue = append(w.queue, queueItem{vertices: []string{from}})
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return w.paths, nil
}

// loop processes the queue until empty, error, limit or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.last() == w.target {
			if err := w.emit(item); err != nil {
				return err
			}
			continue
		}
		if err := w.extend(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// emit records a complete path and calls OnPath.
func (w *walker) emit(item queueItem) error {
	p := core.Path{Vertices: item.vertices, Weight: item.weight}
	w.paths = append(w.paths, p)
	if err := w.opts.OnPath(p); err != nil {
		return fmt.Errorf("bfs: OnPath error at %q: %w", p.String(), err)
	}
	if w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths {
		return errStop
	}

	return nil
}

// extend enqueues item+[nbr] for each neighbor not yet on the path,
// honoring MaxDepth. Returns ErrNeighbors on lookup failure.
func (w *walker) extend(item queueItem) error {
	if w.opts.MaxDepth > 0 && len(item.vertices) > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.last())
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.last(), err)
	}
	for _, e := range edges {
		if onPath(item.vertices, e.To) {
			continue
		}
		// fresh backing array per branch; siblings must not share it
		next := make([]string, len(item.vertices)+1)
		copy(next, item.vertices)
		next[len(item.vertices)] = e.To
		w.queue = append(w.queue, queueItem{vertices: next, weight: item.weight + e.Weight})
	}

	return nil
}

// onPath reports whether id already occurs in vertices.
func onPath(vertices []string, id string) bool {
	for _, v := range vertices {
		if v == id {
			return true
		}
	}

	return false
}
