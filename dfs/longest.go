// Package dfs implements the depth-first queries of the route planner.
//
// LongestPath explores every simple path from origin to destination by
// recursive backtracking and keeps the heaviest one. The search is
// exponential in the worst case and is intended for small road networks;
// WithContext lets callers bound it in time.
//
// Complexity:
//
//   - Time:   O(number of simple paths × V) in the worst case.
//   - Memory: O(V) for the recursion stack and the current path.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// longestWalker holds the mutable backtracking state.
type longestWalker struct {
	graph  *core.Graph     // underlying graph
	opts   DFSOptions      // search options
	target string          // destination vertex
	path   []string        // current partial path, origin first
	onPath map[string]bool // membership of path
	best   core.Path       // heaviest complete path so far
	found  bool            // whether best holds a path
}

// LongestPath returns the maximum-weight simple path from → to.
//
// A complete path replaces the current best only when strictly heavier, so
// among equal weights the first one found in adjacency order wins.
// Unreachable destination: Found=false, empty path, weight 0.
// from == to: the single-vertex path with weight 0, Found=true.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
// ctx.Err() on cancellation.
func LongestPath(g *core.Graph, from, to string, opts ...Option) (LongestResult, error) {
	// 1. Validate input graph
	if g == nil {
		return LongestResult{}, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify endpoints
	if !g.HasVertex(from) {
		return LongestResult{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return LongestResult{}, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, to)
	}

	// 4. Backtrack from the origin
	w := &longestWalker{
		graph:  g,
		opts:   dopts,
		target: to,
		path:   make([]string, 0, g.Order()),
		onPath: make(map[string]bool, g.Order()),
	}
	w.push(from)
	if err := w.explore(from, 0); err != nil {
		return LongestResult{}, err
	}

	return LongestResult{Path: w.best, Found: w.found}, nil
}

// explore extends the current path from id, whose accumulated weight is
// weight, recording complete paths that reach the target.
func (w *longestWalker) explore(id string, weight int64) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Complete path: record and stop extending
	if id == w.target {
		if !w.found || weight > w.best.Weight {
			w.best = core.Path{Vertices: append([]string(nil), w.path...), Weight: weight}
			w.found = true
		}
		return nil
	}

	// 3. Extend with each neighbor not already on the path
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, e := range nbs {
		if w.onPath[e.To] {
			continue
		}
		w.push(e.To)
		if err = w.explore(e.To, weight+e.Weight); err != nil {
			return err
		}
		w.pop()
	}

	return nil
}

// push appends id to the current path.
func (w *longestWalker) push(id string) {
	w.path = append(w.path, id)
	w.onPath[id] = true
}

// pop removes the last vertex of the current path.
func (w *longestWalker) pop() {
	last := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, last)
}
