package dfs

import (
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// Connected reports whether every vertex of g is reachable from the root
// (WithRoot, default the first declared vertex) by following adjacency
// lists as written. An empty graph is connected.
//
// The walk uses an explicit stack, so its depth is not bounded by the
// goroutine stack.
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Order() == 0 {
		return true, nil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	root := dopts.Root
	if root == "" {
		root = g.Vertices()[0]
	}

	state, err := walk(g, root, dopts)
	if err != nil {
		return false, err
	}

	return countBlack(state) == g.Order(), nil
}

// Reachable returns the set of vertices reachable from root, root included.
func Reachable(g *core.Graph, root string) (map[string]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	state, err := walk(g, root, DefaultOptions())
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(state))
	for id, s := range state {
		if s == Black {
			out[id] = true
		}
	}

	return out, nil
}

// Unreached lists, in declaration order, the vertices that cannot be
// reached from root. It is empty exactly when Connected(g, WithRoot(root)).
func Unreached(g *core.Graph, root string) ([]string, error) {
	seen, err := Reachable(g, root)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0)
	for _, id := range g.Vertices() {
		if !seen[id] {
			out = append(out, id)
		}
	}

	return out, nil
}

// walk runs the iterative DFS from root and returns each reached vertex's
// final state (always Black); absent vertices are White.
func walk(g *core.Graph, root string, opts DFSOptions) (map[string]int, error) {
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, root)
	}

	state := make(map[string]int, g.Order())
	stack := []string{root}
	state[root] = Gray

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-opts.Ctx.Done():
			return nil, opts.Ctx.Err()
		default:
		}

		// 2. Pop and expand
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		state[id] = Black
		if opts.OnVisit != nil {
			if err := opts.OnVisit(id); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
			}
		}

		// 3. Push unseen neighbors in reverse so the first listed is expanded first
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i].To
			if state[nid] == White {
				state[nid] = Gray
				stack = append(stack, nid)
			}
		}
	}

	return state, nil
}

// countBlack returns the number of expanded vertices.
func countBlack(state map[string]int) int {
	n := 0
	for _, s := range state {
		if s == Black {
			n++
		}
	}

	return n
}
