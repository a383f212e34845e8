package proximity

import (
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// ShortEdgeVertices returns, in declaration order, the vertices whose every
// listed arc weighs strictly less than the threshold. A vertex with no arcs
// qualifies vacuously.
//
// Only a vertex's own adjacency list is inspected: on a network that is not
// mirrored, an arc listed by the neighbor alone does not count.
//
// Complexity: O(V + A).
func ShortEdgeVertices(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]string, 0)
	for _, id := range g.Vertices() {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("proximity: Neighbors(%q): %w", id, err)
		}
		if allShort(edges, o.Threshold) {
			out = append(out, id)
		}
	}

	return out, nil
}

// allShort reports whether every edge weighs less than threshold.
func allShort(edges []core.Edge, threshold int64) bool {
	for _, e := range edges {
		if e.Weight >= threshold {
			return false
		}
	}

	return true
}
