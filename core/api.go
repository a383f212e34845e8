// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters over a built Graph.
// Policy:
//   - No algorithms here; every method is O(1) or a straight copy.
//   - Returned slices are fresh copies; callers may modify them freely.

package core

// Name returns the network name given by WithName ("" if none).
func (g *Graph) Name() string { return g.name }

// Symmetric reports whether the graph was built under WithSymmetryCheck,
// i.e. every arc is known to be mirrored.
func (g *Graph) Symmetric() bool { return g.symmetric }

// Order returns the number of vertices |V|.
func (g *Graph) Order() int { return len(g.order) }

// Size returns the number of adjacency entries (arcs). For a mirrored
// network this is twice the number of undirected edges.
func (g *Graph) Size() int { return g.arcs }

// Vertices returns all vertex IDs in declaration order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Edges returns every arc, grouped by owning vertex in declaration order.
// Complexity: O(V + A).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.arcs)
	for _, id := range g.order {
		out = append(out, g.adjacency[id]...)
	}

	return out
}
