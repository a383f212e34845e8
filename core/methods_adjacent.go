// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Weight, Degree, Asymmetries).
// Determinism:
//   - Neighbors() and NeighborIDs() follow adjacency declaration order.
//   - Asymmetries() follows vertex order, then adjacency order.

package core

// Neighbors returns the arcs leaving id, in declaration order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d) to copy, d = out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	arcs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(arcs))
	copy(out, arcs)

	return out, nil
}

// NeighborIDs returns the neighbor vertex IDs of id, in declaration order.
// Errors are those of Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	arcs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(arcs))
	for i, e := range arcs {
		out[i] = e.To
	}

	return out, nil
}

// Weight returns the weight of arc from→to and whether it exists.
// Complexity: O(d).
func (g *Graph) Weight(from, to string) (int64, bool) {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// HasEdge reports whether the arc from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Degree returns the number of arcs leaving id.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	arcs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(arcs), nil
}

// Asymmetries returns every arc u→v for which v→u is missing or carries a
// different weight. An empty result means the graph is undirected in fact,
// not only in intent.
//
// Complexity: O(A·d).
func (g *Graph) Asymmetries() []Edge {
	var out []Edge
	for _, id := range g.order {
		for _, e := range g.adjacency[id] {
			if w, ok := g.Weight(e.To, e.From); !ok || w != e.Weight {
				out = append(out, e)
			}
		}
	}

	return out
}
