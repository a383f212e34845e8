// Package core provides the immutable road-network Graph used by every query
// package in rutas (dijkstra, bfs, dfs, proximity, locality).
//
// The Graph G = (V,A) maps each locality name to an ordered list of weighted
// arcs. It is assembled once with a Builder and never mutated afterwards:
//
//   - Declaration order is preserved: Vertices() and Neighbors(id) return
//     vertices and arcs exactly in the order they were added.
//   - Undirected in intent, literal in practice: AddEdge mirrors an arc,
//     AddArc does not. Algorithms follow the per-vertex lists as written and
//     never repair a missing mirror (see Asymmetries).
//   - Weights are positive integers (kilometres in the reference network).
//
// Builder validation (Build):
//
//	– every neighbor is itself a vertex          → ErrDanglingNeighbor
//	– weights are strictly positive              → ErrBadWeight
//	– no self-loops                              → ErrLoopNotAllowed
//	– at most one arc per ordered pair (u,v)     → ErrMultiEdgeNotAllowed
//	– every arc mirrored (WithSymmetryCheck only) → ErrAsymmetricEdge
//
// Concurrency:
//
//	A built *Graph is read-only. All methods are safe for concurrent use
//	without locks; returned slices are copies owned by the caller.
//
// Example:
//
//	b := core.NewBuilder()
//	_ = b.AddEdge("Madrid", "Alcorcón", 13)
//	_ = b.AddEdge("Alcorcón", "Móstoles", 5)
//	g, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	nbs, _ := g.Neighbors("Alcorcón") // [Alcorcón→Madrid 13, Alcorcón→Móstoles 5]
package core
