// Package dijkstra provides shortest paths over a core.Graph road network.
//
// Overview:
//
//   - ShortestPath(g, from, to) returns the minimum-weight route and its total
//     distance, or Reachable=false when the destination cannot be reached.
//   - Dijkstra(g, Source(id), ...) returns single-source distances (and,
//     with WithReturnPath, the predecessor map) for every reachable vertex.
//   - The search follows each vertex's literal adjacency list, so a one-way
//     entry (Getafe→Madrid) is usable only in its listed direction.
//
// Key features:
//
//   - Functional options fine-tune behavior without changing the API signature.
//   - Target: early exit once the destination is finalized.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as a closed road.
//
// Determinism:
//
//   - Ties between equal tentative distances are broken by heap order; the
//     reported distance is always minimal, the chosen path among equals is
//     stable for a given graph but not otherwise specified.
//
// Performance and complexity:
//
//   - Time:  O((V + A) log V)
//   - Space: O(V + A)
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, "Madrid", "Getafe")
//	// res.Path: Madrid -> Alcorcón -> Móstoles -> Fuenlabrada -> Getafe
//	// res.Path.Weight: 36
package dijkstra
