// Package bfs enumerates alternative routes: every simple (cycle-free) path
// between two localities of a core.Graph.
//
// What
//
//   - SimplePaths(g, from, to) returns []core.Path, each with its total weight.
//   - Paths appear in breadth-first discovery order: fewer hops first, ties
//     broken by the declaration order of each adjacency list.
//   - A path that reaches the destination is emitted and never extended, so
//     the destination only ever appears as the last vertex.
//   - Arcs are followed as listed; a one-way entry is never reversed.
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, no result limit.
//   - WithContext(ctx):   cancel a long enumeration.
//   - WithMaxDepth(d):    drop partial paths longer than d hops (d>0).
//   - WithMaxPaths(n):    stop after n emitted paths (n>0).
//   - WithOnPath(fn):     hook per emitted path; returning error aborts.
//
// Complexity
//
//	The number of simple paths is exponential in the worst case. Each queue
//	entry holds its own copy of the partial path, so memory is proportional
//	to the sum of all partial path lengths alive in the queue.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the origin does not exist.
//   - ErrTargetVertexNotFound  if the destination does not exist.
//   - ErrOptionViolation       if an Option is invalid (negative depth/limit).
//   - ErrNeighbors             if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnPath.
package bfs
