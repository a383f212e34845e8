// Package dfs provides the depth-first queries of the route planner.
//
// Queries:
//
//   - LongestPath(g, from, to): heaviest simple path by exhaustive backtracking.
//   - Connected(g): whether every vertex is reachable from a root.
//   - Reachable(g, root) / Unreached(g, root): the reached set and its complement.
//
// Direction:
//
//	Every query follows adjacency lists exactly as declared. On a network whose
//	lists are not mirrored, Connected answers "is everything reachable from the
//	root", which may differ between roots.
//
// Options:
//
//   - WithContext(ctx)   cancels LongestPath or the connectivity walk.
//   - WithRoot(id)       chooses the connectivity root (default: first vertex).
//   - WithOnVisit(fn)    hook per expanded vertex of the connectivity walk.
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if the origin or root is missing.
//   - ErrTargetVertexNotFound  if the destination is missing.
//   - context.Canceled         if ctx is done.
//   - any error returned by OnVisit.
package dfs
