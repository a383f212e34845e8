// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and GraphOption declarations plus the core sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-positive arc weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second arc for the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDanglingNeighbor indicates an arc whose target was never declared as a vertex.
	ErrDanglingNeighbor = errors.New("core: neighbor is not a vertex")

	// ErrAsymmetricEdge indicates an arc u→v without its mirror v→u of equal weight.
	ErrAsymmetricEdge = errors.New("core: edge is not mirrored")

	// ErrBuilderConsumed indicates a Builder was used after Build.
	ErrBuilderConsumed = errors.New("core: builder already built")

	// ErrNotAPath indicates a vertex sequence that does not follow existing arcs.
	ErrNotAPath = errors.New("core: vertices do not form a path")
)

// Edge is one entry of a vertex's adjacency list: an arc From→To with a
// positive Weight.
type Edge struct {
	// From is the vertex owning this adjacency entry.
	From string

	// To is the neighbor vertex.
	To string

	// Weight is the arc cost (km in the reference network).
	Weight int64
}

// GraphOption configures Builder validation.
type GraphOption func(*graphConfig)

// graphConfig holds the resolved GraphOption flags.
type graphConfig struct {
	symmetric bool // require every arc to be mirrored with equal weight
	name      string
}

// WithSymmetryCheck makes Build reject arcs that lack a mirrored arc of equal
// weight (ErrAsymmetricEdge).
func WithSymmetryCheck() GraphOption {
	return func(c *graphConfig) { c.symmetric = true }
}

// WithName attaches a human-readable network name to the built Graph.
func WithName(name string) GraphOption {
	return func(c *graphConfig) { c.name = name }
}

// Graph is an immutable weighted adjacency structure.
//
// order keeps vertices in declaration order; adjacency keeps each vertex's
// arcs in declaration order. Nothing mutates either map after Build.
type Graph struct {
	name      string
	symmetric bool // built under WithSymmetryCheck

	order     []string          // vertex IDs, declaration order
	adjacency map[string][]Edge // vertex ID → outgoing arcs, declaration order
	arcs      int               // total number of adjacency entries
}
