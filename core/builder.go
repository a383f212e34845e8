// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: the only mutation surface. A Builder accumulates vertices and arcs,
// then Build validates them and freezes an immutable *Graph.
// Determinism:
//   - Vertices and arcs keep insertion order; Build never reorders.
//   - Validation reports the first violation in insertion order.

package core

import "fmt"

// Builder accumulates vertices and arcs for a Graph.
// A Builder is not safe for concurrent use and may be built only once.
type Builder struct {
	cfg       graphConfig
	order     []string
	adjacency map[string][]Edge
	arcs      int
	built     bool
}

// NewBuilder returns an empty Builder configured by opts.
// Complexity: O(len(opts)).
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{adjacency: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(&b.cfg)
	}

	return b
}

// AddVertex declares id as a vertex. Re-declaring an existing vertex is a no-op,
// so the first declaration fixes its position in Vertices().
func (b *Builder) AddVertex(id string) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := b.adjacency[id]; ok {
		return nil
	}
	b.order = append(b.order, id)
	b.adjacency[id] = nil

	return nil
}

// AddArc appends the single adjacency entry from→to to from's list.
// from is declared implicitly; to must be declared by the time Build runs.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed,
// ErrBuilderConsumed.
func (b *Builder) AddArc(from, to string, weight int64) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, weight)
	}
	if err := b.AddVertex(from); err != nil {
		return err
	}
	for _, e := range b.adjacency[from] {
		if e.To == to {
			return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
		}
	}
	b.adjacency[from] = append(b.adjacency[from], Edge{From: from, To: to, Weight: weight})
	b.arcs++

	return nil
}

// AddEdge adds the undirected edge u-v as two mirrored arcs u→v and v→u.
func (b *Builder) AddEdge(u, v string, weight int64) error {
	if err := b.AddArc(u, v, weight); err != nil {
		return err
	}

	return b.AddArc(v, u, weight)
}

// Build validates closed adjacency (and symmetry under WithSymmetryCheck) and
// returns the frozen Graph. The Builder cannot be reused afterwards.
//
// Complexity: O(V + A·d) where d is the maximum out-degree (mirror lookups).
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}

	// 1) Closed adjacency: every neighbor must be a declared vertex.
	for _, id := range b.order {
		for _, e := range b.adjacency[id] {
			if _, ok := b.adjacency[e.To]; !ok {
				return nil, fmt.Errorf("%w: %s→%s", ErrDanglingNeighbor, e.From, e.To)
			}
		}
	}

	g := &Graph{
		name:      b.cfg.name,
		symmetric: b.cfg.symmetric,
		order:     b.order,
		adjacency: b.adjacency,
		arcs:      b.arcs,
	}

	// 2) Optional symmetry: each arc u→v needs v→u with the same weight.
	if b.cfg.symmetric {
		if missing := g.Asymmetries(); len(missing) > 0 {
			e := missing[0]
			return nil, fmt.Errorf("%w: %s→%s weight=%d", ErrAsymmetricEdge, e.From, e.To, e.Weight)
		}
	}

	b.built = true
	b.order = nil
	b.adjacency = nil

	return g, nil
}
