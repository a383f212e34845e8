// SPDX-License-Identifier: MIT
// Package: rutas/builder
//
// network.go: YAML schema of a road network and its conversion to core.Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// DefaultUnit is the distance unit assumed when a description omits it.
const DefaultUnit = "km"

// Network is the decoded form of a road-network description.
type Network struct {
	// Name is a human-readable label ("Comunidad de Madrid").
	Name string `yaml:"name"`

	// Unit labels distances in reports; defaults to DefaultUnit.
	Unit string `yaml:"unit,omitempty"`

	// Symmetric requests core.WithSymmetryCheck when building the graph.
	Symmetric bool `yaml:"symmetric,omitempty"`

	// Localities in declaration order.
	Localities []Locality `yaml:"localities"`
}

// Locality is one vertex with its ordered roads.
type Locality struct {
	Name  string `yaml:"name"`
	Roads []Road `yaml:"roads,omitempty"`
}

// Road is one adjacency entry: the neighbor and the distance to it.
type Road struct {
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// DistanceUnit returns n.Unit, or DefaultUnit when it is empty.
func (n *Network) DistanceUnit() string {
	if n.Unit == "" {
		return DefaultUnit
	}

	return n.Unit
}

// Graph builds the immutable graph described by n.
//
// Stage 1 declares every locality (fixing vertex order); stage 2 appends
// roads one way, in order; stage 3 validates via core.Builder.Build.
// Extra opts are applied after the ones derived from n.
//
// Errors: ErrNoLocalities, ErrDuplicateLocality, and core sentinels
// (ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrDanglingNeighbor, ErrAsymmetricEdge), wrapped with locality context.
func (n *Network) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	if len(n.Localities) == 0 {
		return nil, ErrNoLocalities
	}

	gopts := []core.GraphOption{core.WithName(n.Name)}
	if n.Symmetric {
		gopts = append(gopts, core.WithSymmetryCheck())
	}
	gopts = append(gopts, opts...)
	b := core.NewBuilder(gopts...)

	// 1) Declare vertices.
	seen := make(map[string]struct{}, len(n.Localities))
	for i, loc := range n.Localities {
		if _, dup := seen[loc.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocality, loc.Name)
		}
		seen[loc.Name] = struct{}{}
		if err := b.AddVertex(loc.Name); err != nil {
			return nil, fmt.Errorf("builder: locality #%d: %w", i+1, err)
		}
	}

	// 2) Roads, one way each.
	for _, loc := range n.Localities {
		for _, r := range loc.Roads {
			if err := b.AddArc(loc.Name, r.To, r.Distance); err != nil {
				return nil, fmt.Errorf("builder: locality %q: %w", loc.Name, err)
			}
		}
	}

	// 3) Validate and freeze.
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("builder: network %q: %w", n.Name, err)
	}

	return g, nil
}
