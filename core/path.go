// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path value type shared by dijkstra, bfs and dfs results.

package core

import (
	"fmt"
	"strings"
)

// PathSeparator joins vertex IDs when a Path is rendered.
const PathSeparator = " -> "

// Path is an ordered vertex sequence with the sum of its arc weights.
// The zero Path (no vertices) stands for "no path".
type Path struct {
	Vertices []string
	Weight   int64
}

// Empty reports whether p has no vertices.
func (p Path) Empty() bool { return len(p.Vertices) == 0 }

// Hops returns the number of arcs traversed (0 for empty or single-vertex paths).
func (p Path) Hops() int {
	if len(p.Vertices) == 0 {
		return 0
	}

	return len(p.Vertices) - 1
}

// Contains reports whether id occurs in p.
func (p Path) Contains(id string) bool {
	for _, v := range p.Vertices {
		if v == id {
			return true
		}
	}

	return false
}

// Simple reports whether no vertex occurs twice in p.
func (p Path) Simple() bool {
	seen := make(map[string]struct{}, len(p.Vertices))
	for _, v := range p.Vertices {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

// String renders p as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p.Vertices, PathSeparator)
}

// PathWeight sums the arc weights along vertices, verifying that every
// consecutive pair is an arc of g.
//
// Errors:
//   - ErrVertexNotFound: a vertex is not in g.
//   - ErrNotAPath: some consecutive pair is not an arc.
func PathWeight(g *Graph, vertices []string) (int64, error) {
	var total int64
	for i, v := range vertices {
		if !g.HasVertex(v) {
			return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(vertices[i-1], v)
		if !ok {
			return 0, fmt.Errorf("%w: no arc %s→%s", ErrNotAPath, vertices[i-1], v)
		}
		total += w
	}

	return total, nil
}
