package locality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

var (
	// ErrGraphNil is returned by NewIndex for a nil graph.
	ErrGraphNil = errors.New("locality: graph is nil")

	// ErrAmbiguousName is returned when two locality names normalize to the
	// same key and input could not tell them apart.
	ErrAmbiguousName = errors.New("locality: names collide after normalization")
)

// Index maps normalized names to canonical vertex IDs. It is immutable and
// safe for concurrent use.
type Index struct {
	byKey map[string]string
	names []string
}

// NewIndex indexes every vertex of g.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	names := g.Vertices()
	idx := &Index{byKey: make(map[string]string, len(names)), names: names}
	for _, name := range names {
		key := Normalize(name)
		if prev, dup := idx.byKey[key]; dup {
			return nil, fmt.Errorf("%w: %q and %q", ErrAmbiguousName, prev, name)
		}
		idx.byKey[key] = name
	}

	return idx, nil
}

// Lookup returns the canonical name matching input, if any.
func (idx *Index) Lookup(input string) (string, bool) {
	name, ok := idx.byKey[Normalize(input)]

	return name, ok
}

// Names returns the canonical names in declaration order.
func (idx *Index) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)

	return out
}

// Len returns the number of indexed names.
func (idx *Index) Len() int { return len(idx.names) }
