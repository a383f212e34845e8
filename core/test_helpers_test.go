package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rutas/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
	Weight7 = 7
)

// mustBuild builds b or fails the test.
func mustBuild(t *testing.T, b *core.Builder) *core.Graph {
	t.Helper()
	g, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

// buildTriangle returns the mirrored triangle A-B(1), B-C(2), A-C(5).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.WithSymmetryCheck())
	require.NoError(t, b.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, b.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, b.AddEdge(VertexA, VertexC, Weight5))

	return mustBuild(t, b)
}
