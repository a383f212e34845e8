// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, basic distances, path reconstruction,
// one-way arcs, MaxDistance, InfEdgeThreshold and the reference network.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rutas/builder"
	"github.com/katalvlaran/rutas/core"
	"github.com/katalvlaran/rutas/dijkstra"
)

// triangle builds the mirrored triangle A-B(1), B-C(2), A-C(5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("B", "C", 2))
	require.NoError(t, b.AddEdge("A", "C", 5))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// reference loads the embedded network or fails the test.
func reference(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Reference()
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(triangle(t))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_TargetNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.Target("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)
}

func TestShortestPath_EmptyTarget(t *testing.T) {
	_, err := dijkstra.ShortestPath(triangle(t), "A", "")
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle_NoPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestDijkstra_Triangle_WithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.EqualValues(t, 3, dist["C"])
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, prev)
}

func TestShortestPath_SameVertex(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), "B", "B")
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []string{"B"}, res.Path.Vertices)
	assert.Zero(t, res.Path.Weight)
}

func TestShortestPath_OneWayArc(t *testing.T) {
	// X→Y exists, Y→X does not.
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex("Y"))
	require.NoError(t, b.AddArc("X", "Y", 4))
	g, err := b.Build()
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, "X", "Y")
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.EqualValues(t, 4, res.Path.Weight)

	res, err = dijkstra.ShortestPath(g, "Y", "X")
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.True(t, res.Path.Empty())
}

func TestDijkstra_UnreachableAbsent(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 2))
	require.NoError(t, b.AddVertex("Lonely"))
	g, err := b.Build()
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	_, ok := dist["Lonely"]
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1}, dist)

	res, err := dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Threshold 2 keeps A-B (1) open and closes B-C (2) and A-C (5).
	res, err := dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.False(t, res.Reachable)

	res, err = dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path.Vertices)
}

// ------------------------------------------------------------------------
// 4. Reference network
// ------------------------------------------------------------------------

func TestShortestPath_Reference(t *testing.T) {
	g := reference(t)
	cases := []struct {
		from, to string
		want     []string
		weight   int64
	}{
		{"Madrid", "Getafe", []string{"Madrid", "Alcorcón", "Móstoles", "Fuenlabrada", "Getafe"}, 36},
		{"Getafe", "Madrid", []string{"Getafe", "Madrid"}, 16},
		{"Boadilla del Monte", "Torrejón de Ardoz", []string{"Boadilla del Monte", "Madrid", "Alcalá de Henares", "Torrejón de Ardoz"}, 65},
		{"Torrejón de Ardoz", "Villanueva de la Cañada", []string{"Torrejón de Ardoz", "Madrid", "Villaviciosa de Odón", "Villanueva de la Cañada"}, 53},
	}
	for _, tc := range cases {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			res, err := dijkstra.ShortestPath(g, tc.from, tc.to)
			require.NoError(t, err)
			require.True(t, res.Reachable)
			assert.Equal(t, tc.want, res.Path.Vertices)
			assert.Equal(t, tc.weight, res.Path.Weight)

			w, err := core.PathWeight(g, res.Path.Vertices)
			require.NoError(t, err)
			assert.Equal(t, tc.weight, w)
		})
	}
}

func TestDijkstra_ReferenceAllReachable(t *testing.T) {
	g := reference(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Madrid"))
	require.NoError(t, err)
	assert.Len(t, dist, g.Order())
	assert.EqualValues(t, 0, dist["Madrid"])
	assert.EqualValues(t, 50, dist["Torrejón de Ardoz"])
}
