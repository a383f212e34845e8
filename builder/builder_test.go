package builder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rutas/builder"
	"github.com/katalvlaran/rutas/core"
)

// referenceOrder is the declaration order of the embedded network.
var referenceOrder = []string{
	"Madrid",
	"Villanueva de la Cañada",
	"Alcorcón",
	"Móstoles",
	"Fuenlabrada",
	"Getafe",
	"Villaviciosa de Odón",
	"Boadilla del Monte",
	"Alcalá de Henares",
	"Torrejón de Ardoz",
}

func TestReference_Shape(t *testing.T) {
	g, err := builder.Reference()
	require.NoError(t, err)

	assert.Equal(t, "Comunidad de Madrid", g.Name())
	assert.Equal(t, referenceOrder, g.Vertices())
	assert.Equal(t, 10, g.Order())
	assert.Equal(t, 21, g.Size())

	ids, err := g.NeighborIDs("Madrid")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alcorcón", "Villaviciosa de Odón", "Alcalá de Henares"}, ids)

	w, ok := g.Weight("Boadilla del Monte", "Madrid")
	assert.True(t, ok)
	assert.EqualValues(t, 15, w)
}

func TestReference_LiteralAsymmetries(t *testing.T) {
	g, err := builder.Reference()
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: "Getafe", To: "Madrid", Weight: 16},
		{From: "Boadilla del Monte", To: "Madrid", Weight: 15},
		{From: "Torrejón de Ardoz", To: "Madrid", Weight: 20},
	}, g.Asymmetries())

	_, err = builder.Reference(core.WithSymmetryCheck())
	assert.ErrorIs(t, err, core.ErrAsymmetricEdge)
}

func TestReferenceNetwork_Unit(t *testing.T) {
	n, err := builder.ReferenceNetwork()
	require.NoError(t, err)
	assert.Equal(t, "km", n.DistanceUnit())
	assert.False(t, n.Symmetric)
	assert.Len(t, n.Localities, 10)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", builder.ErrInvalidNetwork},
		{"malformed", "localities: [", builder.ErrInvalidNetwork},
		{"unknown key", "name: x\nlocalities:\n  - name: A\n    roads:\n      - {to: B, distnace: 3}\n", builder.ErrInvalidNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNetworkGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		net  builder.Network
		want error
	}{
		{"no localities", builder.Network{Name: "empty"}, builder.ErrNoLocalities},
		{
			"duplicate locality",
			builder.Network{Localities: []builder.Locality{{Name: "A"}, {Name: "A"}}},
			builder.ErrDuplicateLocality,
		},
		{
			"empty name",
			builder.Network{Localities: []builder.Locality{{Name: ""}}},
			core.ErrEmptyVertexID,
		},
		{
			"dangling road",
			builder.Network{Localities: []builder.Locality{{Name: "A", Roads: []builder.Road{{To: "B", Distance: 1}}}}},
			core.ErrDanglingNeighbor,
		},
		{
			"zero distance",
			builder.Network{Localities: []builder.Locality{
				{Name: "A", Roads: []builder.Road{{To: "B", Distance: 0}}},
				{Name: "B"},
			}},
			core.ErrBadWeight,
		},
		{
			"asymmetric when symmetric requested",
			builder.Network{Symmetric: true, Localities: []builder.Locality{
				{Name: "A", Roads: []builder.Road{{To: "B", Distance: 2}}},
				{Name: "B"},
			}},
			core.ErrAsymmetricEdge,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.net.Graph()
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	doc := `
name: ring
unit: min
symmetric: true
localities:
  - name: C
    roads: [{to: A, distance: 3}, {to: B, distance: 2}]
  - name: A
    roads: [{to: B, distance: 1}, {to: C, distance: 3}]
  - name: B
    roads: [{to: C, distance: 2}, {to: A, distance: 1}]
`
	n, g, err := builder.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "min", n.DistanceUnit())
	assert.True(t, g.Symmetric())
	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, ids)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")
	doc := "name: pair\nlocalities:\n  - name: X\n    roads: [{to: Y, distance: 4}]\n  - name: Y\n    roads: [{to: X, distance: 4}]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	n, g, err := builder.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pair", n.Name)
	assert.Equal(t, "km", n.DistanceUnit())
	assert.Equal(t, 2, g.Order())

	_, _, err = builder.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
