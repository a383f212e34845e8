package core_test

import (
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// ExampleBuilder demonstrates building a small network and querying it.
func ExampleBuilder() {
	// 1) Declare mirrored roads; vertices are added on first use.
	b := core.NewBuilder(core.WithSymmetryCheck())
	_ = b.AddEdge("Madrid", "Alcorcón", 13)
	_ = b.AddEdge("Alcorcón", "Móstoles", 5)

	// 2) Freeze the graph.
	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query it.
	ids, _ := g.NeighborIDs("Alcorcón")
	fmt.Println(g.Vertices())
	fmt.Println(ids)
	fmt.Println(g.Order(), g.Size())

	// Output:
	// [Madrid Alcorcón Móstoles]
	// [Madrid Móstoles]
	// 3 4
}

// ExampleGraph_Asymmetries shows how one-way adjacency entries are reported.
func ExampleGraph_Asymmetries() {
	b := core.NewBuilder()
	_ = b.AddVertex("Madrid")
	_ = b.AddArc("Getafe", "Madrid", 16)

	g, _ := b.Build()
	for _, e := range g.Asymmetries() {
		fmt.Printf("%s→%s %d\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Getafe→Madrid 16
}

// ExamplePathWeight validates a vertex sequence and sums its weights.
func ExamplePathWeight() {
	b := core.NewBuilder()
	_ = b.AddEdge("A", "B", 2)
	_ = b.AddEdge("B", "C", 3)
	g, _ := b.Build()

	w, err := core.PathWeight(g, []string{"A", "B", "C"})
	fmt.Println(w, err)

	// Output:
	// 5 <nil>
}
