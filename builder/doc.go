// Package builder turns road-network descriptions into immutable core.Graph
// values. It lives alongside core so that every network, the embedded
// reference one included, goes through the same validation path.
//
// The package offers the following key components:
//
//   - Network description (YAML, gopkg.in/yaml.v3):
//     – Network:   name, distance unit, symmetry flag and ordered localities.
//     – Locality:  a name plus its ordered list of roads.
//     – Road:      neighbor name and a positive integer distance.
//   - Entry points:
//     – Parse / Load / LoadFile: decode a description (unknown keys rejected).
//     – Network.Graph:           declare all localities, then all roads, then Build.
//     – Reference:               the embedded ten-locality Comunidad de Madrid network.
//
// Guarantees:
//
//   - Order preservation: locality order and per-locality road order in the
//     YAML become Vertices() and Neighbors() order in the graph.
//   - Literal adjacency: roads are added one way only (core.Builder.AddArc);
//     `symmetric: true` turns on core.WithSymmetryCheck.
//   - Structured errors: decoding failures wrap ErrInvalidNetwork; graph
//     violations surface the core sentinels (errors.Is works on both).
//
// Example:
//
//	g, err := builder.Reference()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Order()) // 10
package builder
