// Package rutas is a route planner for small road networks of localities.
//
// What is in the box?
//
//	core/      : immutable weighted graph (Builder → *Graph), Edge and Path values
//	builder/   : YAML network descriptions and the embedded Comunidad de Madrid network
//	dijkstra/  : shortest route with early exit at the destination
//	bfs/       : every cycle-free alternative route, fewest hops first
//	dfs/       : longest cycle-free route, reachability and connectivity
//	proximity/ : localities whose roads are all shorter than a threshold
//	locality/  : accent- and case-insensitive name matching and re-prompting
//	report/    : runs the five queries concurrently and renders the sections
//	cmd/rutas  : the interactive command
//
// Quick start:
//
//	g, _ := builder.Reference()
//	res, _ := dijkstra.ShortestPath(g, "Madrid", "Getafe")
//	fmt.Println(res.Path, res.Path.Weight) // Madrid -> Alcorcón -> Móstoles -> Fuenlabrada -> Getafe 36
//
// Every query follows adjacency lists exactly as declared. The reference
// network lists a few roads on one side only (Getafe→Madrid, for instance);
// those are one-way for every algorithm. Build with core.WithSymmetryCheck()
// to reject such networks instead.
package rutas
