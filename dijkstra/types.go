// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on road networks.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with positive arc weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes arcs in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + A) log V)   where V = |vertices|, A = |arcs|
//	   • Each vertex is finalized at most once (V extracts).
//	   • Each arc relaxation may push into the priority queue (up to A pushes).
//	– Space: O(V + A)
//	   • O(V) to store distance and predecessor maps.
//	   • O(A) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:           optional destination; the search stops once it is finalized.
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: arcs with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrTargetNotFound  if a target is set and does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g, "Madrid", "Getafe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable {
//	    fmt.Println(res.Path, res.Path.Weight)
//	}
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/rutas/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the specified target vertex does not exist
	// in the provided graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every arc as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – optional destination; "" explores every reachable vertex.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat arcs with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	Target           string // Early-exit destination ("" = none)
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which arcs are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Target sets a destination vertex. Once the target is popped from the
// queue its distance is final and the search stops.
func Target(str string) Option {
	return func(o *Options) {
		o.Target = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which arcs are
// considered non-traversable (a closed road).
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - Target:           "" (explore everything reachable).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no arcs treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Target:           "",
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the outcome of ShortestPath.
//
// Reachable is false when no path exists; Path is then the zero Path and
// must not be read as a distance. There is no numeric infinity sentinel.
type Result struct {
	Path      core.Path
	Reachable bool
}
