// Package dijkstra implements Dijkstra's shortest-path algorithm on road networks.
//
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing arcs and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - Weights are guaranteed positive by core.Builder, so no negative-weight scan is needed.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance,
//     or once Target has been finalized.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Unreachable vertices are absent from the distance map instead of carrying an infinity value.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/rutas/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every reachable vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance. Unreachable vertices are absent.
//     With Target set, only dist[Target] (and vertices finalized before it) are final.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; the source has no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. g must contain Target when one is set (ErrTargetNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 3) Prepare state and run.
	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight path from → to.
//
// When to is unreachable the result has Reachable=false and an empty Path.
// When from == to the path is the single vertex from with weight 0.
// Extra opts (MaxDistance, InfEdgeThreshold) are honored; Source, Target and
// ReturnPath are fixed by this function.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (Result, error) {
	if to == "" {
		return Result{}, fmt.Errorf("%w: empty ID", ErrTargetNotFound)
	}
	all := make([]Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all, Source(from), Target(to), WithReturnPath())

	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return Result{}, err
	}

	// Relaxation never records a distance above MaxDistance, so presence
	// alone means the target was reached and finalized.
	d, ok := dist[to]
	if !ok {
		return Result{}, nil
	}

	path, err := reconstruct(prev, from, to, g.Order())
	if err != nil {
		return Result{}, err
	}

	return Result{Path: core.Path{Vertices: path, Weight: d}, Reachable: true}, nil
}

// reconstruct walks prev backwards from to until from, then reverses.
// A chain longer than the vertex count, or one that dead-ends before from,
// means prev is inconsistent; that is reported rather than returning a
// partial sequence.
func reconstruct(prev map[string]string, from, to string, order int) ([]string, error) {
	path := []string{to}
	for cur := to; cur != from; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("dijkstra: broken predecessor chain at %q", cur)
		}
		path = append(path, p)
		if len(path) > order {
			return nil, fmt.Errorf("dijkstra: predecessor cycle while reconstructing %q→%q", from, to)
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only.
	options Options           // Configuration options (Source, thresholds, etc.).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
// Every other vertex is implicitly unreached (absent from dist).
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The Target vertex has been finalized.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale heap entry: u was already finalized with a smaller distance.
		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		r.visited[u] = true

		if cfg.Target != "" && u == cfg.Target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and attempts to improve distances to its neighbors.
// Arcs with weight ≥ InfEdgeThreshold are skipped.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first predecessor.
		if cur, seen := r.dist[e.To]; seen && newDist >= cur {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries remain after a decrease and are skipped when popped
// (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
