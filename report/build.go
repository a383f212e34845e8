package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rutas/bfs"
	"github.com/katalvlaran/rutas/core"
	"github.com/katalvlaran/rutas/dfs"
	"github.com/katalvlaran/rutas/dijkstra"
	"github.com/katalvlaran/rutas/proximity"
)

// Build runs the five queries concurrently over the read-only graph g.
// Each query writes a distinct field of the Report, so no locking is needed.
// The first failing query cancels the others and its error is returned.
func Build(ctx context.Context, g *core.Graph, origin, destination string, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Report{
		Origin:      origin,
		Destination: destination,
		Unit:        o.Unit,
		Threshold:   o.Threshold,
	}
	if g.Order() > 0 {
		r.Root = g.Vertices()[0]
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(o.timed("shortest", func() (err error) {
		r.Shortest, err = dijkstra.ShortestPath(g, origin, destination)
		return err
	}))
	eg.Go(o.timed("alternatives", func() (err error) {
		r.Alternatives, err = bfs.SimplePaths(g, origin, destination,
			bfs.WithContext(egCtx), bfs.WithMaxPaths(o.MaxPaths))
		return err
	}))
	eg.Go(o.timed("longest", func() (err error) {
		r.Longest, err = dfs.LongestPath(g, origin, destination, dfs.WithContext(egCtx))
		return err
	}))
	eg.Go(o.timed("short-edge", func() (err error) {
		r.ShortEdge, err = proximity.ShortEdgeVertices(g, proximity.WithThreshold(o.Threshold))
		return err
	}))
	eg.Go(o.timed("connectivity", func() error {
		ok, err := dfs.Connected(g, dfs.WithContext(egCtx))
		if err != nil || ok {
			r.Connected = ok
			return err
		}
		r.Unreached, err = dfs.Unreached(g, r.Root)
		return err
	}))

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	return r, nil
}

// timed wraps fn with a debug log line carrying the query name and duration.
func (o Options) timed(name string, fn func() error) func() error {
	return func() error {
		start := time.Now()
		err := fn()
		o.Logger.Debug("query finished",
			"query", name,
			"duration", time.Since(start),
			"ok", err == nil,
		)

		return err
	}
}
