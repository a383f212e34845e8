// Package report runs the five route queries for an origin/destination pair
// and renders their results as labeled text sections.
package report

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/rutas/core"
	"github.com/katalvlaran/rutas/dfs"
	"github.com/katalvlaran/rutas/dijkstra"
	"github.com/katalvlaran/rutas/proximity"
)

// ErrGraphNil is returned by Build for a nil graph.
var ErrGraphNil = errors.New("report: graph is nil")

// Report gathers the results of every query. Fields are filled by Build
// and never modified afterwards.
type Report struct {
	Origin      string
	Destination string
	Unit        string // distance unit label, e.g. "km"

	Shortest     dijkstra.Result
	Alternatives []core.Path
	Longest      dfs.LongestResult

	Threshold int64    // short-road bound used for ShortEdge
	ShortEdge []string // localities whose roads are all below Threshold

	Connected bool
	Root      string   // connectivity root (first declared locality)
	Unreached []string // localities not reachable from Root; empty when Connected
}

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Threshold is passed to proximity.WithThreshold.
	Threshold int64

	// Unit labels every distance in the rendered report.
	Unit string

	// MaxPaths bounds the number of alternative routes; 0 means unlimited.
	MaxPaths int

	// Logger receives per-query timings at debug level.
	Logger *slog.Logger
}

// DefaultOptions returns the reference behavior: threshold 15, unit "km",
// every alternative route, and slog.Default().
func DefaultOptions() Options {
	return Options{
		Threshold: proximity.DefaultThreshold,
		Unit:      "km",
		MaxPaths:  0,
		Logger:    slog.Default(),
	}
}

// WithThreshold sets the short-road bound.
func WithThreshold(t int64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithUnit sets the distance unit label; "" keeps the default.
func WithUnit(unit string) Option {
	return func(o *Options) {
		if unit != "" {
			o.Unit = unit
		}
	}
}

// WithMaxPaths bounds the number of alternative routes.
func WithMaxPaths(n int) Option {
	return func(o *Options) { o.MaxPaths = n }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
