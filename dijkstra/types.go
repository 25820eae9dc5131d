// Package dijkstra defines configuration options and sentinel errors for
// the single-source shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot reach.
// Every distance map entry starts at Unreachable and keeps it unless the
// vertex is reached.
var Unreachable = math.Inf(1)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Dijkstra's greedy finalization is unsound under negative weights,
	// so the engine fails fast instead of returning garbage distances.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a Dijkstra run.
//
// MaxDistance   – cap on explored distances; vertices farther than this keep
//
//	Unreachable. Default +Inf (no cap).
//
// ReturnParents – when true, also return the predecessor map for path
//
//	reconstruction. Default false (parents map is nil).
type Options struct {
	MaxDistance   float64
	ReturnParents bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance stops exploration beyond the given distance. Vertices
// whose shortest distance exceeds max retain Unreachable.
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithParents enables the predecessor map in the result. parents[v] == u
// means the shortest path found to v arrives via u; the source and
// unreachable vertices have no entry.
func WithParents() Option {
	return func(o *Options) { o.ReturnParents = true }
}

// DefaultOptions returns the baseline configuration: no distance cap, no
// predecessor map.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   math.Inf(1),
		ReturnParents: false,
	}
}
