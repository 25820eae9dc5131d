// Package core defines the central Graph, Vertex, and Edge types and the
// mutation primitives every engine in graphspan builds on: idempotent vertex
// insertion, multi-edge append, deep copy with optional reversal, graph
// merging, and vertex contraction.
//
// A Graph is a plain in-memory store: a mapping from integer vertex id to
// Vertex, plus a directedness flag fixed at construction. It holds no locks
// and performs no I/O; callers that share one mutable Graph across
// goroutines must synchronize externally.
//
// Parallel edges are first-class. Contraction (MergeVertices) relies on them:
// merging two vertices may legitimately produce several edges between the
// same pair, and each edge instance keeps its own weight.
//
// Errors:
//
//	ErrVertexNotFound - an operation referenced a vertex id absent from the store.
//	ErrSelfMerge      - MergeVertices was asked to merge a vertex with itself.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfMerge indicates MergeVertices was called with identical endpoints.
	ErrSelfMerge = errors.New("core: cannot merge vertex with itself")
)

// DefaultWeight is the edge weight assumed when input omits a weight column.
const DefaultWeight = 1.0

// Edge is an ownership-free reference to a destination vertex plus a weight.
//
// An Edge carries no identity of its own: for contraction and removal
// purposes two edges are "the same connection" exactly when their To fields
// match, regardless of weight.
type Edge struct {
	// To is the id of the destination vertex, which must exist in the same Graph.
	To int64

	// Weight is the cost of the edge. DefaultWeight when the input omitted it.
	Weight float64
}

// Vertex is an identity plus an ordered collection of outgoing edges.
//
// Edge order is insertion order. It matters only for deterministic
// enumeration in tests, never for correctness. Algorithm scratch state
// (visited flags, distances, keys) lives in per-run maps inside each engine,
// not on the Vertex.
type Vertex struct {
	// ID is the unique identifier of this Vertex within its Graph.
	ID int64

	// Edges are the outgoing edges, in insertion order. Parallel edges allowed.
	Edges []Edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the Graph (true = directed).
// Directedness is fixed at construction: it determines edge-count and
// total-weight halving and whether graphio reciprocates input edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph store.
//
// It exclusively owns its Vertex instances; edges reference vertices of the
// same Graph by id, so a deep copy (Clone) never shares structure with its
// source. The undirected reciprocal-edge invariant - for every u→v there is
// a v→u of equal weight - is established once at construction time (see
// Reciprocate) and is NOT maintained by later mutation: after any
// MergeVertices call, treat the store as a directed multigraph regardless
// of the directed flag, except that contraction itself preserves symmetry
// when the input was symmetric.
type Graph struct {
	directed bool
	vertices map[int64]*Vertex
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int64]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
