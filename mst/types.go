// Package mst defines shared types and sentinel errors for minimum
// spanning tree computation over an undirected, reciprocated core.Graph.
//
// Two algorithms are provided: Prim (grow the tree from an arbitrary root
// behind a keyed frontier; returns the tree as a fresh core.Graph) and
// Kruskal (sort all edges and join components with a disjoint-set union;
// returns the chosen edge records). Kruskal doubles as an independent
// cross-check for Prim in tests.
package mst

import "errors"

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates the graph holds no vertices, so no spanning
	// tree exists even trivially.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrDirectedGraph indicates the store was constructed as directed;
	// spanning trees are defined over undirected graphs only.
	ErrDirectedGraph = errors.New("mst: spanning tree requires an undirected graph")

	// ErrDisconnected indicates the graph is not connected: the frontier
	// drained before covering every vertex, so no spanning tree exists.
	// No partial tree is returned.
	ErrDisconnected = errors.New("mst: graph is disconnected, no spanning tree")
)

// TreeEdge is one undirected edge chosen into a spanning tree.
type TreeEdge struct {
	// U and V are the edge endpoints; orientation carries no meaning.
	U, V int64

	// Weight is the weight of the chosen edge instance.
	Weight float64
}
