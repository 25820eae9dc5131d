// Package core: copy, merge, and reciprocation primitives.
//
// Clone produces an independent store (fresh Vertex instances, fresh edge
// slices) so that no edge ever crosses store boundaries. MergeFrom and
// Reciprocate together establish the undirected reciprocal-edge invariant
// at construction time, mirroring the reversed copy back into the original.

package core

// Clone returns a deep copy of the Graph, with every edge reversed when
// reverse is true. The copy owns fresh Vertex instances and never shares
// edge slices with the source; the source is not mutated.
// Complexity: O(V + E).
func (g *Graph) Clone(reverse bool) *Graph {
	out := NewGraph(WithDirected(g.directed))

	for id, v := range g.vertices {
		// Vertices with no edges must still survive the copy.
		out.AddVertex(id)
		for _, e := range v.Edges {
			if reverse {
				out.AddEdge(e.To, id, e.Weight)
			} else {
				out.AddEdge(id, e.To, e.Weight)
			}
		}
	}

	return out
}

// MergeFrom appends every vertex and edge of other onto g. Vertices missing
// from g are created; edge slices are copied by value, so later mutation of
// other does not leak into g. Used once at construction time to reciprocate
// undirected input (see Reciprocate).
// Complexity: O(V' + E') over other's size.
func (g *Graph) MergeFrom(other *Graph) {
	// First pass: make sure every vertex of other exists in g, so edge
	// destinations appended below always resolve.
	for id := range other.vertices {
		g.AddVertex(id)
	}
	// Second pass: append other's edges onto the corresponding vertices.
	for id, ov := range other.vertices {
		v := g.vertices[id]
		v.Edges = append(v.Edges, ov.Edges...)
	}
}

// Reciprocate establishes the undirected invariant: for every edge (u→v, w)
// it adds the reciprocal edge (v→u, w) by merging a reversed copy of the
// store into itself. Call exactly once, at construction time, on undirected
// input that was not already reciprocated. Calling it twice doubles every
// edge.
// Complexity: O(V + E).
func (g *Graph) Reciprocate() {
	g.MergeFrom(g.Clone(true))
}
