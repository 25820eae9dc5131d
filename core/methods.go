// Package core: Graph construction and query methods.
//
// This file provides the mutation and aggregate-query surface of Graph:
// idempotent vertex insertion, directed edge append, and the edge-count and
// total-weight queries whose halving semantics depend on directedness.

package core

import "sort"

// AddVertex inserts a vertex with the given id if absent and returns it.
// Idempotent: calling it again for an existing id returns the same Vertex.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v // no-op for existing vertex
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v

	return v
}

// AddEdge appends a single directed edge from→to with the given weight,
// creating either endpoint if absent. It never adds the reverse edge; for
// undirected graphs reciprocation happens once at construction time via
// Reciprocate. Parallel edges accumulate.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) {
	// Ensure both endpoints exist before touching edge slices.
	src := g.AddVertex(from)
	g.AddVertex(to)

	src.Edges = append(src.Edges, Edge{To: to, Weight: weight})
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Directed reports whether the Graph was constructed as directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// OutEdges returns a copy of the outgoing edges of the given vertex, in
// insertion order. Returns ErrVertexNotFound for an unknown id.
// Complexity: O(deg(v)).
func (g *Graph) OutEdges(id int64) ([]Edge, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(v.Edges))
	copy(out, v.Edges)

	return out, nil
}

// OutDegree returns the number of outgoing edge instances of the given
// vertex (parallel edges counted individually).
// Complexity: O(1).
func (g *Graph) OutDegree(id int64) (int, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(v.Edges), nil
}

// EdgeCount returns the total number of edges: the sum of out-degrees over
// all vertices, halved when the Graph is undirected. The halved figure
// assumes the reciprocal-edge invariant holds; after ad hoc asymmetric
// mutation of an undirected store it is stale.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, v := range g.vertices {
		total += len(v.Edges)
	}
	if !g.directed {
		total /= 2
	}

	return total
}

// TotalWeight returns the sum of all edge weights, halved when the Graph is
// undirected under the same invariant assumption as EdgeCount.
// Complexity: O(V + E).
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, v := range g.vertices {
		for _, e := range v.Edges {
			total += e.Weight
		}
	}
	if !g.directed {
		total /= 2
	}

	return total
}
