// Package core: the vertex contraction primitive.

package core

// MergeVertices contracts vertex a into vertex b:
//
//  1. Every edge from a to b and from b to a is removed (these would become
//     self-loops after the merge).
//  2. All of a's remaining outgoing edges are appended onto b.
//  3. Every edge in the store whose destination is a is rewritten to point
//     to b instead.
//  4. Vertex a is removed from the store.
//
// Postconditions: b absorbs all of a's connectivity except the direct a↔b
// edges; the vertex count decreases by exactly one; the raw edge count
// decreases by the number of removed a↔b edge instances; no a↔a or b↔b
// self-loop is introduced (assuming the store held none).
//
// On a store whose edge multiset is symmetric (freshly reciprocated
// undirected input), contraction preserves symmetry: removal, transfer, and
// rewrite all act on both directions of each pair. On any other store the
// result must be treated as a directed multigraph.
//
// Returns ErrSelfMerge when aID == bID and ErrVertexNotFound when either
// vertex is absent.
// Complexity: O(V + E).
func (g *Graph) MergeVertices(aID, bID int64) error {
	if aID == bID {
		return ErrSelfMerge
	}
	a, ok := g.vertices[aID]
	if !ok {
		return ErrVertexNotFound
	}
	b, ok := g.vertices[bID]
	if !ok {
		return ErrVertexNotFound
	}

	// 1. Drop all edges directly connecting the pair, in both directions.
	a.Edges = dropEdgesTo(a.Edges, bID)
	b.Edges = dropEdgesTo(b.Edges, aID)

	// 2. Transfer a's remaining edges onto b.
	b.Edges = append(b.Edges, a.Edges...)
	a.Edges = nil

	// 4 (early). Remove a before the rewrite pass so the pass below covers
	// exactly the surviving vertices, including the edges just moved to b.
	delete(g.vertices, aID)

	// 3. Rewrite every surviving edge pointing at a to point at b.
	for _, v := range g.vertices {
		for i := range v.Edges {
			if v.Edges[i].To == aID {
				v.Edges[i].To = bID
			}
		}
	}

	return nil
}

// dropEdgesTo removes, in place, every edge whose destination is dest.
func dropEdgesTo(edges []Edge, dest int64) []Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.To != dest {
			kept = append(kept, e)
		}
	}

	return kept
}
