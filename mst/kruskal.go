// Package mst: Kruskal's algorithm.

package mst

import (
	"sort"

	"github.com/graphspan/graphspan/core"
)

// Kruskal computes a minimum spanning tree of an undirected, reciprocated
// graph using a disjoint-set union with path compression and union by rank.
//
// Each undirected edge is considered once (the u < v orientation of its
// reciprocal pair); parallel edges contribute one candidate per instance.
// Self-loops are skipped entirely.
//
// Error conditions mirror Prim: ErrNilGraph, ErrDirectedGraph,
// ErrEmptyGraph, ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]TreeEdge, float64, error) {
	// 1. Validate the store.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if len(vertices) == 1 {
		// Single-vertex tree: no edges, zero weight.
		return []TreeEdge{}, 0, nil
	}

	// 2. Collect each undirected edge once, in deterministic order: iterate
	//    sorted vertices and keep only the u < To orientation, dropping
	//    self-loops. Reciprocation guarantees the other orientation exists.
	var candidates []TreeEdge
	for _, u := range vertices {
		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range edges {
			if u < e.To {
				candidates = append(candidates, TreeEdge{U: u, V: e.To, Weight: e.Weight})
			}
		}
	}

	// 3. Stable sort by ascending weight; stability keeps equal-weight
	//    tie-breaking deterministic over the insertion order above.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 4. Disjoint-set union: parent[v] = v initially, union by rank.
	parent := make(map[int64]int64, len(vertices))
	rank := make(map[int64]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path compression.
	find := func(u int64) int64 {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int64) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 5. Sweep candidates, joining components until |V|-1 edges are chosen.
	var (
		tree  []TreeEdge
		total float64
	)
	for _, e := range candidates {
		if find(e.U) == find(e.V) {
			continue
		}
		union(e.U, e.V)
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	// 6. Fewer than |V|-1 joins means the graph is disconnected.
	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
