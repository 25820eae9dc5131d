// Package mst: Prim's algorithm.

package mst

import (
	"container/heap"
	"math"

	"github.com/graphspan/graphspan/core"
)

// Prim computes a minimum spanning tree of an undirected, reciprocated
// graph by growing outwards from an arbitrary starting vertex.
//
// The returned tree is a fresh undirected core.Graph containing every
// vertex of g and, for each chosen edge, both reciprocal directions; the
// second return value is the total tree weight. The input graph is never
// mutated: per-vertex keys, the frontier, and parent links all live in
// run-local maps referencing g's vertex ids only.
//
// Each frontier entry is keyed by the cheapest known edge connecting the
// vertex to the tree, and the edge that produced the key is tracked in a
// parent map — the chosen edge is never re-derived by matching weights, so
// computed floating-point weights are safe.
//
// Error conditions:
//
//   - ErrNilGraph      : g is nil.
//   - ErrDirectedGraph : g was constructed as directed.
//   - ErrEmptyGraph    : g has no vertices.
//   - ErrDisconnected  : the frontier drained before spanning every vertex;
//     no partial tree is returned.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph) (*core.Graph, float64, error) {
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

	// 2. Seed the tree with an arbitrary starting vertex (lowest id, since
	//    Vertices() is sorted - determinism helps the tests, not correctness).
	start := vertices[0]
	tree := core.NewGraph()
	tree.AddVertex(start)

	inTree := make(map[int64]bool, len(vertices))
	inTree[start] = true

	// key[v] is the weight of the cheapest known edge connecting v to the
	// tree; parent[v] is the tree-side endpoint of that edge.
	key := make(map[int64]float64, len(vertices))
	for _, v := range vertices {
		key[v] = math.Inf(1)
	}
	parent := make(map[int64]int64, len(vertices))

	pq := make(keyPQ, 0, len(vertices))
	heap.Init(&pq)

	var total float64

	// relax offers every edge of u to the not-yet-spanned neighbors,
	// lowering keys and lazily re-inserting improved entries.
	relax := func(u int64) error {
		edges, err := g.OutEdges(u)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if inTree[e.To] {
				continue
			}
			// Minimum wins among parallel edges.
			if e.Weight < key[e.To] {
				key[e.To] = e.Weight
				parent[e.To] = u
				heap.Push(&pq, &keyItem{id: e.To, key: e.Weight})
			}
		}

		return nil
	}

	// 3. Seed the frontier with the start vertex's neighborhood.
	if err := relax(start); err != nil {
		return nil, 0, err
	}

	// 4. Main loop: pull the cheapest frontier vertex, attach it to the
	//    tree via its recorded parent edge, and relax its neighborhood.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*keyItem)
		v := item.id
		if inTree[v] {
			continue // stale entry, already spanned via a cheaper key
		}
		inTree[v] = true

		// Attach v with the parent edge that produced its key, adding the
		// reciprocal direction since the tree is undirected by construction.
		u := parent[v]
		tree.AddEdge(u, v, key[v])
		tree.AddEdge(v, u, key[v])
		total += key[v]

		if err := relax(v); err != nil {
			return nil, 0, err
		}
	}

	// 5. The frontier drained: either every vertex was spanned, or the
	//    graph is disconnected and no spanning tree exists.
	if tree.VertexCount() != len(vertices) {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// keyItem pairs a frontier vertex with its current connecting key.
type keyItem struct {
	id  int64
	key float64
}

// keyPQ is a min-heap of *keyItem ordered by ascending key, with lazy
// stale-entry skipping (same pattern as the dijkstra frontier).
type keyPQ []*keyItem

func (pq keyPQ) Len() int            { return len(pq) }
func (pq keyPQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq keyPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(*keyItem)) }

func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
