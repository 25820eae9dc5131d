// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative real edge weights.
//
// Dijkstra computes the minimum-cost distance from a single source vertex
// to every other vertex. It maintains a min-priority frontier ordered by
// tentative distance and finalizes one vertex per extraction, relaxing its
// outgoing edges. Updates use the "lazy decrease-key" strategy: improved
// distances push duplicate heap entries, and stale entries are skipped on
// extraction once the vertex is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex extracted at most once, each
//     relaxation may push one heap entry.
//   - Space: O(V + E) — distance map plus worst-case heap entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/graphspan/graphspan/core"
)

// Dijkstra computes shortest distances from source to all vertices of g.
//
// Returns:
//
//   - dist: map from vertex id to minimum distance. Every vertex of g has
//     an entry; vertices the source cannot reach carry Unreachable.
//   - parents: predecessor map when WithParents() was given, nil otherwise.
//   - err: ErrNilGraph, ErrVertexNotFound (unknown source), or
//     ErrNegativeWeight (detected during the upfront edge scan).
//
// The run mutates nothing on g; all algorithm state is local to the call.
func Dijkstra(g *core.Graph, source int64, opts ...Option) (map[int64]float64, map[int64]int64, error) {
	// 1. Apply options onto the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()

	// 3. Fail fast on negative weights: the greedy frontier would silently
	//    finalize wrong distances otherwise.
	for _, u := range vertices {
		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: edges of %d: %w", u, err)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 4. Initialize every distance to the Unreachable sentinel; source to 0.
	dist := make(map[int64]float64, len(vertices))
	for _, u := range vertices {
		dist[u] = Unreachable
	}
	dist[source] = 0

	var parents map[int64]int64
	if cfg.ReturnParents {
		parents = make(map[int64]int64, len(vertices))
	}

	// visited marks finalized vertices so stale heap entries are skipped.
	visited := make(map[int64]bool, len(vertices))

	// 5. Seed the frontier with the source at distance 0.
	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// 6. Main loop: extract the nearest unfinalized vertex and relax.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// Stale entry: the vertex was finalized by an earlier, shorter copy.
		if visited[u] {
			continue
		}
		// Beyond the cap nothing closer can ever appear; stop exploring.
		if item.dist > cfg.MaxDistance {
			break
		}
		visited[u] = true

		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: edges of %d: %w", u, err)
		}
		for _, e := range edges {
			if visited[e.To] {
				continue
			}
			candidate := dist[u] + e.Weight
			if candidate >= dist[e.To] {
				continue
			}
			// Never record a distance past the cap: vertices beyond it
			// must keep the Unreachable sentinel.
			if candidate > cfg.MaxDistance {
				continue
			}
			// Strictly shorter path found: record and lazily re-insert.
			dist[e.To] = candidate
			if parents != nil {
				parents[e.To] = u
			}
			heap.Push(&pq, &nodeItem{id: e.To, dist: candidate})
		}
	}

	return dist, parents, nil
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance. Stale
// duplicates are tolerated and skipped on extraction.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
