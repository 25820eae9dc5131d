// Package scc implements Kosaraju's two-pass strongly-connected-component
// decomposition for directed graphs.
//
// Phase 1 runs a full depth-first traversal of the REVERSED graph and
// records vertices by decreasing finishing time. Phase 2 replays that order
// on the original graph: each traversal started from an unvisited vertex
// sweeps out exactly one component, labeled by the starting vertex's id.
// The phases are strictly sequential - phase 2 depends on phase 1's
// complete finishing order.
//
// Complexity:
//
//   - Time:  O(V + E) — two full traversals plus the reversed copy.
//   - Space: O(V + E) for the reversed copy, O(V) for traversal state.
package scc

import "github.com/graphspan/graphspan/core"

// Decompose computes the strongly connected components of a directed graph.
//
// Every vertex is assigned to exactly one component; two vertices share a
// component iff each is reachable from the other. Component ids are
// representative vertex ids, not sequential integers.
//
// Returns ErrNilGraph for a nil store and ErrUndirected when the store was
// constructed as undirected (recoverable, per the error taxonomy). The
// input graph is never mutated; traversal state lives in run-local maps.
func Decompose(g *core.Graph) (*Result, error) {
	// 1. Validate the store kind.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	vertices := g.Vertices()

	// 2. Phase 1: traverse the reversed copy from every unvisited vertex,
	//    appending each vertex as its recursive exploration completes.
	//    Reading the slice backwards later yields decreasing finishing time.
	reversed := g.Clone(true)
	visited := make(map[int64]bool, len(vertices))
	finishOrder := make([]int64, 0, len(vertices))

	var finish func(id int64)
	finish = func(id int64) {
		visited[id] = true
		edges, _ := reversed.OutEdges(id) // id originates from the same store
		for _, e := range edges {
			if !visited[e.To] {
				finish(e.To)
			}
		}
		finishOrder = append(finishOrder, id)
	}
	for _, id := range vertices {
		if !visited[id] {
			finish(id)
		}
	}

	// 3. Phase 2: reset traversal state and replay the finishing order on
	//    the ORIGINAL graph. Each unvisited start opens a new component.
	res := &Result{
		Membership: make(map[int64]int64, len(vertices)),
		Sizes:      make(map[int64]int),
	}
	visited = make(map[int64]bool, len(vertices))

	var assign func(id, rep int64)
	assign = func(id, rep int64) {
		visited[id] = true
		res.Membership[id] = rep
		res.Sizes[rep]++
		edges, _ := g.OutEdges(id)
		for _, e := range edges {
			if !visited[e.To] {
				assign(e.To, rep)
			}
		}
	}
	for i := len(finishOrder) - 1; i >= 0; i-- {
		if id := finishOrder[i]; !visited[id] {
			assign(id, id)
		}
	}

	return res, nil
}
