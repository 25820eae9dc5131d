// Package graphspan is an in-memory toolkit for building and analyzing
// directed and undirected graphs, with four classical engines on top:
// single-source shortest paths, minimum spanning trees, strongly connected
// components, and randomized global minimum cut.
//
// What graphspan brings together:
//
//	• Core primitives: integer-keyed vertices, weighted multi-edges,
//	  reversal, graph merging, and vertex contraction
//	• Shortest paths: Dijkstra with a lazy-decrease-key frontier
//	• Minimum spanning trees: Prim (parent-edge tracked) and Kruskal
//	• Components: Kosaraju's two-pass SCC decomposition
//	• Minimum cut: Karger's randomized contraction with a confidence-driven
//	  trial count, optional parallel trials, and a caller-supplied
//	  confirmation gate
//	• Text import/export: edge-list and adjacency-list formats
//
// Everything is organized under flat subpackages:
//
//	core/     — Graph, Vertex, Edge types plus contraction and merge primitives
//	dijkstra/ — single-source shortest distances
//	mst/      — Prim and Kruskal spanning trees
//	scc/      — strongly connected component decomposition
//	mincut/   — Karger's randomized minimum cut estimation
//	graphio/  — parsing and rendering of graph text files
//	cmd/      — the graphspan CLI, wiring the packages above together
//
// The library packages perform no I/O and no logging. Engines are
// synchronous and single-threaded for their full duration, and a Graph
// offers no internal locking — callers invoking engines concurrently
// against the same mutable Graph must synchronize externally. Randomized
// min-cut trials are the one sanctioned fan-out point: each trial owns a
// disjoint copy of the store.
//
//	go get github.com/graphspan/graphspan
package graphspan
