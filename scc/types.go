// Package scc defines result types and sentinel errors for strongly
// connected component decomposition.
package scc

import (
	"errors"
	"sort"
)

// Sentinel errors returned by Decompose.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrUndirected indicates the store was constructed as undirected.
	// Strongly connected components are defined for directed graphs only;
	// this is a recoverable "not applicable" condition, not a crash.
	ErrUndirected = errors.New("scc: components are only defined for directed graphs")
)

// Component is one strongly connected component, identified by the id of
// the vertex that started its second-pass traversal. Representative ids
// carry no ordering semantics of their own.
type Component struct {
	// Rep is the representative vertex id labeling the component.
	Rep int64

	// Size is the component's population.
	Size int
}

// Result captures a full SCC decomposition: every vertex belongs to exactly
// one component.
type Result struct {
	// Membership maps each vertex id to its component's representative id.
	Membership map[int64]int64

	// Sizes maps each representative id to its component's population.
	Sizes map[int64]int
}

// Count returns the number of distinct components.
func (r *Result) Count() int {
	return len(r.Sizes)
}

// Top returns the n most populous components in descending order of
// population, ties broken arbitrarily. Fewer than n components are
// returned when fewer exist; n ≤ 0 returns an empty slice.
// Complexity: O(C log C) over the component count.
func (r *Result) Top(n int) []Component {
	if n < 0 {
		n = 0
	}
	out := make([]Component, 0, len(r.Sizes))
	for rep, size := range r.Sizes {
		out = append(out, Component{Rep: rep, Size: size})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size > out[j].Size })

	if n < len(out) {
		out = out[:n]
	}

	return out
}
