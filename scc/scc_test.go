package scc_test

import (
	"math/rand"
	"testing"

	"github.com/graphspan/graphspan/core"
	"github.com/graphspan/graphspan/scc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidation covers the typed error returns.
func TestValidation(t *testing.T) {
	_, err := scc.Decompose(nil)
	assert.ErrorIs(t, err, scc.ErrNilGraph)

	undirected := core.NewGraph()
	undirected.AddEdge(1, 2, 1)
	undirected.Reciprocate()
	_, err = scc.Decompose(undirected)
	assert.ErrorIs(t, err, scc.ErrUndirected)
}

// TestSharedVertexCycles reproduces the reference scenario: cycles
// 1→2→3→1 and 3→4→5→3 share vertex 3, so all five vertices collapse into
// a single component.
func TestSharedVertexCycles(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(4, 5, 1)
	g.AddEdge(5, 3, 1)

	res, err := scc.Decompose(g)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count())
	top := res.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, 5, top[0].Size)
}

// TestTwoComponents verifies a one-way bridge between two cycles keeps
// them in separate components.
func TestTwoComponents(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 1, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(4, 3, 1)
	g.AddEdge(2, 3, 1) // bridge, never returned

	res, err := scc.Decompose(g)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count())
	assert.Equal(t, res.Membership[1], res.Membership[2])
	assert.Equal(t, res.Membership[3], res.Membership[4])
	assert.NotEqual(t, res.Membership[1], res.Membership[3])

	// Both components have population 2; Top(1) returns either.
	top := res.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Size)
}

// TestFullCycle verifies that a single cycle covering all n vertices is
// one component of population n.
func TestFullCycle(t *testing.T) {
	const n = 12
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		g.AddEdge(int64(i), int64((i+1)%n), 1)
	}

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
	assert.Equal(t, n, res.Top(1)[0].Size)
}

// TestDAG verifies that an acyclic graph yields one singleton component
// per vertex and that every vertex is labeled exactly once.
func TestDAG(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 4, 1)
	g.AddEdge(3, 4, 1)

	res, err := scc.Decompose(g)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Count())
	assert.Len(t, res.Membership, 4, "every vertex belongs to exactly one component")
	for _, c := range res.Top(4) {
		assert.Equal(t, 1, c.Size)
	}
}

// TestTop_OrderAndTruncation verifies descending population order and the
// n-truncation of Top.
func TestTop_OrderAndTruncation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	// Component A: 3-cycle. Component B: 2-cycle. Component C: singleton.
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)
	g.AddEdge(10, 11, 1)
	g.AddEdge(11, 10, 1)
	g.AddVertex(20)

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Count())

	top := res.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, 3, top[0].Size)
	assert.Equal(t, 2, top[1].Size)

	all := res.Top(10)
	assert.Len(t, all, 3, "Top must not invent components")

	assert.Empty(t, res.Top(0))
	assert.Empty(t, res.Top(-1), "negative n must behave like zero")
}

// reachable computes the set of vertices reachable from start by a plain
// traversal, used as an oracle for the mutual-reachability property.
func reachable(t *testing.T, g *core.Graph, start int64) map[int64]bool {
	t.Helper()
	seen := map[int64]bool{start: true}
	stack := []int64{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		edges, err := g.OutEdges(u)
		require.NoError(t, err)
		for _, e := range edges {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}

	return seen
}

// TestMutualReachabilityProperty checks, on a random directed graph, that
// two vertices share a component iff each reaches the other.
func TestMutualReachabilityProperty(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := core.NewGraph(core.WithDirected(true))
	const n = 12
	for i := 0; i < n; i++ {
		g.AddVertex(int64(i))
	}
	for i := 0; i < 30; i++ {
		u := int64(r.Intn(n))
		v := int64(r.Intn(n))
		if u != v {
			g.AddEdge(u, v, 1)
		}
	}

	res, err := scc.Decompose(g)
	require.NoError(t, err)

	reach := make(map[int64]map[int64]bool, n)
	for _, u := range g.Vertices() {
		reach[u] = reachable(t, g, u)
	}
	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			mutual := reach[u][v] && reach[v][u]
			same := res.Membership[u] == res.Membership[v]
			assert.Equal(t, mutual, same,
				"vertices %d,%d: mutual=%v same-component=%v", u, v, mutual, same)
		}
	}
}
