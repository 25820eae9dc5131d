package mincut_test

import (
	"math/rand"
	"testing"

	"github.com/graphspan/graphspan/core"
	"github.com/graphspan/graphspan/mincut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBridgedCliques constructs two 4-cliques joined by a single edge,
// reciprocated: the global minimum cut is exactly 1.
func buildBridgedCliques() *core.Graph {
	g := core.NewGraph()
	clique := func(ids []int64) {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				g.AddEdge(ids[i], ids[j], 1)
			}
		}
	}
	clique([]int64{1, 2, 3, 4})
	clique([]int64{5, 6, 7, 8})
	g.AddEdge(4, 5, 1) // the bridge
	g.Reciprocate()

	return g
}

// TestValidation covers the typed error returns.
func TestValidation(t *testing.T) {
	_, err := mincut.Karger(nil)
	assert.ErrorIs(t, err, mincut.ErrNilGraph)

	small := core.NewGraph()
	small.AddVertex(1)
	_, err = mincut.Karger(small)
	assert.ErrorIs(t, err, mincut.ErrTooSmall)
}

// TestTrials verifies the round(factor · n² · ln n) bound.
func TestTrials(t *testing.T) {
	assert.Equal(t, 0, mincut.Trials(1, 1))
	assert.Equal(t, 22, mincut.Trials(4, 1), "round(16·ln4) = round(22.18)")
	assert.Equal(t, 11, mincut.Trials(4, 0.5))
	assert.GreaterOrEqual(t, mincut.Trials(2, 1), 1, "n=2 must still run at least one trial")
}

// TestConfirmGate verifies the gate sees the trial count and that
// declining aborts before any work.
func TestConfirmGate(t *testing.T) {
	g := buildBridgedCliques()

	var seen int
	_, err := mincut.Karger(g,
		mincut.WithConfirm(func(trials int) bool {
			seen = trials
			return false
		}),
	)
	assert.ErrorIs(t, err, mincut.ErrDeclined)
	assert.Equal(t, mincut.Trials(g.VertexCount(), 1), seen)

	// An override flows through to the gate unchanged.
	_, err = mincut.Karger(g,
		mincut.WithTrials(7),
		mincut.WithConfirm(func(trials int) bool {
			seen = trials
			return false
		}),
	)
	assert.ErrorIs(t, err, mincut.ErrDeclined)
	assert.Equal(t, 7, seen)
}

// TestBridgedCliques verifies the estimate finds the size-1 cut under the
// full trial bound.
func TestBridgedCliques(t *testing.T) {
	g := buildBridgedCliques()

	cut, err := mincut.Karger(g, mincut.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Equal(t, 1, cut)
}

// TestCycle verifies the known cut of a plain cycle: removing any single
// edge leaves it connected, so the minimum cut is 2.
func TestCycle(t *testing.T) {
	g := core.NewGraph()
	const n = 6
	for i := 0; i < n; i++ {
		g.AddEdge(int64(i), int64((i+1)%n), 1)
	}
	g.Reciprocate()

	cut, err := mincut.Karger(g, mincut.WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	assert.Equal(t, 2, cut)
}

// TestDisconnected_ShortCircuits verifies the zero-cut fast path on a
// disconnected store: the first zero candidate ends the run.
func TestDisconnected_ShortCircuits(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)
	g.AddEdge(10, 11, 1)
	g.AddEdge(11, 12, 1)
	g.AddEdge(12, 10, 1)
	g.Reciprocate()

	calls := 0
	cut, err := mincut.Karger(g,
		mincut.WithRand(rand.New(rand.NewSource(3))),
		mincut.WithProgress(func(done, total int) { calls = done }),
	)
	require.NoError(t, err)
	assert.Zero(t, cut)
	assert.Less(t, calls, mincut.Trials(g.VertexCount(), 1),
		"a zero candidate must end the run early")
}

// TestSelfLoops_Ignored verifies that self-loop instances (legal in the
// store, e.g. parsed from a "1 1" input line) neither stall contraction
// nor count toward the reported cut.
func TestSelfLoops_Ignored(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)
	g.Reciprocate()
	g.AddEdge(1, 1, 1)
	g.AddEdge(1, 1, 1)
	g.AddEdge(2, 2, 1)

	cut, err := mincut.Karger(g, mincut.WithRand(rand.New(rand.NewSource(8))))
	require.NoError(t, err)
	assert.Equal(t, 2, cut, "the triangle's cut is 2 regardless of loops")
}

// TestOriginalUntouched verifies estimation leaves the source store intact.
func TestOriginalUntouched(t *testing.T) {
	g := buildBridgedCliques()
	wantVerts := g.VertexCount()
	wantEdges := g.EdgeCount()

	_, err := mincut.Karger(g,
		mincut.WithTrials(25),
		mincut.WithRand(rand.New(rand.NewSource(4))),
	)
	require.NoError(t, err)

	assert.Equal(t, wantVerts, g.VertexCount())
	assert.Equal(t, wantEdges, g.EdgeCount())
}

// TestParallelTrials verifies the errgroup path produces the same quality
// of estimate; each trial owns a disjoint copy, so no state is shared.
func TestParallelTrials(t *testing.T) {
	g := buildBridgedCliques()

	cut, err := mincut.Karger(g,
		mincut.WithParallelism(4),
		mincut.WithRand(rand.New(rand.NewSource(5))),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, cut)
}

// TestProgressReporting verifies the hook sees every completed trial when
// nothing short-circuits.
func TestProgressReporting(t *testing.T) {
	g := buildBridgedCliques()

	var last, calls int
	_, err := mincut.Karger(g,
		mincut.WithTrials(30),
		mincut.WithRand(rand.New(rand.NewSource(6))),
		mincut.WithProgress(func(done, total int) {
			last = done
			calls++
			assert.Equal(t, 30, total)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 30, last)
	assert.Equal(t, 30, calls)
}

// TestRepeatability verifies that a fixed source yields a fixed estimate.
func TestRepeatability(t *testing.T) {
	g := buildBridgedCliques()

	a, err := mincut.Karger(g, mincut.WithTrials(40), mincut.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	b, err := mincut.Karger(g, mincut.WithTrials(40), mincut.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
