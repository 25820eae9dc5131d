// Package mincut implements Karger's randomized contraction algorithm for
// estimating the global minimum edge cut of a graph.
//
// Each trial takes a fresh forward copy of the store (self-loop instances
// dropped, since a loop crosses no cut) and repeatedly contracts a
// uniformly random edge instance until exactly two vertices remain; the
// edges surviving between them are one cut of the original graph. The minimum over round(n² ln n) independent trials is, with high
// probability, the global minimum cut.
//
// This is a Monte Carlo algorithm: the result is an estimate that is
// correct with probability approaching 1 as the trial count grows, never a
// guarantee. Callers needing certainty must not rely on a single run.
//
// Edge selection is uniform over edge INSTANCES, so a vertex pair with k
// parallel edges is k times more likely to be contracted than a pair with
// one - the contraction bound depends on this weighting.
//
// Complexity: O(trials · V · (V + E)) time; each trial owns an O(V + E) copy.
package mincut

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/graphspan/graphspan/core"
)

// Karger estimates the size of the global minimum edge cut of g.
//
// The original store is never mutated: every trial works on its own
// forward copy. A candidate cut of 0 (possible only on a disconnected
// graph) short-circuits the remaining trials.
//
// Returns ErrNilGraph, ErrTooSmall (fewer than two vertices), or
// ErrDeclined when a WithConfirm gate rejects the trial count.
func Karger(g *core.Graph, opts ...Option) (int, error) {
	// 1. Apply options onto the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate the store.
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n < 2 {
		return 0, ErrTooSmall
	}

	// 3. Determine the trial count and consult the confirmation gate
	//    before any work starts.
	trials := cfg.TrialOverride
	if trials <= 0 {
		trials = Trials(n, cfg.TrialFactor)
	}
	if cfg.Confirm != nil && !cfg.Confirm(trials) {
		return 0, ErrDeclined
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if cfg.Parallelism > 1 {
		return runParallel(g, trials, rng, cfg)
	}

	return runSequential(g, trials, rng, cfg)
}

// runSequential executes trials one after another, tracking the minimum
// candidate and short-circuiting on a zero cut.
func runSequential(g *core.Graph, trials int, rng *rand.Rand, cfg Options) (int, error) {
	best := g.EdgeCount() // any cut is at most every edge
	for i := 0; i < trials; i++ {
		cut := runTrial(g, rng)
		if cut < best {
			best = cut
		}
		if cfg.Progress != nil {
			cfg.Progress(i+1, trials)
		}
		if best == 0 {
			return 0, nil
		}
	}

	return best, nil
}

// runParallel fans trials out over an errgroup bounded by cfg.Parallelism.
// Trials are independent: each derives its own rand source up front (a
// *rand.Rand is not safe for concurrent use) and contracts its own copy.
// Result merging and progress reporting are serialized under one mutex.
func runParallel(g *core.Graph, trials int, rng *rand.Rand, cfg Options) (int, error) {
	// Derive per-trial seeds from the caller's source while still single-
	// threaded, keeping WithRand reproducibility.
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	var (
		mu       sync.Mutex
		best     = g.EdgeCount()
		done     int
		zeroSeen bool
	)

	eg := new(errgroup.Group)
	eg.SetLimit(cfg.Parallelism)
	for i := 0; i < trials; i++ {
		seed := seeds[i]
		eg.Go(func() error {
			mu.Lock()
			skip := zeroSeen
			mu.Unlock()

			var cut int
			if !skip {
				cut = runTrial(g, rand.New(rand.NewSource(seed)))
			}

			mu.Lock()
			defer mu.Unlock()
			done++
			if !skip {
				if cut < best {
					best = cut
				}
				if best == 0 {
					zeroSeen = true
				}
			}
			if cfg.Progress != nil {
				cfg.Progress(done, trials)
			}

			return nil
		})
	}
	_ = eg.Wait() // trials never return errors; Wait only synchronizes

	return best, nil
}

// runTrial contracts one trial-private copy of g down to two vertices and
// reports the surviving edge count as a candidate cut.
func runTrial(g *core.Graph, rng *rand.Rand) int {
	work := trialCopy(g)
	for work.VertexCount() > 2 {
		contractOnce(work, rng)
	}

	return work.EdgeCount()
}

// trialCopy returns a forward copy of g with self-loop instances dropped.
// A self-loop sits inside every vertex partition, so it never crosses a
// cut, and it cannot be contracted (its endpoints are one vertex already) -
// left in, a remainder of pure self-loops would stall contractOnce forever.
// MergeVertices introduces no new self-loops, so stripping once per trial
// suffices.
func trialCopy(g *core.Graph) *core.Graph {
	out := core.NewGraph(core.WithDirected(g.Directed()))
	for _, id := range g.Vertices() {
		out.AddVertex(id)
		edges, _ := g.OutEdges(id) // ids enumerate the same store
		for _, e := range edges {
			if e.To != id {
				out.AddEdge(id, e.To, e.Weight)
			}
		}
	}

	return out
}

// contractOnce picks one edge instance uniformly at random - weighted by
// multiplicity, as the correctness bound requires - and merges its
// endpoints. Selection walks vertices in sorted order so a seeded rand
// yields reproducible trials.
func contractOnce(g *core.Graph, rng *rand.Rand) {
	vertices := g.Vertices()

	total := 0
	for _, id := range vertices {
		d, _ := g.OutDegree(id) // ids enumerate the same store
		total += d
	}
	if total == 0 {
		// Disconnected remainder with no edges: merge any two survivors so
		// the trial still terminates at two vertices.
		_ = g.MergeVertices(vertices[0], vertices[1])
		return
	}

	// Locate the k-th edge instance by walking out-degree prefix sums.
	k := rng.Intn(total)
	for _, id := range vertices {
		d, _ := g.OutDegree(id)
		if k >= d {
			k -= d
			continue
		}
		edges, _ := g.OutEdges(id)
		_ = g.MergeVertices(id, edges[k].To)

		return
	}
}
